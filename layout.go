package cvpdf

// Layout holds the fixed sizes and offsets used by Render and HeaderHook.
// Font sizes are in points, everything else in the canvas unit (mm for the
// PDF backend).
type Layout struct {
	FontFamily string
	Margin     float64

	HeaderNameSize      float64
	HeaderNameHeight    float64
	HeaderLineSize      float64
	HeaderLineHeight    float64
	HeaderGap           float64
	HeaderRuleWidth     float64
	HeaderBottomSpacing float64
	TitleSize           float64
	TitleLineHeight     float64
	TitleTopSpacing     float64
	TitleBottomSpacing  float64
	TitleRuleWidth      float64
	RuleOffset          float64
	HeadingSize         float64
	SubtextSize         float64
	HeadingLineHeight   float64
	HeadingGap          float64
	BlockGap            float64
	BodySize            float64
	BodyLineHeight      float64
	BulletWidth         float64
	BulletGlyph         string
}

// DefaultLayout returns the A4 layout the CV is designed for.
func DefaultLayout() Layout {
	return Layout{
		FontFamily:          "DejaVu",
		Margin:              10,
		HeaderNameSize:      16,
		HeaderNameHeight:    10,
		HeaderLineSize:      11,
		HeaderLineHeight:    6,
		HeaderGap:           2,
		HeaderRuleWidth:     0.5,
		HeaderBottomSpacing: 5,
		TitleSize:           12,
		TitleLineHeight:     6,
		TitleTopSpacing:     10,
		TitleBottomSpacing:  9,
		TitleRuleWidth:      0.2,
		RuleOffset:          1,
		HeadingSize:         11,
		SubtextSize:         10,
		HeadingLineHeight:   5,
		HeadingGap:          2,
		BlockGap:            3,
		BodySize:            11,
		BodyLineHeight:      5,
		BulletWidth:         5,
		BulletGlyph:         "•",
	}
}

// SectionTitleAdvance is the vertical distance consumed by a section title
// and its rule, i.e. the height of a section with no blocks.
func (l Layout) SectionTitleAdvance() float64 {
	return l.TitleTopSpacing + l.TitleLineHeight + l.RuleOffset + l.TitleBottomSpacing
}

// Override returns l with every non-zero field of src applied.
func (l Layout) Override(src Layout) Layout {
	if src.FontFamily != "" {
		l.FontFamily = src.FontFamily
	}
	if src.BulletGlyph != "" {
		l.BulletGlyph = src.BulletGlyph
	}
	for _, f := range []struct {
		dst *float64
		src float64
	}{
		{&l.Margin, src.Margin},
		{&l.HeaderNameSize, src.HeaderNameSize},
		{&l.HeaderNameHeight, src.HeaderNameHeight},
		{&l.HeaderLineSize, src.HeaderLineSize},
		{&l.HeaderLineHeight, src.HeaderLineHeight},
		{&l.HeaderGap, src.HeaderGap},
		{&l.HeaderRuleWidth, src.HeaderRuleWidth},
		{&l.HeaderBottomSpacing, src.HeaderBottomSpacing},
		{&l.TitleSize, src.TitleSize},
		{&l.TitleLineHeight, src.TitleLineHeight},
		{&l.TitleTopSpacing, src.TitleTopSpacing},
		{&l.TitleBottomSpacing, src.TitleBottomSpacing},
		{&l.TitleRuleWidth, src.TitleRuleWidth},
		{&l.RuleOffset, src.RuleOffset},
		{&l.HeadingSize, src.HeadingSize},
		{&l.SubtextSize, src.SubtextSize},
		{&l.HeadingLineHeight, src.HeadingLineHeight},
		{&l.HeadingGap, src.HeadingGap},
		{&l.BlockGap, src.BlockGap},
		{&l.BodySize, src.BodySize},
		{&l.BodyLineHeight, src.BodyLineHeight},
		{&l.BulletWidth, src.BulletWidth},
	} {
		if f.src > 0 {
			*f.dst = f.src
		}
	}
	return l
}
