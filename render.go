package cvpdf

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result summarizes a completed render.
type Result struct {
	Sections int
	Pages    int
}

// Render draws doc onto c, starting the first page itself and leaving later
// page breaks to the canvas. Any error reported by the canvas aborts the pass
// with a *RenderError; there is no partial result.
func Render(doc Document, c Canvas, opts ...Option) (Result, error) {
	cfg := renderConfig{layout: DefaultLayout()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := doc.Validate(); err != nil {
		return Result{}, &RenderError{Err: err}
	}
	p := &pass{
		c:     c,
		l:     cfg.layout,
		upper: cases.Upper(language.Und),
	}
	c.StartPage()
	if err := c.Err(); err != nil {
		return Result{}, &RenderError{Err: err}
	}
	for _, sec := range doc.Sections {
		p.section(sec)
		if err := c.Err(); err != nil {
			return Result{}, &RenderError{Section: sec.Title, Err: err}
		}
		p.sections++
	}
	return Result{Sections: p.sections, Pages: c.PageNo()}, nil
}

// pass is the state of one Render call. It is never shared.
type pass struct {
	c        Canvas
	l        Layout
	upper    cases.Caser
	sections int
}

func (p *pass) section(sec Section) {
	p.title(sec.Title)
	for i, b := range sec.Blocks {
		switch b.Kind {
		case BlockHeading:
			if i > 0 {
				p.c.Advance(p.l.BlockGap)
			}
			p.heading(b)
		case BlockBullet:
			p.bullet(b)
		case BlockParagraph:
			p.paragraph(b)
		}
	}
}

func (p *pass) title(title string) {
	l := p.l
	p.c.Advance(l.TitleTopSpacing)
	p.c.SetFont(l.FontFamily, StyleBold, l.TitleSize)
	p.c.TextCell(0, l.TitleLineHeight, p.upper.String(title), true, AlignLeft)
	p.c.SetLineWidth(l.TitleRuleWidth)
	y := p.c.Y() + l.RuleOffset
	p.c.Line(l.Margin, y, p.c.PageWidth()-l.Margin)
	p.c.Advance(l.RuleOffset + l.TitleBottomSpacing)
}

func (p *pass) heading(b Block) {
	l := p.l
	p.c.SetFont(l.FontFamily, StyleBold, l.HeadingSize)
	p.c.TextCell(0, l.HeadingLineHeight, b.Text, true, AlignLeft)
	if b.Subtext != "" {
		p.c.SetFont(l.FontFamily, StyleItalic, l.SubtextSize)
		p.c.TextCell(0, l.HeadingLineHeight, b.Subtext, true, AlignLeft)
	}
	p.c.Advance(l.HeadingGap)
}

func (p *pass) bullet(b Block) {
	l := p.l
	p.c.SetFont(l.FontFamily, StyleRegular, l.BodySize)
	p.c.TextCell(l.BulletWidth, l.BodyLineHeight, l.BulletGlyph, false, AlignLeft)
	p.c.WrappedText(0, l.BodyLineHeight, b.Text)
}

func (p *pass) paragraph(b Block) {
	l := p.l
	p.c.SetFont(l.FontFamily, StyleRegular, l.BodySize)
	p.c.WrappedText(0, l.BodyLineHeight, b.Text)
}
