package preview

import (
	"math"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
	"github.com/patjsic/cvpdf"
)

func sampleDocument() cvpdf.Document {
	return cvpdf.Document{
		Header: cvpdf.Header{
			Name:  "Jane Doe",
			Lines: []string{"jane@example.com | GitHub: github.com/jane"},
		},
		Sections: []cvpdf.Section{
			{Title: "Experience", Blocks: []cvpdf.Block{
				cvpdf.Heading("Engineer at Acme", "Remote | 2020 – 2022"),
				cvpdf.Bullet(strings.Repeat("Built data pipelines for downstream analytics. ", 4)),
			}},
			{Title: "Memberships", Blocks: []cvpdf.Block{
				cvpdf.Bullet("American Geophysical Union (AGU)"),
			}},
		},
	}
}

func renderPreview(t *testing.T, doc cvpdf.Document, cfg Config) (*Canvas, cvpdf.Result) {
	t.Helper()
	c := NewCanvas(cfg, nil)
	l := c.Layout()
	c.hook = cvpdf.HeaderHook(doc.Header, l)
	res, err := cvpdf.Render(doc, c, cvpdf.WithLayout(l))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return c, res
}

func TestPreviewRendersDocument(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = BoringTheme()
	c, res := renderPreview(t, sampleDocument(), cfg)
	out := c.String()
	for _, want := range []string{"Jane Doe", "EXPERIENCE", "Engineer at Acme", "Remote | 2020 – 2022", "• American Geophysical Union (AGU)", "MEMBERSHIPS", "────"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in preview:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("boring theme emitted escape sequences")
	}
	if res.Pages != 1 || res.Sections != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPreviewCentersHeader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = BoringTheme()
	c, _ := renderPreview(t, sampleDocument(), cfg)
	first := strings.SplitN(c.String(), "\n", 2)[0]
	if strings.TrimSpace(first) != "Jane Doe" {
		t.Fatalf("unexpected first row %q", first)
	}
	indent := len(first) - len(strings.TrimLeft(first, " "))
	if want := (cfg.Width - len("Jane Doe")) / 2; indent != want {
		t.Fatalf("header indent %d, want %d", indent, want)
	}
}

func TestPreviewRespectsWidth(t *testing.T) {
	for _, width := range []int{40, 60, 100} {
		cfg := DefaultConfig()
		cfg.Width = width
		c, _ := renderPreview(t, sampleDocument(), cfg)
		for _, line := range strings.Split(c.String(), "\n") {
			if w := ansi.PrintableRuneWidth(line); w > width {
				t.Fatalf("width %d: row is %d columns wide: %q", width, w, line)
			}
		}
	}
}

func TestPreviewWrappedBulletAdvance(t *testing.T) {
	l := cvpdf.DefaultLayout()
	c := NewCanvas(DefaultConfig(), nil)
	c.StartPage()
	c.SetFont(l.FontFamily, cvpdf.StyleRegular, l.BodySize)
	c.TextCell(l.BulletWidth, l.BodyLineHeight, l.BulletGlyph, false, cvpdf.AlignLeft)
	text := strings.TrimSpace(strings.Repeat("Research novel methods for detecting out-of-distribution data. ", 3))
	lines := len(wrapLines(text, c.cols(0)))
	if lines < 2 {
		t.Fatalf("test text does not wrap")
	}
	y := c.Y()
	c.WrappedText(0, l.BodyLineHeight, text)
	if got, want := c.Y()-y, float64(lines)*l.BodyLineHeight; math.Abs(got-want) > 1e-9 {
		t.Fatalf("cursor advanced %v, want %v", got, want)
	}
	rows := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(rows) != lines {
		t.Fatalf("expected %d rows, got %d:\n%s", lines, len(rows), c.String())
	}
	if !strings.HasPrefix(rows[0], "• ") || !strings.HasPrefix(rows[1], "  ") {
		t.Fatalf("continuation rows not indented under the bullet:\n%s", c.String())
	}
}

func TestPreviewPageBreakRepeatsHeader(t *testing.T) {
	blocks := make([]cvpdf.Block, 0, 60)
	for i := 0; i < 60; i++ {
		blocks = append(blocks, cvpdf.Bullet("Routinely write grant proposals and pitch research ideas."))
	}
	doc := cvpdf.Document{
		Header:   cvpdf.Header{Name: "Jane Doe"},
		Sections: []cvpdf.Section{{Title: "Long", Blocks: blocks}},
	}
	cfg := DefaultConfig()
	cfg.Theme = BoringTheme()
	c, res := renderPreview(t, doc, cfg)
	if res.Pages < 2 {
		t.Fatalf("expected several pages, got %d", res.Pages)
	}
	out := c.String()
	if got := strings.Count(out, "Jane Doe"); got != res.Pages {
		t.Fatalf("header printed %d times for %d pages", got, res.Pages)
	}
	separators := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "┄") {
			separators++
		}
	}
	if separators != res.Pages-1 {
		t.Fatalf("expected %d page separators, got %d", res.Pages-1, separators)
	}
}

func TestPreviewDefaultThemeStyles(t *testing.T) {
	c, _ := renderPreview(t, sampleDocument(), DefaultConfig())
	out := c.String()
	if !strings.Contains(out, ansiBold+"EXPERIENCE"+ansiReset) {
		t.Fatalf("expected bold section title")
	}
	if !strings.Contains(out, ansiItalic+"Remote | 2020 – 2022"+ansiReset) {
		t.Fatalf("expected italic subtext")
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
		{"x", 0, ""},
		{"xy", 1, "…"},
		{"xy", 0, ""},
	}
	for _, tc := range cases {
		if got := truncateWithEllipsis(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncateWithEllipsis(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range AvailableThemes() {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	if theme, ok := ThemeByName(""); !ok || theme.Name() != "default" {
		t.Fatalf("expected default theme for empty name")
	}
	if _, ok := ThemeByName(" Boring "); !ok {
		t.Fatalf("expected case-insensitive lookup")
	}
	if _, ok := ThemeByName("nope"); ok {
		t.Fatalf("unexpected theme")
	}
}

func TestRenderWritesPreview(t *testing.T) {
	var buf strings.Builder
	cfg := DefaultConfig()
	cfg.Theme = BoringTheme()
	res, err := Render(sampleDocument(), &buf, cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if res.Sections != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "Jane Doe") {
		t.Fatalf("expected header first:\n%s", buf.String())
	}
}
