package preview

import (
	"io"
	"math"
	"strings"

	"github.com/patjsic/cvpdf"
)

// Config describes the page the preview imitates and the terminal it is
// drawn for. Lengths are in the same unit as cvpdf.Layout (mm).
type Config struct {
	Width        int
	PageWidth    float64
	PageHeight   float64
	Margin       float64
	BottomMargin float64
	RowHeight    float64
	Theme        Theme
}

// DefaultConfig imitates an A4 page on an 80 column terminal.
func DefaultConfig() Config {
	return Config{
		Width:        80,
		PageWidth:    210,
		PageHeight:   297,
		Margin:       10,
		BottomMargin: 20,
		RowHeight:    5,
		Theme:        DefaultTheme(),
	}
}

// Canvas implements cvpdf.Canvas as text. Horizontal positions are mapped
// onto Width columns spanning the printable width, vertical positions onto
// rows of RowHeight. Pages are separated by a dimmed rule.
type Canvas struct {
	cfg    Config
	styles Styles
	hook   cvpdf.PageHook
	out    strings.Builder

	colWidth float64
	page     int
	x, y     float64
	style    Style
	inHook   bool

	row  strings.Builder
	rowY float64
	// top of the next unused output row
	nextY float64
}

var _ cvpdf.Canvas = (*Canvas)(nil)

// NewCanvas returns an empty preview. Zero fields of cfg take their default.
func NewCanvas(cfg Config, hook cvpdf.PageHook) *Canvas {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.PageWidth <= 0 {
		cfg.PageWidth = def.PageWidth
	}
	if cfg.PageHeight <= 0 {
		cfg.PageHeight = def.PageHeight
	}
	if cfg.Margin <= 0 {
		cfg.Margin = def.Margin
	}
	if cfg.BottomMargin <= 0 {
		cfg.BottomMargin = def.BottomMargin
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = def.RowHeight
	}
	if cfg.Theme == nil {
		cfg.Theme = def.Theme
	}
	return &Canvas{
		cfg:      cfg,
		styles:   cfg.Theme.Styles(),
		hook:     hook,
		colWidth: (cfg.PageWidth - 2*cfg.Margin) / float64(cfg.Width),
	}
}

// Layout returns cvpdf.DefaultLayout adjusted to this canvas' margin.
func (c *Canvas) Layout() cvpdf.Layout {
	l := cvpdf.DefaultLayout()
	l.Margin = c.cfg.Margin
	return l
}

func (c *Canvas) StartPage() {
	c.flushRow()
	if c.page > 0 {
		c.out.WriteString(c.styles.PageGap.apply(strings.Repeat("┄", c.cfg.Width)))
		c.out.WriteByte('\n')
	}
	c.page++
	c.x, c.y = c.cfg.Margin, c.cfg.Margin
	c.nextY = c.cfg.Margin
	if c.hook != nil {
		c.inHook = true
		c.hook.PageStarted(c, c.page)
		c.inHook = false
	}
}

func (c *Canvas) SetFont(_, style string, _ float64) {
	switch style {
	case cvpdf.StyleBold:
		c.style = c.styles.Bold
	case cvpdf.StyleItalic:
		c.style = c.styles.Italic
	default:
		c.style = c.styles.Regular
	}
}

func (c *Canvas) SetLineWidth(float64) {}

func (c *Canvas) TextCell(width, height float64, text string, lineBreak bool, align string) {
	c.breakIfNeeded(height)
	cols := c.cols(width)
	text = truncateWithEllipsis(text, cols)
	if lineBreak && align == cvpdf.AlignLeft {
		c.put(text)
	} else {
		c.put(pad(text, cols, align))
	}
	if lineBreak {
		c.flushRow()
		c.x = c.cfg.Margin
		c.y += height
		return
	}
	if width == 0 {
		width = c.cfg.PageWidth - c.cfg.Margin - c.x
	}
	c.x += width
}

func (c *Canvas) WrappedText(width, height float64, text string) {
	for _, line := range wrapLines(text, c.cols(width)) {
		c.breakIfNeeded(height)
		c.put(line)
		c.flushRow()
		c.y += height
	}
	c.x = c.cfg.Margin
}

func (c *Canvas) Line(x1, y, x2 float64) {
	c.flushRow()
	start := c.columnAt(x1)
	end := c.columnAt(x2)
	if end <= start {
		return
	}
	c.emit(y, strings.Repeat(" ", start)+c.styles.Rule.apply(strings.Repeat("─", end-start)))
}

func (c *Canvas) Advance(dy float64) {
	c.flushRow()
	c.x = c.cfg.Margin
	c.y += dy
}

func (c *Canvas) Y() float64 { return c.y }

func (c *Canvas) PageWidth() float64 { return c.cfg.PageWidth }

func (c *Canvas) PageNo() int { return c.page }

func (c *Canvas) Err() error { return nil }

// String returns everything drawn so far.
func (c *Canvas) String() string {
	c.flushRow()
	return c.out.String()
}

// WriteTo writes everything drawn so far to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

func (c *Canvas) limit() float64 {
	return c.cfg.PageHeight - c.cfg.BottomMargin
}

func (c *Canvas) breakIfNeeded(height float64) {
	if c.inHook || c.y+height <= c.limit() {
		return
	}
	x := c.x
	c.StartPage()
	c.x = x
}

// cols converts a cell width to columns. Zero extends to the right margin.
func (c *Canvas) cols(width float64) int {
	if width == 0 {
		return max(c.cfg.Width-c.column(), 1)
	}
	return max(int(math.Round(width/c.colWidth)), 1)
}

func (c *Canvas) column() int {
	return c.columnAt(c.x)
}

func (c *Canvas) columnAt(x float64) int {
	col := int(math.Round((x - c.cfg.Margin) / c.colWidth))
	return min(max(col, 0), c.cfg.Width)
}

func (c *Canvas) put(text string) {
	if c.row.Len() == 0 {
		c.rowY = c.y
		if col := c.column(); col > 0 {
			c.row.WriteString(strings.Repeat(" ", col))
		}
	}
	c.row.WriteString(c.style.apply(text))
}

func (c *Canvas) flushRow() {
	if c.row.Len() == 0 {
		return
	}
	c.emit(c.rowY, strings.TrimRight(c.row.String(), " "))
	c.row.Reset()
}

// emit writes one output row for content whose top is at y, preceded by the
// blank rows that fit between the previous row and y.
func (c *Canvas) emit(y float64, text string) {
	const eps = 1e-6
	for c.nextY+c.cfg.RowHeight <= y+eps {
		c.out.WriteByte('\n')
		c.nextY += c.cfg.RowHeight
	}
	c.out.WriteString(text)
	c.out.WriteByte('\n')
	c.nextY = math.Max(c.nextY, y) + c.cfg.RowHeight
}
