package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/patjsic/cvpdf"
)

// Canvas implements cvpdf.Canvas on top of fpdf. Automatic page breaks are
// enabled; every new page runs the PageHook before any other content.
type Canvas struct {
	pdf    *fpdf.Fpdf
	hook   cvpdf.PageHook
	family string
	tr     func(string) string
}

var _ cvpdf.Canvas = (*Canvas)(nil)

// NewCanvas registers the configured fonts and returns an empty document.
// Missing or unreadable font files yield a *cvpdf.AssetLoadError.
func NewCanvas(cfg Config, hook cvpdf.PageHook) (*Canvas, error) {
	cfg = cfg.withDefaults()
	core := cfg.usesCoreFont()
	if !core {
		if cfg.RegularFont == "" || cfg.BoldFont == "" || cfg.ItalicFont == "" {
			return nil, fmt.Errorf("pdf canvas: regular, bold, and italic fonts must all be provided")
		}
		for _, name := range []string{cfg.RegularFont, cfg.BoldFont, cfg.ItalicFont} {
			path := filepath.Join(cfg.FontDir, name)
			if err := ensureFont(path); err != nil {
				return nil, &cvpdf.AssetLoadError{Path: path, Err: err}
			}
		}
	}

	pdf := fpdf.New("P", cfg.Unit, cfg.PageSize, cfg.FontDir)
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(true, cfg.BottomMargin)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(cfg.CreationDate)
	pdf.SetModificationDate(cfg.CreationDate)
	if cfg.Title != "" {
		pdf.SetTitle(cfg.Title, true)
	}
	if cfg.Author != "" {
		pdf.SetAuthor(cfg.Author, true)
	}
	pdf.SetCreator(cfg.Creator, true)

	c := &Canvas{pdf: pdf, hook: hook, family: cfg.family()}
	if core {
		c.tr = pdf.UnicodeTranslatorFromDescriptor("")
	} else {
		pdf.AddUTF8Font(cfg.FontFamily, cvpdf.StyleRegular, cfg.RegularFont)
		pdf.AddUTF8Font(cfg.FontFamily, cvpdf.StyleBold, cfg.BoldFont)
		pdf.AddUTF8Font(cfg.FontFamily, cvpdf.StyleItalic, cfg.ItalicFont)
		c.tr = func(s string) string { return s }
	}
	if err := pdf.Error(); err != nil {
		return nil, &cvpdf.AssetLoadError{Path: cfg.FontDir, Err: err}
	}
	pdf.SetHeaderFunc(func() {
		if c.hook != nil {
			c.hook.PageStarted(c, pdf.PageNo())
		}
	})
	return c, nil
}

// FontFamily is the family name fonts were registered under.
func (c *Canvas) FontFamily() string { return c.family }

func (c *Canvas) StartPage() { c.pdf.AddPage() }

func (c *Canvas) SetFont(family, style string, size float64) {
	c.pdf.SetFont(family, style, size)
}

func (c *Canvas) SetLineWidth(width float64) { c.pdf.SetLineWidth(width) }

func (c *Canvas) TextCell(width, height float64, text string, lineBreak bool, align string) {
	ln := 0
	if lineBreak {
		ln = 1
	}
	c.pdf.CellFormat(width, height, c.tr(text), "", ln, align, false, 0, "")
}

func (c *Canvas) WrappedText(width, height float64, text string) {
	c.pdf.MultiCell(width, height, c.tr(text), "", "", false)
}

func (c *Canvas) Line(x1, y, x2 float64) {
	c.pdf.SetDrawColor(0, 0, 0)
	c.pdf.Line(x1, y, x2, y)
}

func (c *Canvas) Advance(dy float64) { c.pdf.Ln(dy) }

func (c *Canvas) Y() float64 { return c.pdf.GetY() }

func (c *Canvas) PageWidth() float64 {
	w, _ := c.pdf.GetPageSize()
	return w
}

func (c *Canvas) PageNo() int { return c.pdf.PageNo() }

func (c *Canvas) Err() error { return c.pdf.Error() }

// Output finalizes the document and writes it to w.
func (c *Canvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}

func ensureFont(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory")
	}
	if !strings.HasSuffix(strings.ToLower(info.Name()), ".ttf") {
		return fmt.Errorf("expected .ttf font file")
	}
	return nil
}
