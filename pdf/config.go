package pdf

import "time"

// Config holds PDF rendering settings.
type Config struct {
	PageSize     string
	Unit         string
	Margin       float64
	BottomMargin float64
	FontFamily   string
	FontDir      string
	RegularFont  string
	BoldFont     string
	ItalicFont   string
	CoreFont     string
	Title        string
	Author       string
	Creator      string
	CreationDate time.Time
}

// DefaultCreationDate is stamped into documents when Config.CreationDate is
// zero so that identical input yields identical bytes.
var DefaultCreationDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultConfig returns a baseline configuration that reads the DejaVu fonts
// from ./fonts.
func DefaultConfig() Config {
	return Config{
		PageSize:     "A4",
		Unit:         "mm",
		Margin:       10,
		BottomMargin: 20,
		FontFamily:   "DejaVu",
		FontDir:      "fonts",
		RegularFont:  "DejaVuSans.ttf",
		BoldFont:     "DejaVuSans-Bold.ttf",
		ItalicFont:   "DejaVuSans-Oblique.ttf",
		CoreFont:     "Helvetica",
		Creator:      "cvpdf",
	}
}

// CoreFontConfig returns a configuration that uses a built-in PDF font and
// needs no font files. Characters outside cp1252 are not representable.
func CoreFontConfig() Config {
	cfg := DefaultConfig()
	cfg.FontDir = ""
	cfg.RegularFont = ""
	cfg.BoldFont = ""
	cfg.ItalicFont = ""
	return cfg
}

func (c Config) usesCoreFont() bool {
	return c.RegularFont == "" && c.BoldFont == "" && c.ItalicFont == ""
}

// family is the font family name the canvas registers its fonts under.
func (c Config) family() string {
	if c.usesCoreFont() {
		return c.CoreFont
	}
	return c.FontFamily
}

// withDefaults fills unset page and font family fields. Font files are taken
// as given: a Config naming no font files at all selects CoreFont.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.PageSize == "" {
		c.PageSize = def.PageSize
	}
	if c.Unit == "" {
		c.Unit = def.Unit
	}
	if c.Margin <= 0 {
		c.Margin = def.Margin
	}
	if c.BottomMargin <= 0 {
		c.BottomMargin = 2 * c.Margin
	}
	if c.FontFamily == "" {
		c.FontFamily = def.FontFamily
	}
	if c.CoreFont == "" {
		c.CoreFont = def.CoreFont
	}
	if c.Creator == "" {
		c.Creator = def.Creator
	}
	if c.CreationDate.IsZero() {
		c.CreationDate = DefaultCreationDate
	}
	return c
}
