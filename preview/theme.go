package preview

import (
	"sort"
	"strings"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiDim       = "\x1b[2m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
)

// Style is a terminal style expressed as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

func (s Style) apply(text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + ansiReset
}

// Styles maps canvas font styles to terminal styles.
type Styles struct {
	Regular Style
	Bold    Style
	Italic  Style
	Rule    Style
	PageGap Style
}

// Theme provides named styles for the preview.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	return Style{Prefix: strings.Join(prefixes, "")}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Bold:    style(ansiBold),
		Italic:  style(ansiItalic),
		Rule:    style(ansiDim),
		PageGap: style(ansiDim),
	}},
	"ink": theme{name: "ink", styles: Styles{
		Bold:    style(ansiBold, "\x1b[38;5;25m"),
		Italic:  style(ansiItalic, "\x1b[38;5;244m"),
		Rule:    style("\x1b[38;5;25m"),
		PageGap: style(ansiDim, ansiUnderline),
	}},
	"boring": theme{name: "boring"},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	t, ok := builtinThemes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme without any escape sequences.
func BoringTheme() Theme {
	return builtinThemes["boring"]
}
