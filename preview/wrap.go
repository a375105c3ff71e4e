package preview

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/patjsic/cvpdf"
)

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

// wrapLines word-wraps text to limit columns, hard-breaking words that are
// longer than a line. Existing newlines are kept.
func wrapLines(text string, limit int) []string {
	if limit < 1 {
		limit = 1
	}
	wrapped := wrap.String(wordwrap.String(text, limit), limit)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func pad(text string, cols int, align string) string {
	w := ansi.PrintableRuneWidth(text)
	if w >= cols {
		return text
	}
	gap := cols - w
	switch align {
	case cvpdf.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	case cvpdf.AlignRight:
		return strings.Repeat(" ", gap) + text
	default:
		return text + strings.Repeat(" ", gap)
	}
}
