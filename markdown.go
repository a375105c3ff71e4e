package cvpdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ParseMarkdown builds a Document from Markdown source.
//
//	# Name                      Header.Name
//	contact paragraph           Header.Lines, one per source line
//	## Title                    new Section
//	### Text                    Heading
//	*subtext*                   Subtext of the heading right above it
//	- item                      Bullet
//	  - detail                  continuation line " - detail"
//	other paragraphs            Paragraph, hard breaks kept as newlines;
//	\- detail after a break     continuation line " - detail"
//
// HTML comments are ignored. Any other block is an error.
func ParseMarkdown(src []byte) (Document, error) {
	if err := ValidateSource(src); err != nil {
		return Document{}, fmt.Errorf("parse markdown: %w", err)
	}
	root := goldmark.New().Parser().Parse(text.NewReader(src))
	b := docBuilder{src: src, sec: -1}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if err := b.block(n); err != nil {
			if line := b.line(n); line > 0 {
				return Document{}, fmt.Errorf("parse markdown: line %d: %w", line, err)
			}
			return Document{}, fmt.Errorf("parse markdown: %w", err)
		}
	}
	if err := b.doc.Validate(); err != nil {
		return Document{}, fmt.Errorf("parse markdown: %w", err)
	}
	return b.doc, nil
}

type docBuilder struct {
	src []byte
	doc Document
	sec int
	// set while the last block is a heading that may still take a subtext.
	awaitSubtext bool
}

func (b *docBuilder) block(n ast.Node) error {
	awaiting := b.awaitSubtext
	b.awaitSubtext = false
	switch n := n.(type) {
	case *ast.Heading:
		return b.heading(n)
	case *ast.Paragraph:
		if b.sec < 0 {
			for _, line := range strings.Split(b.inline(n, '\n'), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					b.doc.Header.Lines = append(b.doc.Header.Lines, line)
				}
			}
			return nil
		}
		if em, ok := onlyEmphasis(n); ok && awaiting {
			blocks := b.doc.Sections[b.sec].Blocks
			blocks[len(blocks)-1].Subtext = b.inline(em, ' ')
			return nil
		}
		b.add(Paragraph(detailLines(b.inline(n, ' '))))
		return nil
	case *ast.List:
		if b.sec < 0 {
			return fmt.Errorf("list before first section")
		}
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			b.add(Bullet(b.listItem(item)))
		}
		return nil
	case *ast.HTMLBlock:
		if n.HTMLBlockType == ast.HTMLBlockType2 {
			return nil
		}
	}
	return fmt.Errorf("unsupported %s block", n.Kind())
}

func (b *docBuilder) heading(n *ast.Heading) error {
	title := strings.TrimSpace(b.inline(n, ' '))
	switch n.Level {
	case 1:
		if b.sec >= 0 {
			return fmt.Errorf("name heading %q after first section", title)
		}
		b.doc.Header.Name = title
	case 2:
		b.doc.Sections = append(b.doc.Sections, Section{Title: title})
		b.sec = len(b.doc.Sections) - 1
	case 3:
		if b.sec < 0 {
			return fmt.Errorf("heading %q before first section", title)
		}
		b.add(Heading(title, ""))
		b.awaitSubtext = true
	default:
		return fmt.Errorf("unsupported heading level %d", n.Level)
	}
	return nil
}

// detailLines indents dash-led lines after the first so they match the
// " - " continuation lines of nested list items.
func detailLines(s string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "- ") {
			lines[i] = " " + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func (b *docBuilder) add(block Block) {
	s := &b.doc.Sections[b.sec]
	s.Blocks = append(s.Blocks, block)
}

func (b *docBuilder) listItem(item ast.Node) string {
	var parts []string
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if list, ok := c.(*ast.List); ok {
			for sub := list.FirstChild(); sub != nil; sub = sub.NextSibling() {
				parts = append(parts, " - "+b.listItem(sub))
			}
			continue
		}
		parts = append(parts, b.inline(c, ' '))
	}
	return strings.Join(parts, "\n")
}

// inline flattens the inline children of n to plain text. Soft line breaks
// become soft, hard line breaks a newline.
func (b *docBuilder) inline(n ast.Node, soft byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.writeInline(&buf, c, soft)
	}
	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

func (b *docBuilder) writeInline(buf *bytes.Buffer, n ast.Node, soft byte) {
	switch n := n.(type) {
	case *ast.Text:
		seg := n.Segment.Value(b.src)
		if n.IsRaw() {
			buf.Write(seg)
		} else {
			buf.Write(util.ResolveEntityNames(util.ResolveNumericReferences(util.UnescapePunctuations(seg))))
		}
		switch {
		case n.HardLineBreak():
			buf.WriteByte('\n')
		case n.SoftLineBreak():
			buf.WriteByte(soft)
		}
	case *ast.String:
		buf.Write(n.Value)
	case *ast.AutoLink:
		buf.Write(n.Label(b.src))
	case *ast.RawHTML:
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			b.writeInline(buf, c, soft)
		}
	}
}

// line is the 1-based source line of n. Container blocks carry no lines of
// their own, so the first descendant that does is used.
func (b *docBuilder) line(n ast.Node) int {
	for ; n != nil; n = n.FirstChild() {
		if lines := n.Lines(); lines != nil && lines.Len() > 0 {
			return bytes.Count(b.src[:lines.At(0).Start], []byte("\n")) + 1
		}
		if n.Type() == ast.TypeInline {
			break
		}
	}
	return 0
}

func onlyEmphasis(p *ast.Paragraph) (*ast.Emphasis, bool) {
	em, ok := p.FirstChild().(*ast.Emphasis)
	if !ok || em.Level != 1 || p.FirstChild() != p.LastChild() {
		return nil, false
	}
	return em, true
}
