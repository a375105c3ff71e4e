package cvpdf

import (
	"fmt"
	"strings"
)

// BlockKind identifies the variant held by a Block.
type BlockKind uint8

const (
	// BlockHeading is a bold line with an optional italic subtext line.
	BlockHeading BlockKind = iota + 1
	// BlockBullet is a bullet glyph followed by wrapped body text.
	BlockBullet
	// BlockParagraph is wrapped body text spanning the printable width.
	BlockParagraph
)

func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockBullet:
		return "bullet"
	case BlockParagraph:
		return "paragraph"
	default:
		return fmt.Sprintf("BlockKind(%d)", uint8(k))
	}
}

// Block is one unit of content within a section.
type Block struct {
	Kind    BlockKind
	Text    string
	Subtext string
}

// Heading returns a heading block. subtext may be empty.
func Heading(text, subtext string) Block {
	return Block{Kind: BlockHeading, Text: text, Subtext: subtext}
}

// Bullet returns a bulleted item.
func Bullet(text string) Block {
	return Block{Kind: BlockBullet, Text: text}
}

// Paragraph returns a plain paragraph.
func Paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

// Section is a titled, ordered run of blocks.
type Section struct {
	Title  string
	Blocks []Block
}

// Header is drawn at the top of every page.
type Header struct {
	Name  string
	Lines []string
}

// Document is the full CV. It is not modified by rendering.
type Document struct {
	Header   Header
	Sections []Section
}

// Validate reports the first structural problem in d.
func (d Document) Validate() error {
	for i, sec := range d.Sections {
		if strings.TrimSpace(sec.Title) == "" {
			return fmt.Errorf("section %d: empty title", i+1)
		}
		for j, b := range sec.Blocks {
			switch b.Kind {
			case BlockHeading, BlockBullet, BlockParagraph:
			default:
				return fmt.Errorf("section %q block %d: unknown kind %v", sec.Title, j+1, b.Kind)
			}
		}
	}
	return nil
}

// FileName returns the conventional output name, e.g. "Jane_Doe_CV.pdf".
func (d Document) FileName() string {
	name := strings.Join(strings.Fields(d.Header.Name), "_")
	if name == "" {
		return "CV.pdf"
	}
	return name + "_CV.pdf"
}
