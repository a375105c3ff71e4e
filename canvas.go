package cvpdf

// Font styles accepted by Canvas.SetFont.
const (
	StyleRegular = ""
	StyleBold    = "B"
	StyleItalic  = "I"
)

// Text alignments accepted by Canvas.TextCell.
const (
	AlignLeft   = ""
	AlignCenter = "C"
	AlignRight  = "R"
)

// Canvas is the page engine a Document is rendered onto. Implementations own
// pagination: when text would overflow the page they start a new one and run
// their PageHook before continuing.
//
// Drawing methods do not return errors. A failure is recorded and reported by
// Err, after which further calls are no-ops.
type Canvas interface {
	StartPage()
	SetFont(family, style string, size float64)
	SetLineWidth(width float64)
	// TextCell draws a single-line cell. A width of 0 extends to the right
	// margin. With lineBreak the cursor moves to the start of the next line,
	// otherwise it moves right by width.
	TextCell(width, height float64, text string, lineBreak bool, align string)
	// WrappedText draws text wrapped to width (0 extends to the right
	// margin), advancing the cursor by height for every produced line.
	WrappedText(width, height float64, text string)
	Line(x1, y, x2 float64)
	// Advance moves the cursor down by dy and back to the left margin.
	Advance(dy float64)
	Y() float64
	PageWidth() float64
	PageNo() int
	Err() error
}

// PageHook is run by a Canvas at the top of every new page.
type PageHook interface {
	PageStarted(c Canvas, page int)
}

// PageHookFunc adapts a function to PageHook.
type PageHookFunc func(c Canvas, page int)

// PageStarted calls f(c, page).
func (f PageHookFunc) PageStarted(c Canvas, page int) {
	f(c, page)
}
