package preview

import (
	"io"

	"github.com/patjsic/cvpdf"
)

// Render draws doc as text, with its header at the top of every page, and
// writes the result to w.
func Render(doc cvpdf.Document, w io.Writer, cfg Config) (cvpdf.Result, error) {
	c := NewCanvas(cfg, nil)
	l := c.Layout()
	c.hook = cvpdf.HeaderHook(doc.Header, l)
	res, err := cvpdf.Render(doc, c, cvpdf.WithLayout(l))
	if err != nil {
		return cvpdf.Result{}, err
	}
	if _, err := c.WriteTo(w); err != nil {
		return cvpdf.Result{}, &cvpdf.OutputWriteError{Err: err}
	}
	return res, nil
}
