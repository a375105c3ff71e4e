package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/patjsic/cvpdf"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Document cvpdf.Document
	Writer   io.Writer
	Config   Config
	// Layout overrides cvpdf.DefaultLayout; zero fields keep their default.
	// FontFamily and Margin always follow Config.
	Layout cvpdf.Layout
}

// Render lays out req.Document as a PDF and writes it to req.Writer. Nothing
// is written unless rendering succeeds.
func Render(req RenderRequest) (cvpdf.Result, error) {
	if req.Writer == nil {
		return cvpdf.Result{}, fmt.Errorf("pdf render: writer is nil")
	}
	var buf bytes.Buffer
	res, err := render(req, &buf)
	if err != nil {
		return cvpdf.Result{}, err
	}
	if _, err := buf.WriteTo(req.Writer); err != nil {
		return cvpdf.Result{}, &cvpdf.OutputWriteError{Err: err}
	}
	return res, nil
}

// WriteFile renders req.Document to path, ignoring req.Writer. The file is
// written to a temporary sibling and renamed into place, so a failed render
// never creates, truncates or overwrites path.
func WriteFile(path string, req RenderRequest) (cvpdf.Result, error) {
	var buf bytes.Buffer
	res, err := render(req, &buf)
	if err != nil {
		return cvpdf.Result{}, err
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return cvpdf.Result{}, &cvpdf.OutputWriteError{Path: path, Err: err}
	}
	return res, nil
}

func render(req RenderRequest, w io.Writer) (cvpdf.Result, error) {
	cfg := req.Config.withDefaults()
	layout := cvpdf.DefaultLayout().Override(req.Layout)
	layout.FontFamily = cfg.family()
	layout.Margin = cfg.Margin

	canvas, err := NewCanvas(cfg, cvpdf.HeaderHook(req.Document.Header, layout))
	if err != nil {
		return cvpdf.Result{}, err
	}
	res, err := cvpdf.Render(req.Document, canvas, cvpdf.WithLayout(layout))
	if err != nil {
		return cvpdf.Result{}, err
	}
	if err := canvas.Output(w); err != nil {
		return cvpdf.Result{}, &cvpdf.RenderError{Err: err}
	}
	return res, nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
