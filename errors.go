package cvpdf

import "fmt"

// AssetLoadError reports a font or other asset that could not be read. It is
// returned before any page content is drawn.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load asset %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// RenderError reports a failure raised by the canvas during a render pass.
// Any output produced before the failure must be discarded.
type RenderError struct {
	Section string
	Err     error
}

func (e *RenderError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("render: %v", e.Err)
	}
	return fmt.Sprintf("render section %q: %v", e.Section, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// OutputWriteError reports a failure writing the finished document.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("write output: %v", e.Err)
	}
	return fmt.Sprintf("write output %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
