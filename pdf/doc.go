// Package pdf renders a cvpdf.Document to PDF with fpdf.
//
// Example:
//
//	cfg := pdf.DefaultConfig()
//	cfg.FontDir = "fonts"
//
//	res, err := pdf.WriteFile("Jane_Doe_CV.pdf", pdf.RenderRequest{
//		Document: doc,
//		Config:   cfg,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// DefaultConfig expects DejaVuSans.ttf, DejaVuSans-Bold.ttf and
// DejaVuSans-Oblique.ttf in FontDir. CoreFontConfig needs no font files and
// falls back to Helvetica with cp1252 encoding.
package pdf
