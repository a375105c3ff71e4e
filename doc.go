// Package cvpdf lays out a curriculum vitae onto a paginated canvas.
//
// A Document is an ordered list of titled sections, each holding headings,
// bullets and paragraphs. Render walks the document once and issues drawing
// calls against a Canvas with a fixed vertical rhythm; pagination, line
// wrapping and font embedding belong to the canvas. The pdf subpackage
// provides an fpdf-backed canvas and the preview subpackage a text one.
//
// Example:
//
//	doc, err := cvpdf.ParseMarkdown(src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := pdf.Render(pdf.RenderRequest{
//		Document: doc,
//		Writer:   outFile,
//		Config:   pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Pages, "pages")
//
// The CV content is authored in Markdown: "#" names the person, the
// paragraph below it holds the contact lines, "##" starts a section, "###"
// a heading whose optional subtext is a following paragraph set entirely in
// emphasis. List items become bullets and nested items continuation lines.
package cvpdf
