package cvpdf

// HeaderHook returns a PageHook that draws h centered at the top of every
// page, followed by a full-width rule.
func HeaderHook(h Header, l Layout) PageHook {
	return PageHookFunc(func(c Canvas, _ int) {
		if h.Name == "" && len(h.Lines) == 0 {
			return
		}
		c.SetFont(l.FontFamily, StyleRegular, l.HeaderNameSize)
		c.TextCell(0, l.HeaderNameHeight, h.Name, true, AlignCenter)
		c.SetFont(l.FontFamily, StyleRegular, l.HeaderLineSize)
		for _, line := range h.Lines {
			c.TextCell(0, l.HeaderLineHeight, line, true, AlignCenter)
		}
		c.Advance(l.HeaderGap)
		c.SetLineWidth(l.HeaderRuleWidth)
		y := c.Y()
		c.Line(l.Margin, y, c.PageWidth()-l.Margin)
		c.Advance(l.HeaderBottomSpacing)
	})
}
