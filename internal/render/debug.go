package render

// DrawDebug stamps lines bottom-right, the last line lowest.
func DrawDebug(c Canvas, lines []string) {
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	y := h - 8
	for i := len(lines) - 1; i >= 0; i-- {
		y -= TextHeight(1) + 4
		StampText(c, lines[i], w-TextWidth(lines[i], 1)-12, y, 1)
	}
}
