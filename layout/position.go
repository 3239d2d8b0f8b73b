package layout

// PositionConfig controls how a fitted block is turned into a RenderSpec.
type PositionConfig struct {
	// CanvasWidth centers each line against the full canvas, not the block.
	CanvasWidth int
	// Anchor is the fractional vertical offset within the region where the
	// block's center sits, normally the Placement result.
	Anchor float64
	// PaddingX and PaddingY grow the backing rectangle beyond the block.
	PaddingX int
	PaddingY int
	// BackingAlpha is the fill opacity of the backing rectangle.
	BackingAlpha uint8
}

// Position lays a fitted block onto the canvas: each line is centered
// horizontally against the full canvas width using its own measured width,
// the block is centered vertically on the anchor point, and the backing
// rectangle is sized to the measured block plus padding.
func (e *Engine) Position(font FontSpec, block TextBlock, region Region, cfg PositionConfig) RenderSpec {
	anchorY := region.Y0 + int(float64(region.Height())*cfg.Anchor)
	top := anchorY - block.Height/2

	ascent := e.measurer.Ascent(font.Size)

	lines := make([]PositionedLine, 0, len(block.Lines))
	y := top
	minX, maxX := cfg.CanvasWidth, 0
	for _, l := range block.Lines {
		x := (cfg.CanvasWidth - l.Width) / 2
		lines = append(lines, PositionedLine{
			Text:      l.Text,
			Width:     l.Width,
			X:         x,
			BaselineY: y + ascent,
		})
		if x < minX {
			minX = x
		}
		if x+l.Width > maxX {
			maxX = x + l.Width
		}
		y += l.Height + e.lineSpacing
	}

	return RenderSpec{
		Region: region,
		Font:   font,
		Lines:  lines,
		Backing: Backing{
			X0:    minX - cfg.PaddingX,
			Y0:    top - cfg.PaddingY,
			X1:    maxX + cfg.PaddingX,
			Y1:    top + block.Height + cfg.PaddingY,
			Alpha: cfg.BackingAlpha,
		},
	}
}
