package compose

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"

	"bhaktibot/layout"
)

// Composer renders a layout.RenderSpec onto a canvas. It consumes positioned
// lines and a backing spec; all layout decisions happen upstream.
type Composer struct {
	font *truetype.Font
}

// NewComposer parses the font used for rasterization. The same font bytes
// should back the layout measurer so measured and drawn widths agree.
func NewComposer(fontBytes []byte) (*Composer, error) {
	f, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Composer{font: f}, nil
}

// Render draws the backing rectangle and then each line in white at its
// baseline. The canvas is modified in place.
func (c *Composer) Render(canvas *image.RGBA, spec layout.RenderSpec) error {
	if spec.Backing.Alpha > 0 {
		fill := image.NewUniform(color.RGBA{0, 0, 0, spec.Backing.Alpha})
		rect := image.Rect(spec.Backing.X0, spec.Backing.Y0, spec.Backing.X1, spec.Backing.Y1)
		draw.Draw(canvas, rect, fill, image.Point{}, draw.Over)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(c.font)
	ctx.SetFontSize(spec.Font.Size)
	ctx.SetClip(canvas.Bounds())
	ctx.SetDst(canvas)
	ctx.SetSrc(image.White)

	for _, line := range spec.Lines {
		if _, err := ctx.DrawString(line.Text, freetype.Pt(line.X, line.BaselineY)); err != nil {
			return fmt.Errorf("draw line %q: %w", line.Text, err)
		}
	}
	return nil
}

// SavePNG writes the canvas to path.
func SavePNG(canvas image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, canvas); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}
