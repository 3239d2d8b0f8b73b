// Package layout wraps caption text into lines, shrinks the font until the
// block fits a target region and picks a vertical anchor from the artwork's
// luminance. It measures text through a Measurer and hands a RenderSpec to
// the composer; it never touches pixels itself.
package layout

// Region is a rectangle in canvas coordinates into which the text must fit.
// It is supplied by the caller and not owned by the engine.
type Region struct {
	X0, Y0, X1, Y1 int
}

// Width returns the usable width of the region.
func (r Region) Width() int { return r.X1 - r.X0 }

// Height returns the usable height of the region.
func (r Region) Height() int { return r.Y1 - r.Y0 }

// Line is one wrapped line with its measured dimensions.
type Line struct {
	Text   string
	Width  int
	Height int
}

// TextBlock is an ordered sequence of lines plus the measured block
// dimensions. Blocks are recomputed from scratch on every layout attempt,
// never mutated in place.
type TextBlock struct {
	Lines  []Line
	Width  int
	Height int
}

// FontSpec identifies a font and the one tunable dimension, its size.
type FontSpec struct {
	Name string
	Size float64
}

// PositionedLine is a line placed on the canvas: the composer draws Text
// with its baseline at (X, BaselineY).
type PositionedLine struct {
	Text      string
	Width     int
	X         int
	BaselineY int
}

// Backing describes the translucent rectangle drawn behind the text.
type Backing struct {
	X0, Y0, X1, Y1 int
	// Alpha of the fill, 0-255; the fill color is the composer's choice.
	Alpha uint8
}

// RenderSpec is the full contract handed to the frame composer.
type RenderSpec struct {
	Region  Region
	Font    FontSpec
	Lines   []PositionedLine
	Backing Backing
}
