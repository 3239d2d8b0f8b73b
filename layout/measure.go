package layout

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const measureDPI = 72

// FaceMeasurer measures text through OpenType faces built from one parsed
// font. Faces are cached per size because the shrink loop revisits sizes.
type FaceMeasurer struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFaceMeasurer parses TTF/OTF bytes into a measurer.
func NewFaceMeasurer(fontBytes []byte) (*FaceMeasurer, error) {
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FaceMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// Measure returns the advance width and line height of text at size.
func (m *FaceMeasurer) Measure(text string, size float64) (int, int) {
	face, err := m.face(size)
	if err != nil {
		return 0, 0
	}
	width := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	return width, height
}

// Ascent returns the baseline offset from the top of a line at size.
func (m *FaceMeasurer) Ascent(size float64) int {
	face, err := m.face(size)
	if err != nil {
		return int(size)
	}
	return face.Metrics().Ascent.Ceil()
}

func (m *FaceMeasurer) face(size float64) (font.Face, error) {
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     measureDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build face at %.0fpt: %w", size, err)
	}
	m.faces[size] = f
	return f, nil
}
