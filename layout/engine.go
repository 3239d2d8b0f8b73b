package layout

import "strings"

// Measurer measures rendered text at a font size. The production
// implementation sits on an OpenType face; tests substitute a fixed-width
// stub.
type Measurer interface {
	// Measure returns the advance width and line height of text at size.
	Measure(text string, size float64) (width, height int)
	// Ascent returns the baseline offset from the top of a line at size.
	Ascent(size float64) int
}

// Engine computes wrapped, sized, positioned text for a region.
type Engine struct {
	measurer Measurer

	startSize   float64
	minSize     float64
	step        float64
	maxLines    int
	lineSpacing int
}

// EngineConfig carries the shrink-to-fit parameters.
type EngineConfig struct {
	StartFontSize float64
	MinFontSize   float64
	FontStep      float64
	MaxLineCount  int
	LineSpacing   int
}

// NewEngine creates a layout engine over the given measurer.
func NewEngine(m Measurer, cfg EngineConfig) *Engine {
	return &Engine{
		measurer:    m,
		startSize:   cfg.StartFontSize,
		minSize:     cfg.MinFontSize,
		step:        cfg.FontStep,
		maxLines:    cfg.MaxLineCount,
		lineSpacing: cfg.LineSpacing,
	}
}

// Wrap greedily wraps text into lines no wider than maxWidth. When the
// line count would exceed the configured maximum, the overflow lines are
// concatenated into the final permitted line.
//
// NOTE: the merge step means the last line may legally exceed maxWidth.
// This width-budget violation is long-standing, observable output and is
// pinned by a test; do not "fix" it here without revisiting the composer's
// backing-rectangle sizing.
func (e *Engine) Wrap(text string, size float64, maxWidth int) []Line {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current []string
	for _, w := range words {
		test := strings.Join(append(current, w), " ")
		width, _ := e.measurer.Measure(test, size)
		if width <= maxWidth || len(current) == 0 {
			current = append(current, w)
			continue
		}
		lines = append(lines, strings.Join(current, " "))
		current = []string{w}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	if e.maxLines > 0 && len(lines) > e.maxLines {
		merged := strings.Join(lines[e.maxLines-1:], " ")
		lines = append(lines[:e.maxLines-1], merged)
	}

	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		w, h := e.measurer.Measure(l, size)
		out = append(out, Line{Text: l, Width: w, Height: h})
	}
	return out
}

// FitToRegion wraps text at decreasing font sizes until the block fits the
// region or the size floor is reached. The floor result is returned even
// when the block still overflows; a best-effort fit beats no caption.
func (e *Engine) FitToRegion(text string, region Region) (FontSpec, TextBlock) {
	size := e.startSize
	for {
		block := e.block(text, size, region.Width())
		fits := block.Height <= region.Height() && len(block.Lines) <= e.maxLines
		if fits || size <= e.minSize {
			return FontSpec{Size: size}, block
		}
		size -= e.step
		if size < e.minSize {
			size = e.minSize
		}
	}
}

// block recomputes the wrapped block from scratch at the given size.
func (e *Engine) block(text string, size float64, maxWidth int) TextBlock {
	lines := e.Wrap(text, size, maxWidth)
	b := TextBlock{Lines: lines}
	for i, l := range lines {
		if l.Width > b.Width {
			b.Width = l.Width
		}
		b.Height += l.Height
		if i > 0 {
			b.Height += e.lineSpacing
		}
	}
	return b
}

// LineSpacing exposes the configured inter-line gap for positioning.
func (e *Engine) LineSpacing() int { return e.lineSpacing }
