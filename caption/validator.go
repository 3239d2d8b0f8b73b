package caption

import (
	"fmt"
	"math/rand"
	"strings"
)

// ValidationError explains why a candidate was rejected. Rejections are
// retried by the generator, never surfaced to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("caption rejected: %s", e.Reason)
}

// DuplicateError marks a candidate rejected by the dedupe guard. Score is
// the candidate's best similarity against history, used for near-miss
// tracking.
type DuplicateError struct {
	Matched string
	Score   float64
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate caption (%.0f%% similar to %q)", e.Score*100, e.Matched)
}

// Validator applies the quality gate: length, script composition, required
// subject names and the decorative-glyph policy.
type Validator struct {
	minWords       int
	maxWords       int
	scriptRatioMin float64
	keywords       []string
	glyphs         []string
	rng            *rand.Rand
}

// ValidatorConfig carries the validator thresholds. Empty keyword or glyph
// sets fall back to the built-in Krishna defaults.
type ValidatorConfig struct {
	MinWords       int
	MaxWords       int
	ScriptRatioMin float64
	Keywords       []string
	Glyphs         []string
	// Seed fixes the glyph picker for tests; zero means a time-based source.
	Seed int64
}

// NewValidator builds a validator from config, filling unset fields with
// defaults.
func NewValidator(cfg ValidatorConfig) *Validator {
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = DefaultKeywords
	}
	if len(cfg.Glyphs) == 0 {
		cfg.Glyphs = DefaultGlyphs
	}
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	return &Validator{
		minWords:       cfg.MinWords,
		maxWords:       cfg.MaxWords,
		scriptRatioMin: cfg.ScriptRatioMin,
		keywords:       cfg.Keywords,
		glyphs:         cfg.Glyphs,
		rng:            rng,
	}
}

// Validate checks the candidate and, on success, returns it with decorative
// glyphs guaranteed present. Checks short-circuit on the first failure.
func (v *Validator) Validate(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", &ValidationError{Reason: "empty after cleaning"}
	}

	words := strings.Fields(line)
	if len(words) < v.minWords || len(words) > v.maxWords {
		return "", &ValidationError{
			Reason: fmt.Sprintf("%d words (needs %d-%d)", len(words), v.minWords, v.maxWords),
		}
	}

	if ratio := devanagariRatio(line); ratio < v.scriptRatioMin {
		return "", &ValidationError{
			Reason: fmt.Sprintf("only %.0f%% Devanagari (needs %.0f%%)", ratio*100, v.scriptRatioMin*100),
		}
	}

	if !v.hasKeyword(line) {
		return "", &ValidationError{Reason: "no Krishna name present"}
	}

	return v.ensureGlyphs(line), nil
}

func (v *Validator) hasKeyword(line string) bool {
	for _, kw := range v.keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// devanagariRatio returns the fraction of runes in the Devanagari block
// (U+0900..U+097F) over all runes, spaces and emoji included. Guards
// against mixed-language leakage from the provider.
func devanagariRatio(line string) float64 {
	total, hindi := 0, 0
	for _, r := range line {
		total++
		if r >= 0x0900 && r <= 0x097F {
			hindi++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hindi) / float64(total)
}

// ensureGlyphs appends one or two decorative glyphs when none are present,
// inserting a danda first unless the line already ends with terminal
// punctuation.
func (v *Validator) ensureGlyphs(line string) string {
	for _, g := range v.glyphs {
		if strings.Contains(line, g) {
			return line
		}
	}

	first, second := v.pickTwo()
	extra := first
	if second != "" {
		extra += second
	}

	if strings.HasSuffix(line, "।") || strings.HasSuffix(line, ".") ||
		strings.HasSuffix(line, "!") || strings.HasSuffix(line, "…") {
		return line + " " + extra
	}
	return line + "। " + extra
}

func (v *Validator) pickTwo() (string, string) {
	if len(v.glyphs) == 1 {
		return v.glyphs[0], ""
	}
	i := v.intn(len(v.glyphs))
	j := v.intn(len(v.glyphs) - 1)
	if j >= i {
		j++
	}
	return v.glyphs[i], v.glyphs[j]
}

func (v *Validator) intn(n int) int {
	if v.rng != nil {
		return v.rng.Intn(n)
	}
	return rand.Intn(n)
}
