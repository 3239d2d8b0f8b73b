package caption

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testValidator(seed int64) *Validator {
	return NewValidator(ValidatorConfig{
		MinWords:       8,
		MaxWords:       18,
		ScriptRatioMin: 0.4,
		Seed:           seed,
	})
}

func TestValidateRejectsEmpty(t *testing.T) {
	_, err := testValidator(1).Validate("   ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "empty")
}

func TestValidateWordCountBounds(t *testing.T) {
	v := testValidator(1)

	_, err := v.Validate("कृष्ण साथ हैं")
	assert.Error(t, err, "3 words is below the minimum")

	long := strings.Repeat("कृष्ण ", 19)
	_, err = v.Validate(strings.TrimSpace(long))
	assert.Error(t, err, "19 words is above the maximum")

	ok, err := v.Validate("कृष्ण पर छोड़ दो वह तुम्हें संभाल लेंगे")
	require.NoError(t, err)
	assert.NotEmpty(t, ok)
}

func TestValidateScriptRatio(t *testing.T) {
	v := testValidator(1)

	// Krishna name present but the line is mostly Latin
	_, err := v.Validate("Krishna कृष्ण always keeps every promise he ever made")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "Devanagari")
}

func TestValidateRequiresKeyword(t *testing.T) {
	v := testValidator(1)

	_, err := v.Validate("भरोसा रखो सब कुछ ठीक हो जाएगा एक दिन ज़रूर")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "name")
}

func TestValidateKeepsExistingGlyph(t *testing.T) {
	v := testValidator(1)
	in := "कृष्ण पर छोड़ दो वह तुम्हें संभाल लेंगे। 🦚"
	out, err := v.Validate(in)
	require.NoError(t, err)
	assert.Equal(t, in, out, "a present glyph must not be duplicated")
}

func TestValidateAppendsGlyphs(t *testing.T) {
	v := testValidator(7)

	out, err := v.Validate("कृष्ण पर छोड़ दो वह तुम्हें संभाल लेंगे")
	require.NoError(t, err)

	found := 0
	for _, g := range DefaultGlyphs {
		found += strings.Count(out, g)
	}
	assert.GreaterOrEqual(t, found, 1)
	assert.LessOrEqual(t, found, 2)
	assert.Contains(t, out, "।", "a danda is inserted before the glyphs")
}

func TestValidateRespectsTerminalPunctuation(t *testing.T) {
	v := testValidator(7)

	out, err := v.Validate("कृष्ण पर छोड़ दो वह तुम्हें संभाल लेंगे।")
	require.NoError(t, err)
	assert.False(t, strings.Contains(out, "।।"), "no second danda after existing punctuation")
	assert.True(t, strings.HasPrefix(out, "कृष्ण पर छोड़ दो वह तुम्हें संभाल लेंगे। "))
}

func TestValidateDeterministicWithSeed(t *testing.T) {
	a, err := testValidator(42).Validate("कृष्ण पर छोड़ दो वह तुम्हें संभाल लेंगे")
	require.NoError(t, err)
	b, err := testValidator(42).Validate("कृष्ण पर छोड़ दो वह तुम्हें संभाल लेंगे")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
