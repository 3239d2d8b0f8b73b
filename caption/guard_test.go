package caption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bhaktibot/history"
)

func historyOf(lines ...string) *history.History {
	h := history.NewHistory(0)
	for _, l := range lines {
		h.Add(l, Normalize(l))
	}
	return h
}

func TestGuardExactDuplicate(t *testing.T) {
	g := NewGuard(0.78)
	used := "जब सब छूट जाए, तब भी श्रीकृष्ण साथ रहते हैं। ❤️"
	h := historyOf(used)

	// same text with different decoration still matches by normalized key
	res := g.Check("जब सब छूट जाए, तब भी श्रीकृष्ण साथ रहते हैं। 🌸🌸", h)
	assert.True(t, res.Duplicate)
	assert.Equal(t, used, res.Matched)
	assert.Equal(t, 1.0, res.BestScore)
}

func TestGuardSubstringEitherDirection(t *testing.T) {
	g := NewGuard(0.99) // threshold effectively off; substring must trigger alone
	h := historyOf("कृष्ण पर छोड़ दो वह तुम्हें संभाल लेंगे")

	shorter := g.Check("कृष्ण पर छोड़ दो", h)
	assert.True(t, shorter.Duplicate, "candidate contained in history entry")

	longer := g.Check("हमेशा कृष्ण पर छोड़ दो वह तुम्हें संभाल लेंगे दोस्त", h)
	assert.True(t, longer.Duplicate, "candidate containing history entry")
}

func TestGuardThreshold(t *testing.T) {
	entry := "कृष्ण का नाम ही हर चिंता की आख़िरी दवा है"
	near := "कृष्ण का नाम ही हर चिंता की आख़िरी दवा था"
	h := historyOf(entry)

	strict := NewGuard(0.78)
	res := strict.Check(near, h)
	require.True(t, res.Duplicate, "near-identical line must exceed 0.78")
	assert.GreaterOrEqual(t, res.BestScore, 0.78)

	lax := NewGuard(0.999)
	res = lax.Check(near, h)
	assert.False(t, res.Duplicate, "raised threshold admits the near miss")
	assert.Greater(t, res.BestScore, 0.0)
}

func TestGuardNovelCandidate(t *testing.T) {
	g := NewGuard(0.78)
	h := historyOf("जिसने कृष्ण को पाया, उसने सब कुछ पा लिया। 🌸")

	res := g.Check("कान्हा की बांसुरी हर सुबह नई उम्मीद लेकर आती है", h)
	assert.False(t, res.Duplicate)
	assert.Less(t, res.BestScore, 0.78)
}

func TestGuardEmptyAfterNormalize(t *testing.T) {
	g := NewGuard(0.78)
	res := g.Check("🌸✨", historyOf())
	assert.True(t, res.Duplicate, "glyph-only candidates are unusable")
}
