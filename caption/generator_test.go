package caption

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bhaktibot/history"
)

// scriptedProvider replays canned responses, then errors.
type scriptedProvider struct {
	responses []string
	calls     int
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.calls++
	if len(p.responses) == 0 {
		return "", errors.New("provider unavailable")
	}
	r := p.responses[0]
	if len(p.responses) > 1 {
		p.responses = p.responses[1:]
	}
	return r, nil
}

// memoryStore keeps history in memory and records save calls.
type memoryStore struct {
	hist    *history.History
	saves   int
	saveErr error
}

func newMemoryStore(lines ...string) *memoryStore {
	return &memoryStore{hist: historyOf(lines...)}
}

func (s *memoryStore) Load() *history.History { return s.hist }

func (s *memoryStore) Save(h *history.History) error {
	s.saves++
	return s.saveErr
}

func newTestGenerator(p Provider, s Store, maxAttempts int) *Generator {
	return NewGenerator(GeneratorConfig{
		Provider: p,
		Store:    s,
		Validator: NewValidator(ValidatorConfig{
			MinWords:       8,
			MaxWords:       18,
			ScriptRatioMin: 0.4,
			Keywords:       []string{"Krishna", "कृष्ण", "कान्हा"},
			Seed:           1,
		}),
		Guard:  NewGuard(0.78),
		Policy: RetryPolicy{MaxAttempts: maxAttempts},
	})
}

const novelLine = "कृष्ण की बांसुरी हर सुबह नई उम्मीद लेकर आती है"

func TestGenerateAcceptsNovelCandidate(t *testing.T) {
	store := newMemoryStore()
	p := &scriptedProvider{responses: []string{novelLine}}
	g := newTestGenerator(p, store, 4)

	initial := store.hist.Len() // seeded style examples

	line, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, line, "कृष्ण")
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, initial+1, store.hist.Len(), "accepted caption lands in history")
	assert.Equal(t, 1, store.saves, "history persisted once per accepted caption")
}

func TestGenerateRejectsRepeatThenFallsBack(t *testing.T) {
	used := "कृष्ण की बांसुरी हर सुबह नई उम्मीद लेकर आती है। 🌸"
	store := newMemoryStore(used)
	// provider returns the already-used line on every attempt
	p := &scriptedProvider{responses: []string{used}}
	g := newTestGenerator(p, store, 3)

	line, err := g.Generate(context.Background())
	require.NoError(t, err, "the generator never surfaces dedupe failures")
	require.NotEmpty(t, line)
	assert.Equal(t, 3, p.calls, "every attempt consumed before fallback")

	// the fallback is the tracked near miss (the rejected candidate itself)
	// or a style example; either way a usable caption comes back
	assert.True(t, line == used || containsLine(StyleExamples, line),
		"fallback %q must come from the near miss or the style pool", line)
}

func containsLine(pool []string, line string) bool {
	for _, p := range pool {
		if p == line {
			return true
		}
	}
	return false
}

func TestGenerateProviderFailuresExhaustIntoFallback(t *testing.T) {
	store := newMemoryStore()
	p := &scriptedProvider{} // always errors
	g := newTestGenerator(p, store, 5)

	line, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, line)
	assert.Equal(t, 5, p.calls)
}

func TestGenerateEmptyFallbackPoolIsFatal(t *testing.T) {
	store := newMemoryStore()
	p := &scriptedProvider{} // always errors
	g := NewGenerator(GeneratorConfig{
		Provider:  p,
		Store:     store,
		Validator: NewValidator(ValidatorConfig{MinWords: 8, MaxWords: 18, ScriptRatioMin: 0.4, Seed: 1}),
		Guard:     NewGuard(0.78),
		Policy:    RetryPolicy{MaxAttempts: 2},
		Fallbacks: []string{},
	})

	_, err := g.Generate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoFallback)
}

func TestGenerateSaveFailureIsNotFatal(t *testing.T) {
	store := newMemoryStore()
	store.saveErr = errors.New("disk full")
	p := &scriptedProvider{responses: []string{novelLine}}
	g := newTestGenerator(p, store, 3)

	line, err := g.Generate(context.Background())
	require.NoError(t, err, "persistence is best-effort")
	assert.NotEmpty(t, line)
}

func TestGenerateValidationFailuresRetry(t *testing.T) {
	store := newMemoryStore()
	p := &scriptedProvider{responses: []string{
		"too short",  // fails word count
		"This is an English sentence about Krishna and his flute music", // fails script ratio
		novelLine, // passes
	}}
	g := newTestGenerator(p, store, 5)

	line, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, line, "कृष्ण")
	assert.Equal(t, 3, p.calls)
}

// latinGenerator admits Latin-script captions so the classic walkthrough
// cases run without Devanagari fixtures.
func latinGenerator(p Provider, s Store, maxAttempts int) *Generator {
	return NewGenerator(GeneratorConfig{
		Provider: p,
		Store:    s,
		Validator: NewValidator(ValidatorConfig{
			MinWords: 8, MaxWords: 18,
			Keywords: []string{"Krishna"},
			Seed:     1,
		}),
		Guard:     NewGuard(0.78),
		Policy:    RetryPolicy{MaxAttempts: maxAttempts},
		Fallbacks: []string{"Krishna walks with those who walk alone at night"},
	})
}

func TestGenerateFreshCandidateIntoEmptyHistory(t *testing.T) {
	store := newMemoryStore()
	p := &scriptedProvider{responses: []string{"Krishna is always walking beside you in silence"}}
	g := latinGenerator(p, store, 4)

	line, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, line, "Krishna is always walking beside you in silence")
	// one seeded fallback plus the accepted caption
	assert.Equal(t, 2, store.hist.Len())
}

func TestGenerateRepeatCandidateExhaustsToFallbackPool(t *testing.T) {
	seen := "Krishna is always walking beside you in silence"
	store := newMemoryStore(seen)
	p := &scriptedProvider{responses: []string{seen}}
	g := latinGenerator(p, store, 3)

	line, err := g.Generate(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, line)
	assert.Equal(t, 3, p.calls)
	// the decorated repeat is the tracked near miss; otherwise the pool entry
	assert.True(t,
		strings.HasPrefix(line, seen) ||
			strings.HasPrefix(line, "Krishna walks with those who walk alone at night"),
		"unexpected fallback %q", line)
}

func TestRetryPolicyExhausted(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3}
	assert.False(t, p.Exhausted(1))
	assert.False(t, p.Exhausted(3))
	assert.True(t, p.Exhausted(4))
}

func TestRetryPolicyWaitHonorsCancel(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, Backoff: 1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, p.Wait(ctx, 2))
}
