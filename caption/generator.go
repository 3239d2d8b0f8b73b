package caption

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"bhaktibot/history"
)

// Provider is the minimal generation capability the generator needs. Any
// transport, auth or quota failure comes back as an error and counts as a
// failed attempt.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Store is the slice of the history store the generator uses: one read at
// start, one write per accepted caption.
type Store interface {
	Load() *history.History
	Save(h *history.History) error
}

// ErrNoFallback is returned only when generation is exhausted and the
// fallback pool has been explicitly configured empty. With the built-in
// style examples in place it cannot occur.
var ErrNoFallback = errors.New("no caption available and no fallback lines configured")

// Generator runs the acquisition protocol: request a candidate, validate
// it, dedupe it against history, retry within the attempt budget and fall
// back rather than fail. It always returns a usable caption unless the
// fallback pool is empty.
type Generator struct {
	provider  Provider
	store     Store
	validator *Validator
	guard     *Guard
	policy    RetryPolicy

	prompt          string
	providerTimeout time.Duration
	fallbacks       []string
}

// GeneratorConfig wires the generator's collaborators and knobs.
type GeneratorConfig struct {
	Provider        Provider
	Store           Store
	Validator       *Validator
	Guard           *Guard
	Policy          RetryPolicy
	Prompt          string
	ProviderTimeout time.Duration
	// Fallbacks overrides the built-in style-example pool when non-nil.
	Fallbacks []string
}

// NewGenerator builds a generator. Nil Fallbacks means the built-in style
// examples; an explicitly empty slice disables the fallback pool.
func NewGenerator(cfg GeneratorConfig) *Generator {
	fallbacks := cfg.Fallbacks
	if fallbacks == nil {
		fallbacks = StyleExamples
	}
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = BuildPrompt(nil)
	}
	return &Generator{
		provider:        cfg.Provider,
		store:           cfg.Store,
		validator:       cfg.Validator,
		guard:           cfg.Guard,
		policy:          cfg.Policy,
		prompt:          prompt,
		providerTimeout: cfg.ProviderTimeout,
		fallbacks:       fallbacks,
	}
}

// Generate produces one novel caption. History is loaded once up front and
// persisted once for the accepted line; a failed save is logged, not fatal.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	hist := g.store.Load()
	g.seedExamples(hist)

	// Track the rejected candidate least similar to history as the
	// ultimate fallback.
	nearMiss := ""
	nearMissScore := 2.0

	for attempt := 1; !g.policy.Exhausted(attempt); attempt++ {
		if err := g.policy.Wait(ctx, attempt); err != nil {
			return "", err
		}
		log.Printf("Provider attempt %d/%d...", attempt, g.policy.MaxAttempts)

		raw, err := g.request(ctx)
		if err != nil {
			log.Printf("  provider error: %v", err)
			continue
		}

		line := CleanLine(raw)
		line, err = g.validator.Validate(line)
		if err != nil {
			log.Printf("  %v", err)
			continue
		}

		res := g.guard.Check(line, hist)
		if res.Duplicate {
			dup := &DuplicateError{Matched: res.Matched, Score: res.BestScore}
			log.Printf("  %v", dup)
			if res.BestScore < nearMissScore {
				nearMiss = line
				nearMissScore = res.BestScore
			}
			continue
		}

		g.accept(hist, line)
		log.Printf("Accepted caption: %s", line)
		return line, nil
	}

	return g.fallback(hist, nearMiss)
}

func (g *Generator) request(ctx context.Context) (string, error) {
	if g.providerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.providerTimeout)
		defer cancel()
	}
	return g.provider.Generate(ctx, g.prompt)
}

// seedExamples marks the fallback pool as already used so the provider
// cannot hand a style example back verbatim.
func (g *Generator) seedExamples(h *history.History) {
	for _, ex := range g.fallbacks {
		h.Add(ex, Normalize(ex))
	}
}

func (g *Generator) accept(h *history.History, line string) {
	h.Add(line, Normalize(line))
	if err := g.store.Save(h); err != nil {
		log.Printf("Warning: failed to persist caption history: %v", err)
	}
}

// fallback returns, in priority order, the tracked near-miss candidate and
// then a deterministic pick from the fallback pool. Raising "no caption" is
// reserved for a misconfigured empty pool.
func (g *Generator) fallback(h *history.History, nearMiss string) (string, error) {
	if nearMiss != "" {
		log.Printf("Falling back to least-similar rejected candidate")
		g.accept(h, nearMiss)
		return nearMiss, nil
	}

	if len(g.fallbacks) == 0 {
		return "", fmt.Errorf("generation exhausted: %w", ErrNoFallback)
	}

	// Rotate deterministically on history length, preferring a pool entry
	// the guard still considers novel; with the pool seeded into history
	// that rarely happens, and the rotated pick is accepted unconditionally.
	start := h.Len() % len(g.fallbacks)
	pick := g.fallbacks[start]
	for i := 0; i < len(g.fallbacks); i++ {
		candidate := g.fallbacks[(start+i)%len(g.fallbacks)]
		if !g.guard.Check(candidate, h).Duplicate {
			pick = candidate
			break
		}
	}
	log.Printf("Falling back to style example")
	decorated, err := g.validator.Validate(CleanLine(pick))
	if err != nil {
		decorated = pick
	}
	g.accept(h, decorated)
	return decorated, nil
}
