package caption

import (
	"strings"

	"bhaktibot/history"
)

// Guard decides whether a candidate caption is a duplicate or near-duplicate
// of anything already used. Exact key matches, substring containment in
// either direction and a lexical similarity score above the threshold are
// independent triggers; any one of them rejects the candidate.
type Guard struct {
	threshold float64
}

// NewGuard creates a guard with the given similarity cutoff in [0,1].
func NewGuard(threshold float64) *Guard {
	return &Guard{threshold: threshold}
}

// CheckResult reports the dedupe verdict for one candidate. BestScore is the
// maximum similarity against any history entry, duplicate or not; the
// generator keeps the rejected candidate with the lowest BestScore of a run
// as its fallback.
type CheckResult struct {
	Duplicate bool
	Matched   string // history text that triggered the rejection, if any
	BestScore float64
}

// Check compares the candidate against every history entry.
func (g *Guard) Check(candidate string, h *history.History) CheckResult {
	key := Normalize(candidate)
	res := CheckResult{}

	if key == "" {
		res.Duplicate = true
		return res
	}

	for _, rec := range h.Records() {
		if rec.Key == "" {
			continue
		}
		score := Similarity(key, rec.Key)
		if score > res.BestScore {
			res.BestScore = score
		}
		if res.Duplicate {
			continue
		}
		switch {
		case key == rec.Key:
			res.Duplicate = true
			res.Matched = rec.Text
		case strings.Contains(key, rec.Key) || strings.Contains(rec.Key, key):
			res.Duplicate = true
			res.Matched = rec.Text
		case score >= g.threshold:
			res.Duplicate = true
			res.Matched = rec.Text
		}
	}
	return res
}
