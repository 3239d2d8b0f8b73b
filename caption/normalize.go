package caption

import (
	"strings"
	"unicode"
)

// Normalize reduces a caption to its comparison key: decorative glyphs and
// punctuation are stripped, letters are case-folded and whitespace is
// collapsed. The key is used only for dedupe, never stored or displayed.
// Normalize is idempotent.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
		// everything else (emoji, danda, quotes, bullets) is dropped
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Similarity scores two normalized strings in [0,1] using a Levenshtein
// ratio over runes: 1 - distance/maxLen. Equal strings score 1, disjoint
// strings approach 0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// CleanLine trims a raw provider response down to one usable line: the
// first non-empty line, with surrounding quotes and leading bullets or
// numbering removed and internal whitespace collapsed.
func CleanLine(raw string) string {
	line := ""
	for _, l := range strings.Split(raw, "\n") {
		if strings.TrimSpace(l) != "" {
			line = strings.TrimSpace(l)
			break
		}
	}
	if line == "" {
		return ""
	}

	for changed := true; changed; {
		changed = false
		for _, ch := range []string{"\"", "“", "”", "'", "‘", "’", "-", "•", "*"} {
			if strings.HasPrefix(line, ch) {
				line = strings.TrimSpace(strings.TrimPrefix(line, ch))
				changed = true
			}
			if strings.HasSuffix(line, ch) {
				line = strings.TrimSpace(strings.TrimSuffix(line, ch))
				changed = true
			}
		}
		for _, prefix := range []string{"1.", "2.", "3.", "4.", "5.", "6.", "7.", "8.", "9."} {
			if strings.HasPrefix(line, prefix+" ") {
				line = strings.TrimSpace(strings.TrimPrefix(line, prefix+" "))
				changed = true
			}
		}
	}

	return strings.Join(strings.Fields(line), " ")
}
