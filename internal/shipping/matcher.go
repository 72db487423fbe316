package shipping

import (
	"strings"
	"unicode/utf8"
)

// DefaultFuzzyThreshold allows an edit distance of up to 20% of the longer name.
const DefaultFuzzyThreshold = 0.8

// Matcher compares city names tolerating small typos.
type Matcher struct {
	threshold float64
}

// NewMatcher returns a matcher with the given similarity threshold. Values
// outside (0, 1] fall back to DefaultFuzzyThreshold.
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultFuzzyThreshold
	}
	return &Matcher{threshold: threshold}
}

func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Similarity returns 1 - levenshtein(a, b) / max(len(a), len(b)) over the
// normalized inputs. Equal or mutually-containing names score 1; blank input scores 0.
func (m *Matcher) Similarity(a, b string) float64 {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
		return 1
	}
	return editSimilarity(a, b)
}

// Matches reports whether two city names refer to the same place.
func (m *Matcher) Matches(a, b string) bool {
	return m.Similarity(a, b) >= m.threshold
}

// MatchesAny reports whether city matches at least one of candidates.
func (m *Matcher) MatchesAny(city string, candidates []string) bool {
	for _, c := range candidates {
		if m.Matches(city, c) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func editSimilarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein counts single-rune insertions, deletions and substitutions.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
