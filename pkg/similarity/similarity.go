package similarity

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// closeVariantThreshold is the normalized similarity ratio above which two
// keywords are treated as spelling-level variants of each other.
const closeVariantThreshold = 0.9

// Ratio returns a normalized edit-distance similarity in [0,1] between the
// lowercased forms of a and b. Identical strings score 1.0.
func Ratio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}

	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// CloseVariant reports whether b is a close variant of a (misspelling,
// pluralization, spacing). Callers apply it as (seed, candidate).
func CloseVariant(a, b string) bool {
	return Ratio(a, b) > closeVariantThreshold
}

// Jaccard returns the word-overlap similarity of two keywords: the size of
// the intersection of their lowercase token sets divided by the size of the
// union. Returns 0.0 when either side has no tokens.
func Jaccard(a, b string) float64 {
	s1 := tokenSet(a)
	s2 := tokenSet(b)
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range s1 {
		if s2[w] {
			intersection++
		}
	}
	union := len(s1) + len(s2) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}
