package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the candidate nearest to input by edit distance, compared
// case-insensitively. ok is false when nothing is close enough to be a
// plausible typo.
func Closest(input string, candidates []string) (best string, ok bool) {
	token := strings.ToUpper(strings.TrimSpace(input))
	if token == "" {
		return "", false
	}

	bestDist := -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(token, strings.ToUpper(cand))
		if dist > limit(len(cand)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist != -1
}

func limit(n int) int {
	switch {
	case n <= 2:
		return 1
	case n <= 5:
		return 2
	default:
		return 3
	}
}
