package resolver

import "strings"

// textScore combines the matching strategies into one confidence value:
// exact case-insensitive match (1.0), then substring containment, then
// token-overlap blended with edit-distance similarity.
func textScore(query, name string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	n := strings.ToLower(strings.TrimSpace(name))
	if q == "" || n == "" {
		return 0
	}

	if q == n {
		return 1.0
	}

	// Substring containment: score grows with how much of the longer
	// string the shorter one covers, capped below exact.
	if strings.Contains(n, q) || strings.Contains(q, n) {
		shorter, longer := len(q), len(n)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		score := 0.7 + 0.25*float64(shorter)/float64(longer)
		if score > 0.95 {
			score = 0.95
		}
		return score
	}

	// Token overlap (Jaccard) blended with whole-string edit-distance
	// similarity, scaled to stay below the containment band.
	overlap := tokenOverlap(q, n)
	sim := levenshteinSimilarity(q, n)
	return 0.8 * (0.5*overlap + 0.5*sim)
}

// tokenOverlap is the Jaccard index over lowercase whitespace tokens.
func tokenOverlap(a, b string) float64 {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(ta))
	for _, t := range ta {
		setA[t] = true
	}
	setB := make(map[string]bool, len(tb))
	for _, t := range tb {
		setB[t] = true
	}

	inter := 0
	for t := range setB {
		if setA[t] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter

	return float64(inter) / float64(union)
}

// levenshteinSimilarity maps edit distance into [0, 1]: identical strings
// score 1, fully different strings 0.
func levenshteinSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshteinDistance(a, b))/float64(longest)
}

// levenshteinDistance is the classic two-row edit distance.
func levenshteinDistance(a, b string) int {
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
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
