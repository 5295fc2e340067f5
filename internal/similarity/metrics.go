package similarity

import "strings"

// ToSet converts a token slice into a membership set.
func ToSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// Bigrams returns the set of contiguous token pairs.
func Bigrams(tokens []string) map[string]bool {
	if len(tokens) < 2 {
		return map[string]bool{}
	}
	set := make(map[string]bool, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		set[tokens[i]+" "+tokens[i+1]] = true
	}
	return set
}

// Jaccard computes |A∩B| / |A∪B| over two sets. Empty sets score 0.
func Jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for t := range a {
		if b[t] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Overlap computes the overlap coefficient |A∩B| / min(|A|,|B|).
func Overlap(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for t := range a {
		if b[t] {
			intersection++
		}
	}
	minSize := len(a)
	if len(b) < minSize {
		minSize = len(b)
	}
	return float64(intersection) / float64(minSize)
}

// KeywordCoverage returns the share of keywords present in the text as
// case-insensitive substrings, plus the matched keywords themselves.
// No configured keywords scores 0.
func KeywordCoverage(text string, keywords []string) (float64, []string) {
	if len(keywords) == 0 {
		return 0, nil
	}
	lower := strings.ToLower(text)
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return float64(len(matched)) / float64(len(keywords)), matched
}
