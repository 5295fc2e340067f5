package similarity

import "strings"

// Ratio computes the longest-matching-blocks similarity of two strings
// in [0,1]: twice the total length of matching blocks divided by the
// combined length. Comparison is case-insensitive over runes.
func Ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))

	matched := matchingRunes(ar, br)
	return 2 * float64(matched) / float64(len(ar)+len(br))
}

type span struct {
	alo, ahi, blo, bhi int
}

// matchingRunes sums the sizes of all matching blocks: the longest
// common block is found first, then the regions to its left and right
// are processed the same way.
func matchingRunes(a, b []rune) int {
	// Positions of every rune in b, for O(1) candidate lookup.
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	total := 0
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, size := longestMatch(a, b2j, s)
		if size == 0 {
			continue
		}
		total += size
		if s.alo < i && s.blo < j {
			queue = append(queue, span{s.alo, i, s.blo, j})
		}
		if i+size < s.ahi && j+size < s.bhi {
			queue = append(queue, span{i + size, s.ahi, j + size, s.bhi})
		}
	}
	return total
}

// longestMatch finds the longest block a[i:i+size] == b[j:j+size] inside
// the given span, preferring the earliest block on ties.
func longestMatch(a []rune, b2j map[rune][]int, s span) (besti, bestj, bestsize int) {
	besti, bestj = s.alo, s.blo

	// j2len[j] is the length of the match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := s.alo; i < s.ahi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < s.blo {
				continue
			}
			if j >= s.bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, bestsize
}
