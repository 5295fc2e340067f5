package similarity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// CosineTFIDF computes the cosine similarity of two token lists under
// TF-IDF weighting, treating the pair as a two-document corpus.
// Term frequency is count normalized by document length; inverse
// document frequency is ln((n+1)/(df+1)) + 1 with n = 2.
func CosineTFIDF(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	tfA := termFrequency(a)
	tfB := termFrequency(b)

	df := make(map[string]int, len(tfA)+len(tfB))
	for t := range tfA {
		df[t]++
	}
	for t := range tfB {
		df[t]++
	}

	// Fixed vocabulary order keeps the vectors, and thus the score,
	// reproducible.
	vocab := make([]string, 0, len(df))
	for t := range df {
		vocab = append(vocab, t)
	}
	sort.Strings(vocab)

	va := make([]float64, len(vocab))
	vb := make([]float64, len(vocab))
	for i, t := range vocab {
		idf := math.Log(3.0/float64(df[t]+1)) + 1
		va[i] = tfA[t] * idf
		vb[i] = tfB[t] * idf
	}

	normA := math.Sqrt(floats.Dot(va, va))
	normB := math.Sqrt(floats.Dot(vb, vb))
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(va, vb) / (normA * normB)
}

func termFrequency(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	total := float64(len(tokens))
	for t := range counts {
		counts[t] /= total
	}
	return counts
}
