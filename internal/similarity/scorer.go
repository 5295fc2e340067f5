package similarity

import (
	"strings"

	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

// Metric names used in SectionComparison.Scores.
const (
	MetricJaccardWords   = "jaccard_words"
	MetricJaccardBigrams = "jaccard_bigrams"
	MetricOverlap        = "overlap"
	MetricEditRatio      = "levenshtein"
	MetricCosineTFIDF    = "cosine_tfidf"
	MetricKeywords       = "keywords"
)

// Metric weights. They sum to 1.0, so the combined score stays in [0,1].
const (
	weightJaccardWords   = 0.15
	weightJaccardBigrams = 0.20
	weightOverlap        = 0.15
	weightEditRatio      = 0.20
	weightCosineTFIDF    = 0.15
	weightKeywords       = 0.15
)

// Status thresholds for the combined score.
const (
	matchThreshold   = 0.70
	partialThreshold = 0.40
)

// The edit-similarity ratio is quadratic, so it only sees the head of
// each text.
const editRatioPrefix = 1000

// Scorer computes the similarity profile between a contract section and
// a template section.
type Scorer struct {
	tokenizer *Tokenizer
}

// NewScorer creates a scorer with the default tokenizer.
func NewScorer() *Scorer {
	return &Scorer{tokenizer: NewTokenizer()}
}

// Compare scores a contract section body against a template text and
// keywords. An empty body is reported as missing; every metric guards
// its divisions, so the result is always well-defined.
func (s *Scorer) Compare(body, templateText string, keywords []string) models.SectionComparison {
	cmp := models.SectionComparison{Status: models.StatusMissing}
	if strings.TrimSpace(body) == "" {
		return cmp
	}
	cmp.Found = true

	bodyTokens := s.tokenizer.Tokenize(body)
	tmplTokens := s.tokenizer.Tokenize(templateText)

	bodySet := ToSet(bodyTokens)
	tmplSet := ToSet(tmplTokens)

	jaccard := Jaccard(bodySet, tmplSet)
	jaccardBigrams := Jaccard(Bigrams(bodyTokens), Bigrams(tmplTokens))
	overlap := Overlap(bodySet, tmplSet)
	editRatio := Ratio(prefixRunes(body, editRatioPrefix), prefixRunes(templateText, editRatioPrefix))
	cosine := CosineTFIDF(bodyTokens, tmplTokens)
	keywordScore, matched := KeywordCoverage(body, keywords)

	cmp.Scores = map[string]float64{
		MetricJaccardWords:   jaccard,
		MetricJaccardBigrams: jaccardBigrams,
		MetricOverlap:        overlap,
		MetricEditRatio:      editRatio,
		MetricCosineTFIDF:    cosine,
		MetricKeywords:       keywordScore,
	}
	cmp.MatchedKeywords = matched

	cmp.CombinedScore = jaccard*weightJaccardWords +
		jaccardBigrams*weightJaccardBigrams +
		overlap*weightOverlap +
		editRatio*weightEditRatio +
		cosine*weightCosineTFIDF +
		keywordScore*weightKeywords

	switch {
	case cmp.CombinedScore >= matchThreshold:
		cmp.Status = models.StatusMatch
	case cmp.CombinedScore >= partialThreshold:
		cmp.Status = models.StatusPartial
	default:
		cmp.Status = models.StatusDeviation
	}
	return cmp
}

func prefixRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
