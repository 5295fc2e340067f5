package similarity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits text into normalized content tokens: lowercase,
// punctuation stripped, tokens of length <= 2 and stop words dropped.
type Tokenizer struct {
	stopWords map[string]bool
	minRunes  int
}

// NewTokenizer creates a tokenizer with the default stop-word set.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		stopWords: defaultStopWords(),
		minRunes:  3,
	}
}

// Tokenize breaks text into content tokens, preserving order.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ToLower(text)

	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < t.minRunes || t.stopWords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Contracts processed here are mostly Russian with occasional English
// boilerplate, so both stop-word lists apply.
func defaultStopWords() map[string]bool {
	words := []string{
		// Russian
		"для", "что", "как", "это", "все", "или", "при", "без", "его",
		"быть", "который", "также", "между", "после", "перед", "через",
		"более", "менее", "если", "чем", "еще", "уже", "они", "оно",
		// English
		"and", "are", "the", "for", "has", "have", "its", "that", "this",
		"with", "was", "were", "will", "shall", "not", "any", "all",
		"such", "other", "under", "upon", "may", "must", "been", "being",
	}

	result := make(map[string]bool, len(words))
	for _, w := range words {
		result[w] = true
	}
	return result
}
