package similarity

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tok := NewTokenizer()

	got := tok.Tokenize("Исполнитель обязуется оказать Заказчику услуги.")
	want := []string{"исполнитель", "обязуется", "оказать", "заказчику", "услуги"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenize_DropsShortAndStopWords(t *testing.T) {
	tok := NewTokenizer()

	got := tok.Tokenize("оплата для и по договору")
	want := []string{"оплата", "договору"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenize_Empty(t *testing.T) {
	tok := NewTokenizer()

	if got := tok.Tokenize(""); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
	if got := tok.Tokenize("!!! ... ---"); len(got) != 0 {
		t.Errorf("expected no tokens from punctuation, got %v", got)
	}
}

func TestJaccard(t *testing.T) {
	a := ToSet([]string{"оплата", "услуги", "срок"})
	b := ToSet([]string{"услуги", "срок", "штраф"})

	got := Jaccard(a, b)
	want := 2.0 / 4.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestJaccard_EmptySets(t *testing.T) {
	if got := Jaccard(map[string]bool{}, ToSet([]string{"a"})); got != 0 {
		t.Errorf("expected 0 for empty set, got %v", got)
	}
	if got := Jaccard(map[string]bool{}, map[string]bool{}); got != 0 {
		t.Errorf("expected 0 for two empty sets, got %v", got)
	}
}

func TestOverlap(t *testing.T) {
	a := ToSet([]string{"оплата", "услуги", "срок"})
	b := ToSet([]string{"услуги", "срок", "штраф", "пеня"})

	got := Overlap(a, b)
	want := 2.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBigrams(t *testing.T) {
	got := Bigrams([]string{"срок", "оказания", "услуг"})
	want := map[string]bool{"срок оказания": true, "оказания услуг": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := Bigrams([]string{"срок"}); len(got) != 0 {
		t.Errorf("expected no bigrams for one token, got %v", got)
	}
}

func TestKeywordCoverage(t *testing.T) {
	score, matched := KeywordCoverage(
		"Стоимость услуг составляет 100 рублей, оплата в течение 10 дней.",
		[]string{"стоимость", "оплата", "неустойка", "акт"},
	)

	want := 2.0 / 4.0
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("expected score %v, got %v", want, score)
	}
	if !reflect.DeepEqual(matched, []string{"стоимость", "оплата"}) {
		t.Errorf("unexpected matched keywords: %v", matched)
	}
}

func TestKeywordCoverage_NoKeywords(t *testing.T) {
	score, matched := KeywordCoverage("любой текст", nil)
	if score != 0 || matched != nil {
		t.Errorf("expected 0 and no matches, got %v %v", score, matched)
	}
}

func TestRatio_Identical(t *testing.T) {
	if got := Ratio("Договор аренды", "договор аренды"); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected 1 for identical strings, got %v", got)
	}
}

func TestRatio_Partial(t *testing.T) {
	// "abcd" vs "bcd": longest block "bcd" of size 3, 2*3/(4+3).
	got := Ratio("abcd", "bcd")
	want := 6.0 / 7.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRatio_Disjoint(t *testing.T) {
	if got := Ratio("abc", "xyz"); got != 0 {
		t.Errorf("expected 0 for disjoint strings, got %v", got)
	}
	if got := Ratio("", "abc"); got != 0 {
		t.Errorf("expected 0 for empty string, got %v", got)
	}
}

func TestCosineTFIDF_Identical(t *testing.T) {
	tokens := []string{"оплата", "производится", "течение", "десяти", "дней"}
	if got := CosineTFIDF(tokens, tokens); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected 1 for identical token lists, got %v", got)
	}
}

func TestCosineTFIDF_Disjoint(t *testing.T) {
	got := CosineTFIDF([]string{"оплата", "услуг"}, []string{"аренда", "вагонов"})
	if got != 0 {
		t.Errorf("expected 0 for disjoint vocabularies, got %v", got)
	}
}

func TestCosineTFIDF_Empty(t *testing.T) {
	if got := CosineTFIDF(nil, []string{"оплата"}); got != 0 {
		t.Errorf("expected 0 for empty input, got %v", got)
	}
}

func TestCosineTFIDF_Deterministic(t *testing.T) {
	a := []string{"стоимость", "услуг", "оплата", "акт", "дней"}
	b := []string{"оплата", "услуг", "неустойка", "акт"}

	first := CosineTFIDF(a, b)
	for i := 0; i < 10; i++ {
		if got := CosineTFIDF(a, b); got != first {
			t.Fatalf("score changed between runs: %v vs %v", first, got)
		}
	}
}
