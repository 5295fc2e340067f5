package match

import (
	"testing"

	"github.com/ruslamp94/legal-traffic-light/internal/similarity"
	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

func TestNormalizeHeading(t *testing.T) {
	cases := map[string]string{
		"1. ПРЕДМЕТ ДОГОВОРА":  "предмет договора",
		"12.  Оплата":          "оплата",
		"  3. СРОКИ  ":         "сроки",
		"ФОРС-МАЖОР":           "форс-мажор",
		"2.СТОИМОСТЬ":          "стоимость",
	}
	for in, want := range cases {
		if got := NormalizeHeading(in); got != want {
			t.Errorf("NormalizeHeading(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBest_PicksContentMatch(t *testing.T) {
	scorer := similarity.NewScorer()
	tmpl := models.TemplateSection{
		Name:     "2. СТОИМОСТЬ И ПОРЯДОК РАСЧЕТОВ",
		Template: "Стоимость услуг составляет сто тысяч рублей. Оплата производится в течение десяти рабочих дней.",
		Keywords: []string{"стоимость", "оплата"},
	}
	sections := []models.ContractSection{
		{Heading: "1. ПРЕДМЕТ ДОГОВОРА", Body: "Исполнитель обязуется оказать услуги надлежащего качества.", Position: 0},
		{Heading: "4. ЦЕНА", Body: "Стоимость услуг составляет сто тысяч рублей. Оплата производится в течение десяти рабочих дней.", Position: 1},
	}

	best, cmp := Best(scorer, tmpl, sections)
	if best == nil {
		t.Fatal("expected a match")
	}
	if best.Heading != "4. ЦЕНА" {
		t.Errorf("expected the payment section, got %q", best.Heading)
	}
	if cmp.Status != models.StatusMatch {
		t.Errorf("expected status match, got %s", cmp.Status)
	}
	if cmp.NameSimilarity < 0 || cmp.NameSimilarity > 1 {
		t.Errorf("name similarity out of range: %v", cmp.NameSimilarity)
	}
}

func TestBest_TieKeepsEarliestSection(t *testing.T) {
	scorer := similarity.NewScorer()
	tmpl := models.TemplateSection{
		Name:     "6. ОТВЕТСТВЕННОСТЬ",
		Template: "Неустойка за просрочку составляет одну десятую процента.",
	}
	body := "Неустойка за просрочку составляет одну десятую процента."
	sections := []models.ContractSection{
		{Heading: "3. ШТРАФЫ", Body: body, Position: 0},
		{Heading: "3. ШТРАФЫ", Body: body, Position: 1},
	}

	best, _ := Best(scorer, tmpl, sections)
	if best == nil {
		t.Fatal("expected a match")
	}
	if best.Position != 0 {
		t.Errorf("tie must keep the earliest section, got position %d", best.Position)
	}
}

func TestBest_AllBodiesEmpty(t *testing.T) {
	scorer := similarity.NewScorer()
	tmpl := models.TemplateSection{Name: "1. ПРЕДМЕТ", Template: "текст"}
	sections := []models.ContractSection{
		{Heading: "1. ПРЕДМЕТ", Body: "", Position: 0},
		{Heading: "2. ЦЕНА", Body: "  ", Position: 1},
	}

	best, cmp := Best(scorer, tmpl, sections)
	if best != nil {
		t.Errorf("expected no match for empty bodies, got %q", best.Heading)
	}
	if cmp.Status != models.StatusMissing {
		t.Errorf("expected status missing, got %s", cmp.Status)
	}
}

func TestBest_NoSections(t *testing.T) {
	scorer := similarity.NewScorer()
	tmpl := models.TemplateSection{Name: "1. ПРЕДМЕТ", Template: "текст"}

	best, cmp := Best(scorer, tmpl, nil)
	if best != nil {
		t.Error("expected no match for empty document")
	}
	if cmp.Status != models.StatusMissing {
		t.Errorf("expected status missing, got %s", cmp.Status)
	}
}
