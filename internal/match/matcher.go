package match

import (
	"regexp"
	"strings"

	"github.com/ruslamp94/legal-traffic-light/internal/similarity"
	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

// Content similarity dominates; the heading label only nudges the pick.
const (
	contentWeight = 0.7
	nameWeight    = 0.3
)

var leadingNumber = regexp.MustCompile(`^\d+\.\s*`)

// NormalizeHeading strips the leading "N." numbering and lowercases, so
// "3. СРОКИ" in the contract lines up with "1. СРОКИ ОКАЗАНИЯ УСЛУГ" in
// a form that numbers its sections differently.
func NormalizeHeading(h string) string {
	return strings.ToLower(strings.TrimSpace(leadingNumber.ReplaceAllString(strings.TrimSpace(h), "")))
}

// Best finds the contract section that best represents the given
// template section. Candidates are ranked by a blend of body similarity
// and heading-name similarity; ties keep the earliest section, so the
// result is deterministic for a given document. A nil section means
// nothing in the contract resembles the template section at all.
func Best(scorer *similarity.Scorer, tmpl models.TemplateSection, sections []models.ContractSection) (*models.ContractSection, models.SectionComparison) {
	tmplName := NormalizeHeading(tmpl.Name)

	var best *models.ContractSection
	bestCmp := models.SectionComparison{Status: models.StatusMissing}
	bestTotal := 0.0

	for i := range sections {
		sec := &sections[i]
		cmp := scorer.Compare(sec.Body, tmpl.Template, tmpl.Keywords)
		if !cmp.Found {
			continue
		}
		cmp.NameSimilarity = similarity.Ratio(tmplName, NormalizeHeading(sec.Heading))
		total := contentWeight*cmp.CombinedScore + nameWeight*cmp.NameSimilarity
		// Strict comparison against an initial 0: a candidate with no
		// resemblance at all never counts as a match, and ties keep
		// the earliest section.
		if total > bestTotal {
			best = sec
			bestCmp = cmp
			bestTotal = total
		}
	}
	return best, bestCmp
}
