package compliance

import (
	"fmt"

	"github.com/ruslamp94/legal-traffic-light/internal/match"
	"github.com/ruslamp94/legal-traffic-light/internal/riskscan"
	"github.com/ruslamp94/legal-traffic-light/internal/segment"
	"github.com/ruslamp94/legal-traffic-light/internal/similarity"
	"github.com/ruslamp94/legal-traffic-light/internal/template"
	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

// Section weights for the compliance score. Required sections count
// double.
const (
	weightRequired = 2.0
	weightOptional = 1.0
)

// Score contribution of each section status.
const (
	contribMatch     = 1.0
	contribPartial   = 0.6
	contribDeviation = 0.3
)

// Penalty points per risk finding.
const (
	penaltyRed    = 15.0
	penaltyYellow = 5.0
)

// Summary thresholds on the 0-100 compliance score.
const (
	summaryHigh    = 80.0
	summaryPartial = 50.0
)

// Analyzer compares contract text against a typical form and produces
// a compliance report.
type Analyzer struct {
	segmenter  *segment.Segmenter
	scorer     *similarity.Scorer
	maxTextLen int
}

// NewAnalyzer creates an analyzer. maxTextLen caps the accepted
// contract length in runes; zero or negative disables the cap.
func NewAnalyzer(maxTextLen int) *Analyzer {
	return &Analyzer{
		segmenter:  segment.NewSegmenter(),
		scorer:     similarity.NewScorer(),
		maxTextLen: maxTextLen,
	}
}

// Analyze runs the full comparison: segmentation, per-section matching
// and scoring, risk scanning, and aggregation. Text beyond the length
// cap is truncated, never an error. The report is a pure function of
// (text, form): identical inputs always yield an identical report.
func (a *Analyzer) Analyze(text string, form *template.Form) *models.ComplianceReport {
	text = truncateRunes(text, a.maxTextLen)
	sections := a.segmenter.Segment(text)

	report := &models.ComplianceReport{
		FormName:          form.Name,
		FormCode:          form.Code,
		FormVersion:       form.Version,
		Sections:          make([]models.SectionAnalysis, 0, len(form.Sections)),
		FoundSections:     []string{},
		PartialSections:   []string{},
		DeviationSections: []string{},
		MissingSections:   []string{},
		Risks:             []models.RiskFinding{},
		GlobalRisks:       []models.RiskFinding{},
		SectionScores:     make(map[string]float64, len(form.Sections)),
		Recommendations:   []string{},
	}

	var weightedSum, totalWeight float64

	for i, tmplSec := range form.Sections {
		weight := weightOptional
		if tmplSec.Required {
			weight = weightRequired
		}
		totalWeight += weight

		bestSec, cmp := match.Best(a.scorer, tmplSec, sections)

		analysis := models.SectionAnalysis{
			SectionName: tmplSec.Name,
			Required:    tmplSec.Required,
			Comparison:  cmp,
		}
		if bestSec != nil {
			analysis.MatchedHeading = bestSec.Heading
			analysis.Risks = riskscan.Scan(bestSec.Body, form.SectionRules(i))
			report.Risks = append(report.Risks, analysis.Risks...)
		}
		report.Sections = append(report.Sections, analysis)
		report.SectionScores[tmplSec.Name] = cmp.CombinedScore

		switch cmp.Status {
		case models.StatusMatch:
			report.FoundSections = append(report.FoundSections, tmplSec.Name)
			weightedSum += contribMatch * weight
		case models.StatusPartial:
			report.PartialSections = append(report.PartialSections, tmplSec.Name)
			weightedSum += contribPartial * weight
		case models.StatusDeviation:
			report.DeviationSections = append(report.DeviationSections, tmplSec.Name)
			weightedSum += contribDeviation * weight
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("section %q differs substantially from the template", tmplSec.Name))
		default:
			report.MissingSections = append(report.MissingSections, tmplSec.Name)
			if tmplSec.Required {
				report.Recommendations = append(report.Recommendations,
					fmt.Sprintf("critical: required section %q is missing", tmplSec.Name))
			} else {
				report.Recommendations = append(report.Recommendations,
					fmt.Sprintf("optional section %q is missing", tmplSec.Name))
			}
		}
	}

	if global := riskscan.Scan(text, form.GlobalRules()); global != nil {
		report.GlobalRisks = global
	}

	score := 0.0
	if totalWeight > 0 {
		score = weightedSum / totalWeight * 100
	}
	score -= riskPenalty(report.Risks) + riskPenalty(report.GlobalRisks)
	if score < 0 {
		score = 0
	}
	report.ComplianceScore = score

	switch {
	case score >= summaryHigh:
		report.Summary = "high compliance"
	case score >= summaryPartial:
		report.Summary = "partial compliance, requires review"
	default:
		report.Summary = "significant deviation, requires expert review"
	}

	return report
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func riskPenalty(findings []models.RiskFinding) float64 {
	var p float64
	for _, f := range findings {
		switch f.Severity {
		case models.SeverityRed:
			p += penaltyRed
		case models.SeverityYellow:
			p += penaltyYellow
		}
	}
	return p
}
