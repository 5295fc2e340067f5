package riskscan

import (
	"errors"
	"strings"
	"testing"

	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

func TestCompile(t *testing.T) {
	rule, err := Compile(models.RiskRule{
		Pattern:  `предоплат.*100\s*%`,
		Severity: models.SeverityRed,
		Issue:    "full prepayment",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rule.Issue != "full prepayment" || rule.Severity != models.SeverityRed {
		t.Errorf("rule fields lost in compilation: %+v", rule)
	}
}

func TestCompile_EmptyPattern(t *testing.T) {
	_, err := Compile(models.RiskRule{Severity: models.SeverityRed, Issue: "x"})
	if !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("expected ErrEmptyPattern, got %v", err)
	}
}

func TestCompile_InvalidSeverity(t *testing.T) {
	_, err := Compile(models.RiskRule{Pattern: "a", Severity: "orange", Issue: "x"})
	if !errors.Is(err, ErrInvalidSeverity) {
		t.Errorf("expected ErrInvalidSeverity, got %v", err)
	}
}

func TestCompile_BadRegexp(t *testing.T) {
	_, err := Compile(models.RiskRule{Pattern: "(", Severity: models.SeverityRed, Issue: "x"})
	if err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestCompileAll_ReportsRuleIndex(t *testing.T) {
	_, err := CompileAll([]models.RiskRule{
		{Pattern: "ok", Severity: models.SeverityYellow, Issue: "a"},
		{Pattern: "", Severity: models.SeverityRed, Issue: "b"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "rule 1") {
		t.Errorf("error does not name the failing rule: %v", err)
	}
}

func TestScan_FirstOccurrenceOnly(t *testing.T) {
	rules, err := CompileAll([]models.RiskRule{
		{Pattern: `неустойка`, Severity: models.SeverityYellow, Issue: "penalty clause"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	text := "Неустойка 0,1%. Повторно неустойка 0,5%. И снова неустойка."
	findings := Scan(text, rules)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding for 3 occurrences, got %d", len(findings))
	}
	if findings[0].Position != 0 {
		t.Errorf("expected first occurrence, got position %d", findings[0].Position)
	}
	if findings[0].Issue != "penalty clause" {
		t.Errorf("unexpected issue: %q", findings[0].Issue)
	}
}

func TestScan_CaseInsensitive(t *testing.T) {
	rules, err := CompileAll([]models.RiskRule{
		{Pattern: `предоплата`, Severity: models.SeverityRed, Issue: "prepayment"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if findings := Scan("ПРЕДОПЛАТА 100%", rules); len(findings) != 1 {
		t.Errorf("expected case-insensitive match, got %d findings", len(findings))
	}
}

func TestScan_MultipleRulesOverlappingSpans(t *testing.T) {
	rules, err := CompileAll([]models.RiskRule{
		{Pattern: `предоплата\s+100`, Severity: models.SeverityRed, Issue: "full prepayment"},
		{Pattern: `100\s*%`, Severity: models.SeverityYellow, Issue: "hundred percent"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	findings := Scan("предоплата 100%", rules)
	if len(findings) != 2 {
		t.Errorf("expected both rules to fire on overlapping spans, got %d", len(findings))
	}
}

func TestScan_ContextWindow(t *testing.T) {
	rules, err := CompileAll([]models.RiskRule{
		{Pattern: `штраф`, Severity: models.SeverityRed, Issue: "fine"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	text := strings.Repeat("а", 300) + " штраф " + strings.Repeat("б", 300)
	findings := Scan(text, rules)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}

	ctx := findings[0].Context
	if !strings.HasPrefix(ctx, "...") || !strings.HasSuffix(ctx, "...") {
		t.Errorf("context not wrapped: %q", ctx)
	}
	if !strings.Contains(ctx, "штраф") {
		t.Errorf("context lost the match: %q", ctx)
	}
	// 100 runes each side plus the match itself plus the ellipses.
	if runes := len([]rune(ctx)); runes > 100+100+len([]rune(" штраф "))+6 {
		t.Errorf("context too wide: %d runes", runes)
	}
}

func TestScan_NoMatch(t *testing.T) {
	rules, err := CompileAll([]models.RiskRule{
		{Pattern: `валюта`, Severity: models.SeverityYellow, Issue: "currency"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if findings := Scan("обычный текст", rules); findings != nil {
		t.Errorf("expected no findings, got %v", findings)
	}
}
