package riskscan

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

// Characters of surrounding context captured on each side of a match.
const contextRunes = 100

// Validation errors reported when a risk rule is compiled.
var (
	ErrEmptyPattern    = errors.New("risk rule has an empty pattern")
	ErrInvalidSeverity = errors.New("risk rule has an invalid severity")
)

// Rule is a validated, compiled risk rule ready for scanning.
type Rule struct {
	Issue    string
	Severity models.Severity
	re       *regexp.Regexp
}

// Compile validates a risk rule and compiles its pattern for
// case-insensitive matching. Scanning never validates: a rule that
// fails here is rejected before any scan runs.
func Compile(r models.RiskRule) (Rule, error) {
	if r.Pattern == "" {
		return Rule{}, ErrEmptyPattern
	}
	switch r.Severity {
	case models.SeverityRed, models.SeverityYellow:
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidSeverity, r.Severity)
	}
	re, err := regexp.Compile("(?i)" + r.Pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("compile pattern %q: %w", r.Pattern, err)
	}
	return Rule{Issue: r.Issue, Severity: r.Severity, re: re}, nil
}

// CompileAll compiles a rule list, failing on the first invalid rule.
func CompileAll(rules []models.RiskRule) ([]Rule, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	compiled := make([]Rule, 0, len(rules))
	for i, r := range rules {
		c, err := Compile(r)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		compiled = append(compiled, c)
	}
	return compiled, nil
}

// Scan applies every rule to the text and reports at most one finding
// per rule, at its first occurrence. Distinct rules may fire on
// overlapping spans.
func Scan(text string, rules []Rule) []models.RiskFinding {
	var findings []models.RiskFinding
	for _, r := range rules {
		loc := r.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		findings = append(findings, models.RiskFinding{
			Issue:    r.Issue,
			Severity: r.Severity,
			Context:  contextAround(text, loc[0], loc[1]),
			Position: loc[0],
		})
	}
	return findings
}

// contextAround widens [start,end) by up to contextRunes characters on
// each side, staying on rune boundaries.
func contextAround(text string, start, end int) string {
	lo := start
	for i := 0; i < contextRunes && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < contextRunes && hi < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}
	return "..." + text[lo:hi] + "..."
}
