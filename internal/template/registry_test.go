package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

func TestBuiltinFormsCompile(t *testing.T) {
	registry, err := NewRegistry(Builtin()...)
	if err != nil {
		t.Fatalf("builtin forms must compile: %v", err)
	}

	if got := len(registry.Forms()); got != 4 {
		t.Errorf("expected 4 builtin forms, got %d", got)
	}

	form, ok := registry.Get("ТФ-УСЛ-001")
	if !ok {
		t.Fatal("service form not found by code")
	}
	if len(form.Sections) != 13 {
		t.Errorf("expected 13 sections in the service form, got %d", len(form.Sections))
	}
	if len(form.GlobalRules()) == 0 {
		t.Error("expected global risk rules on the service form")
	}
}

func TestCompile_MissingCode(t *testing.T) {
	_, err := Compile(models.TypicalForm{Name: "без кода"})

	var terr *TemplateError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TemplateError, got %v", err)
	}
	if terr.Form != "без кода" {
		t.Errorf("error does not name the form: %+v", terr)
	}
}

func TestCompile_BadRiskRule(t *testing.T) {
	def := models.TypicalForm{
		Name: "форма", Code: "Ф-1",
		Sections: []models.TemplateSection{{
			Name:      "1. ПРЕДМЕТ",
			RiskRules: []models.RiskRule{{Pattern: "(", Severity: models.SeverityRed, Issue: "x"}},
		}},
	}

	_, err := Compile(def)
	var terr *TemplateError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TemplateError, got %v", err)
	}
	if terr.Section != "1. ПРЕДМЕТ" {
		t.Errorf("error does not name the section: %+v", terr)
	}
}

func TestCompile_BadGlobalRule(t *testing.T) {
	def := models.TypicalForm{
		Name: "форма", Code: "Ф-1",
		GlobalRiskRules: []models.RiskRule{{Pattern: "x", Severity: "purple", Issue: "x"}},
	}

	_, err := Compile(def)
	var terr *TemplateError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TemplateError, got %v", err)
	}
	if terr.Section != "" {
		t.Errorf("global rule failure must not name a section: %+v", terr)
	}
}

func TestNewRegistry_DuplicateCode(t *testing.T) {
	_, err := NewRegistry(
		models.TypicalForm{Name: "a", Code: "Ф-1"},
		models.TypicalForm{Name: "b", Code: "Ф-1"},
	)
	if err == nil {
		t.Fatal("expected error for duplicate code")
	}
	if !strings.Contains(err.Error(), "Ф-1") {
		t.Errorf("error does not name the duplicate code: %v", err)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry, err := NewRegistry(Builtin()...)
	if err != nil {
		t.Fatalf("builtin forms must compile: %v", err)
	}
	if _, ok := registry.Get("НЕТ-ТАКОЙ"); ok {
		t.Error("expected lookup miss for unknown code")
	}
}

func TestLoad(t *testing.T) {
	src := `{
		"name": "Тестовая форма",
		"code": "Ф-Т-1",
		"version": "1.0",
		"sections": [
			{"name": "1. ПРЕДМЕТ", "required": true, "template": "текст", "keywords": ["предмет"]}
		]
	}`

	def, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if def.Code != "Ф-Т-1" || len(def.Sections) != 1 {
		t.Errorf("unexpected definition: %+v", def)
	}
	if !def.Sections[0].Required {
		t.Error("required flag lost")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	if _, err := Load(strings.NewReader("{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
