package template

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ruslamp94/legal-traffic-light/internal/riskscan"
	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

// TemplateError reports a typical form that failed validation. It is
// raised once at load time; a registry never holds an invalid form.
type TemplateError struct {
	Form    string
	Section string // empty for form-level problems and global rules
	Err     error
}

func (e *TemplateError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("typical form %q, section %q: %v", e.Form, e.Section, e.Err)
	}
	return fmt.Sprintf("typical form %q: %v", e.Form, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Form is a validated typical form with its risk rules compiled.
type Form struct {
	models.TypicalForm

	sectionRules [][]riskscan.Rule // parallel to Sections
	globalRules  []riskscan.Rule
}

// SectionRules returns the compiled risk rules of the i-th section.
func (f *Form) SectionRules(i int) []riskscan.Rule { return f.sectionRules[i] }

// GlobalRules returns the compiled document-wide risk rules.
func (f *Form) GlobalRules() []riskscan.Rule { return f.globalRules }

// Compile validates a typical form definition and compiles every risk
// rule. All failures surface as *TemplateError.
func Compile(def models.TypicalForm) (*Form, error) {
	if def.Code == "" {
		return nil, &TemplateError{Form: def.Name, Err: fmt.Errorf("missing form code")}
	}
	form := &Form{
		TypicalForm:  def,
		sectionRules: make([][]riskscan.Rule, len(def.Sections)),
	}
	for i, sec := range def.Sections {
		rules, err := riskscan.CompileAll(sec.RiskRules)
		if err != nil {
			return nil, &TemplateError{Form: def.Name, Section: sec.Name, Err: err}
		}
		form.sectionRules[i] = rules
	}
	global, err := riskscan.CompileAll(def.GlobalRiskRules)
	if err != nil {
		return nil, &TemplateError{Form: def.Name, Err: err}
	}
	form.globalRules = global
	return form, nil
}

// Registry is an immutable collection of validated typical forms,
// keyed by form code. Build one per tenant or configuration and pass
// it explicitly; there is no process-wide store.
type Registry struct {
	forms  []*Form
	byCode map[string]*Form
}

// NewRegistry validates and compiles the given form definitions.
func NewRegistry(defs ...models.TypicalForm) (*Registry, error) {
	r := &Registry{byCode: make(map[string]*Form, len(defs))}
	for _, def := range defs {
		form, err := Compile(def)
		if err != nil {
			return nil, err
		}
		if _, dup := r.byCode[form.Code]; dup {
			return nil, &TemplateError{Form: form.Name, Err: fmt.Errorf("duplicate form code %q", form.Code)}
		}
		r.byCode[form.Code] = form
		r.forms = append(r.forms, form)
	}
	return r, nil
}

// Get returns the form with the given code.
func (r *Registry) Get(code string) (*Form, bool) {
	f, ok := r.byCode[code]
	return f, ok
}

// Forms lists all forms in registration order.
func (r *Registry) Forms() []*Form {
	out := make([]*Form, len(r.forms))
	copy(out, r.forms)
	return out
}

// Load reads a single typical form definition from JSON.
func Load(rd io.Reader) (models.TypicalForm, error) {
	var def models.TypicalForm
	if err := json.NewDecoder(rd).Decode(&def); err != nil {
		return models.TypicalForm{}, fmt.Errorf("decode typical form: %w", err)
	}
	return def, nil
}

// LoadFile reads a typical form definition from a JSON file.
func LoadFile(path string) (models.TypicalForm, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.TypicalForm{}, fmt.Errorf("open typical form: %w", err)
	}
	defer f.Close()
	return Load(f)
}
