package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/ruslamp94/legal-traffic-light/internal/compliance"
	"github.com/ruslamp94/legal-traffic-light/internal/config"
	"github.com/ruslamp94/legal-traffic-light/internal/storage"
	"github.com/ruslamp94/legal-traffic-light/internal/template"
	"github.com/ruslamp94/legal-traffic-light/internal/zone"
	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

type output struct {
	Zone       models.ZoneResult        `json:"zone_result"`
	Compliance *models.ComplianceReport `json:"compliance_report,omitempty"`
}

func main() {
	_ = godotenv.Load()

	var (
		configPath   = flag.String("config", "", "path to config file (optional)")
		textPath     = flag.String("file", "", "contract text file to compare against a typical form")
		formCode     = flag.String("form", "", "typical form code, e.g. ТФ-УСЛ-001")
		formFile     = flag.String("form-file", "", "JSON file with an extra typical form definition")
		amount       = flag.Float64("amount", 0, "contract amount, RUB")
		docForm      = flag.String("document-form", string(models.FormTypical), "document form: typical|counterparty|free|modified_tf|self")
		docType      = flag.String("document-type", "", "document type")
		dealCategory = flag.String("deal-category", "", "deal category")
		single       = flag.Bool("single-supplier", false, "single-supplier purchase")
		tender       = flag.Bool("tender", false, "tender purchase")
		tenderAmount = flag.Float64("tender-amount", 0, "tender amount, RUB")
		years        = flag.Int("years", 0, "contract duration, years")
		essential    = flag.Bool("essential-changes", false, "essential terms of the typical form changed")
		counterparty = flag.String("counterparty", "", "counterparty name")
		number       = flag.String("number", "", "contract number")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	documentForm, err := parseDocumentForm(*docForm)
	if err != nil {
		log.Fatalf("Invalid -document-form: %v", err)
	}

	defs := template.Builtin()
	if *formFile != "" {
		def, err := template.LoadFile(*formFile)
		if err != nil {
			log.Fatalf("Failed to load typical form: %v", err)
		}
		defs = append(defs, def)
	}
	registry, err := template.NewRegistry(defs...)
	if err != nil {
		log.Fatalf("Failed to build form registry: %v", err)
	}

	classifier := zone.NewClassifier(cfg.ZoneThresholds(), cfg.ZoneDeadlines())
	input := models.AnalysisInput{
		Amount:           *amount,
		DocumentForm:     documentForm,
		DocumentType:     *docType,
		DealCategory:     *dealCategory,
		SingleSupplier:   *single,
		IsTender:         *tender,
		TenderAmount:     *tenderAmount,
		ContractYears:    *years,
		ChangesEssential: *essential,
		Counterparty:     *counterparty,
		ContractNumber:   *number,
	}

	out := output{Zone: classifier.Classify(input)}

	if *textPath != "" {
		if *formCode == "" {
			log.Fatalf("-form is required when -file is given")
		}
		form, ok := registry.Get(*formCode)
		if !ok {
			log.Fatalf("Unknown typical form code %q", *formCode)
		}
		text, err := os.ReadFile(*textPath)
		if err != nil {
			log.Fatalf("Failed to read contract text: %v", err)
		}
		analyzer := compliance.NewAnalyzer(cfg.MaxTextLen)
		out.Compliance = analyzer.Analyze(string(text), form)
	}

	if cfg.DatabaseURL != "" {
		if err := saveHistory(cfg.DatabaseURL, input, out); err != nil {
			log.Printf("Failed to save analysis history: %v", err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}

// parseDocumentForm rejects anything but the five known form values,
// so a typo cannot slip through as a green-corridor classification.
func parseDocumentForm(s string) (models.DocumentForm, error) {
	switch f := models.DocumentForm(s); f {
	case models.FormTypical, models.FormCounterparty, models.FormFree,
		models.FormModifiedTF, models.FormSelfDeveloped:
		return f, nil
	}
	return "", fmt.Errorf("unknown document form %q, want typical|counterparty|free|modified_tf|self", s)
}

func saveHistory(dbURL string, input models.AnalysisInput, out output) error {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return err
	}
	defer db.Close()

	record := &storage.Analysis{
		Counterparty:   input.Counterparty,
		ContractNumber: input.ContractNumber,
		Amount:         input.Amount,
		Zone:           out.Zone.Zone,
		ZoneReason:     out.Zone.Reason,
	}
	if out.Compliance != nil {
		record.FormCode = out.Compliance.FormCode
		record.ComplianceScore = sql.NullFloat64{Float64: out.Compliance.ComplianceScore, Valid: true}
		record.ReportJSON, err = json.Marshal(out.Compliance)
		if err != nil {
			return err
		}
	}

	repo := storage.NewPostgresAnalysisRepository(db)
	return repo.Create(context.Background(), record)
}
