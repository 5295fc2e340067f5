package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

// Analysis is one saved analysis run: the contract metadata that went
// in, the resulting zone, and the compliance report serialized to JSON
// when a template comparison was performed.
type Analysis struct {
	ID              uuid.UUID
	Counterparty    string
	ContractNumber  string
	Amount          float64
	Zone            models.RiskZone
	ZoneReason      string
	FormCode        string
	ComplianceScore sql.NullFloat64
	ReportJSON      []byte
	CreatedAt       time.Time
}

// AnalysisRepository defines the interface for analysis history storage
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *Analysis) error
	GetByID(ctx context.Context, id uuid.UUID) (*Analysis, error)
	ListRecent(ctx context.Context, limit int) ([]*Analysis, error)
}

// PostgresAnalysisRepository implements AnalysisRepository using PostgreSQL
type PostgresAnalysisRepository struct {
	db *sql.DB
}

// NewPostgresAnalysisRepository creates a new PostgresAnalysisRepository
func NewPostgresAnalysisRepository(db *sql.DB) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

// Create inserts a new analysis record into the database
func (r *PostgresAnalysisRepository) Create(ctx context.Context, analysis *Analysis) error {
	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO contract_analyses (id, counterparty, contract_number, amount, zone, zone_reason, form_code, compliance_score, report_json, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		analysis.ID,
		analysis.Counterparty,
		analysis.ContractNumber,
		analysis.Amount,
		analysis.Zone,
		analysis.ZoneReason,
		analysis.FormCode,
		analysis.ComplianceScore,
		analysis.ReportJSON,
		analysis.CreatedAt,
	)

	return err
}

// GetByID retrieves an analysis record by its ID
func (r *PostgresAnalysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	query := `
		SELECT id, counterparty, contract_number, amount, zone, zone_reason, form_code, compliance_score, report_json, created_at
		FROM contract_analyses
		WHERE id = $1
	`

	analysis := &Analysis{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&analysis.ID,
		&analysis.Counterparty,
		&analysis.ContractNumber,
		&analysis.Amount,
		&analysis.Zone,
		&analysis.ZoneReason,
		&analysis.FormCode,
		&analysis.ComplianceScore,
		&analysis.ReportJSON,
		&analysis.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return analysis, nil
}

// ListRecent retrieves the most recent analysis records, newest first
func (r *PostgresAnalysisRepository) ListRecent(ctx context.Context, limit int) ([]*Analysis, error) {
	query := `
		SELECT id, counterparty, contract_number, amount, zone, zone_reason, form_code, compliance_score, report_json, created_at
		FROM contract_analyses
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*Analysis
	for rows.Next() {
		analysis := &Analysis{}
		err := rows.Scan(
			&analysis.ID,
			&analysis.Counterparty,
			&analysis.ContractNumber,
			&analysis.Amount,
			&analysis.Zone,
			&analysis.ZoneReason,
			&analysis.FormCode,
			&analysis.ComplianceScore,
			&analysis.ReportJSON,
			&analysis.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return analyses, nil
}
