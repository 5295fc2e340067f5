package models

// RiskZone is the traffic-light outcome of the metadata rule engine.
type RiskZone string

const (
	ZoneGreen  RiskZone = "green"
	ZoneYellow RiskZone = "yellow"
	ZoneRed    RiskZone = "red"
)

// DocumentForm describes which form a contract draft is based on.
type DocumentForm string

const (
	FormTypical       DocumentForm = "typical"
	FormCounterparty  DocumentForm = "counterparty"
	FormFree          DocumentForm = "free"
	FormModifiedTF    DocumentForm = "modified_tf"
	FormSelfDeveloped DocumentForm = "self"
)

// LegalStatus tracks whether the draft has been through legal review.
type LegalStatus string

const (
	LegalNotSubmitted LegalStatus = "not_submitted"
	LegalNoInfo       LegalStatus = "no_info"
	LegalSubmitted    LegalStatus = "submitted"
	LegalApproved     LegalStatus = "approved"
	LegalRejected     LegalStatus = "rejected"
	LegalInProgress   LegalStatus = "in_progress"
)

// Severity of a risk finding. The regulation knows only two levels.
type Severity string

const (
	SeverityRed    Severity = "red"
	SeverityYellow Severity = "yellow"
)

// SectionStatus is the outcome of matching one template section
// against the contract.
type SectionStatus string

const (
	StatusMatch     SectionStatus = "match"
	StatusPartial   SectionStatus = "partial"
	StatusDeviation SectionStatus = "deviation"
	StatusMissing   SectionStatus = "missing"
)

// RiskRule is a configured risk phrasing. The pattern is a regular
// expression applied case-insensitively; rules are validated when a
// typical form is loaded, never during scanning.
type RiskRule struct {
	Pattern  string   `json:"pattern"`
	Severity Severity `json:"severity"`
	Issue    string   `json:"issue"`
}

// TemplateSection is one section of a typical form.
type TemplateSection struct {
	Name      string     `json:"name"`
	Required  bool       `json:"required"`
	Template  string     `json:"template"`
	Keywords  []string   `json:"keywords,omitempty"`
	RiskRules []RiskRule `json:"risk_rules,omitempty"`
}

// TypicalForm is the canonical reference structure for a contract
// category. Sections are ordered; the order drives deterministic
// matching and report layout.
type TypicalForm struct {
	Name            string            `json:"name"`
	Code            string            `json:"code"`
	Version         string            `json:"version"`
	Sections        []TemplateSection `json:"sections"`
	GlobalRiskRules []RiskRule        `json:"global_risk_rules,omitempty"`
}

// ContractSection is a contiguous, heading-identified block of contract
// text in document order.
type ContractSection struct {
	Heading  string `json:"heading"`
	Body     string `json:"body"`
	Position int    `json:"position"`
}

// SectionComparison holds the per-metric similarity scores between a
// contract section and a template section.
type SectionComparison struct {
	Found           bool               `json:"found"`
	Scores          map[string]float64 `json:"similarity_scores,omitempty"`
	CombinedScore   float64            `json:"combined_score"`
	MatchedKeywords []string           `json:"matched_keywords,omitempty"`
	NameSimilarity  float64            `json:"name_similarity"`
	Status          SectionStatus      `json:"status"`
}

// RiskFinding is one detected risk phrasing.
type RiskFinding struct {
	Issue    string   `json:"issue"`
	Severity Severity `json:"severity"`
	Context  string   `json:"context"`
	Position int      `json:"position"`
}

// SectionAnalysis binds a template section to its best contract match.
type SectionAnalysis struct {
	SectionName    string            `json:"section_name"`
	Required       bool              `json:"required"`
	MatchedHeading string            `json:"matched_in_contract,omitempty"`
	Comparison     SectionComparison `json:"comparison"`
	Risks          []RiskFinding     `json:"risks,omitempty"`
}

// ComplianceReport is the aggregated result of comparing a contract
// against a typical form. It is a plain value: identical inputs always
// produce an identical report.
type ComplianceReport struct {
	FormName          string             `json:"form_name"`
	FormCode          string             `json:"form_code"`
	FormVersion       string             `json:"form_version"`
	Sections          []SectionAnalysis  `json:"sections_analysis"`
	FoundSections     []string           `json:"found_sections"`
	PartialSections   []string           `json:"partial_sections"`
	DeviationSections []string           `json:"deviation_sections"`
	MissingSections   []string           `json:"missing_sections"`
	Risks             []RiskFinding      `json:"risks"`
	GlobalRisks       []RiskFinding      `json:"global_risks"`
	SectionScores     map[string]float64 `json:"section_scores"`
	ComplianceScore   float64            `json:"compliance_score"`
	Recommendations   []string           `json:"recommendations"`
	Summary           string             `json:"summary"`
}

// AnalysisInput is the structured contract metadata the risk-zone
// classifier works on.
type AnalysisInput struct {
	Amount           float64      `json:"amount"`
	DocumentForm     DocumentForm `json:"document_form"`
	DocumentType     string       `json:"document_type"`
	DealCategory     string       `json:"deal_category"`
	LegalStatus      LegalStatus  `json:"legal_status"`
	SingleSupplier   bool         `json:"is_single_supplier"`
	IsTender         bool         `json:"is_tender"`
	TenderAmount     float64      `json:"tender_amount"`
	ContractYears    int          `json:"contract_years"`
	ChangesEssential bool         `json:"changes_essential"`
	Urgent           bool         `json:"is_urgent"`
	Counterparty     string       `json:"counterparty,omitempty"`
	ContractNumber   string       `json:"contract_number,omitempty"`
	ContractDate     string       `json:"contract_date,omitempty"`
}

// ZoneResult is the classifier verdict for one contract.
type ZoneResult struct {
	Zone            RiskZone `json:"zone"`
	Reason          string   `json:"zone_reason"`
	DeadlineDays    int      `json:"deadline_days"`
	RequiresLegal   bool     `json:"requires_legal"`
	Responsible     string   `json:"responsible"`
	ApprovalRoute   []string `json:"approval_route"`
	RequiredDocs    []string `json:"required_documents"`
	RedFlags        []string `json:"red_flags,omitempty"`
	YellowFlags     []string `json:"yellow_flags,omitempty"`
	GreenFlags      []string `json:"green_flags,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}
