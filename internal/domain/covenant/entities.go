package covenant

import (
	"errors"
	"time"

	"covenant-command-center/internal/domain/loan"

	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("covenant not found")
	ErrInvalidType = errors.New("invalid covenant type")
)

type Status string

const (
	StatusBreach    Status = "BREACH"
	StatusAtRisk    Status = "AT_RISK"
	StatusCompliant Status = "COMPLIANT"
	StatusNotTested Status = "NOT_TESTED"
)

// Rank orders statuses for display: breaches first, untested last.
func (s Status) Rank() int {
	switch s {
	case StatusBreach:
		return 1
	case StatusAtRisk:
		return 2
	case StatusCompliant:
		return 3
	default:
		return 4
	}
}

func (s Status) Valid() bool { return s.Rank() < 4 || s == StatusNotTested }

type Type string

const (
	TypeFinancial   Type = "Financial"
	TypeReporting   Type = "Reporting"
	TypeNegative    Type = "Negative"
	TypeAffirmative Type = "Affirmative"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFinancial, TypeReporting, TypeNegative, TypeAffirmative:
		return true
	}
	return false
}

// NotAvailable is the placeholder written when a value could not be observed.
const NotAvailable = "N/A"

// MissingValues are the stored current_value texts that mean "no
// observation", besides NULL. Matching is exact.
var MissingValues = []string{"", NotAvailable}

// MissingValue reports whether v carries no observation: NULL, "" or "N/A".
func MissingValue(v *string) bool {
	return v == nil || *v == "" || *v == NotAvailable
}

// Table: covenants
type Covenant struct {
	ID               uint64          `gorm:"column:covenant_id;primaryKey;autoIncrement" json:"covenant_id"`
	LoanID           uint64          `gorm:"column:loan_id;not null;index:idx_covenants_loan" json:"loan_id"`
	Loan             *loan.Agreement `gorm:"foreignKey:LoanID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name             string          `gorm:"column:covenant_name;size:255;not null" json:"covenant_name"`
	Type             Type            `gorm:"column:covenant_type;size:16;not null" json:"covenant_type"`
	ThresholdText    string          `gorm:"column:threshold_text;size:64" json:"threshold_text"`
	CurrentValue     *string         `gorm:"column:current_value;size:64" json:"current_value"`
	ComplianceStatus Status          `gorm:"column:compliance_status;size:16;not null;index:idx_covenants_status_active" json:"compliance_status"`
	IsActive         bool            `gorm:"column:is_active;not null;index:idx_covenants_status_active" json:"is_active"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	SourceDocument   string          `gorm:"column:source_document;size:255" json:"source_document"`
}

func (Covenant) TableName() string { return "covenants" }

// BeforeSave keeps status consistent with the observed value: without a
// value a covenant is untested, whatever the caller asked for.
func (c *Covenant) BeforeSave(*gorm.DB) error {
	if MissingValue(c.CurrentValue) || c.ComplianceStatus == "" {
		c.ComplianceStatus = StatusNotTested
	}
	return nil
}

// Observe records a new value together with the status it was tested to.
func (c *Covenant) Observe(value string, status Status, at time.Time) {
	v := value
	c.CurrentValue = &v
	c.ComplianceStatus = status
	c.UpdatedAt = at
}

// Row is a covenant joined with its loan, as shown in tables and banners.
type Row struct {
	CovenantID       uint64  `json:"covenant_id"`
	LoanID           uint64  `json:"loan_id"`
	DealName         string  `json:"loan"`
	BorrowerName     string  `json:"borrower"`
	CovenantName     string  `json:"covenant"`
	CovenantType     Type    `json:"type"`
	ComplianceStatus Status  `json:"status"`
	CurrentValue     *string `json:"current_value"`
	ThresholdText    string  `json:"threshold"`
	SourceDocument   string  `json:"source_document"`
}

func (r Row) MissingValue() bool { return MissingValue(r.CurrentValue) }

// Filter narrows the covenant table. Empty slices mean "any".
type Filter struct {
	Statuses  []Status
	DealNames []string
	Types     []Type
}
