package covenant

import (
	"time"

	"covenant-command-center/internal/domain/covenant"
)

type CreateCovenantInput struct {
	Name             string          `json:"covenant_name"`
	Type             covenant.Type   `json:"covenant_type"`
	ThresholdText    string          `json:"threshold_text"`
	CurrentValue     *string         `json:"current_value"`
	ComplianceStatus covenant.Status `json:"compliance_status"`
	SourceDocument   string          `json:"source_document"`
}

type CovenantDTO struct {
	CovenantID       uint64          `json:"covenant_id"`
	LoanID           uint64          `json:"loan_id"`
	Name             string          `json:"covenant_name"`
	Type             covenant.Type   `json:"covenant_type"`
	ThresholdText    string          `json:"threshold_text"`
	CurrentValue     *string         `json:"current_value"`
	ComplianceStatus covenant.Status `json:"compliance_status"`
	IsActive         bool            `json:"is_active"`
	SourceDocument   string          `json:"source_document"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// TableDTO is a flat table, ready to be written as CSV.
type TableDTO struct {
	Header []string
	Rows   [][]string
}
