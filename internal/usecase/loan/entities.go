package loan

import (
	"time"

	"covenant-command-center/internal/domain/loan"
)

type CreateLoanInput struct {
	DealName        string      `json:"deal_name"`
	BorrowerName    string      `json:"borrower_name"`
	PrincipalAmount float64     `json:"principal_amount"`
	InterestRate    float64     `json:"interest_rate"`
	Status          loan.Status `json:"status"`
	OriginationDate time.Time   `json:"origination_date"`
}

type LoanDTO struct {
	LoanID           uint64      `json:"loan_id"`
	DealName         string      `json:"deal_name"`
	BorrowerName     string      `json:"borrower_name"`
	PrincipalAmount  float64     `json:"principal_amount"`
	PrincipalDisplay string      `json:"principal_display"`
	InterestRate     float64     `json:"interest_rate"`
	Status           loan.Status `json:"status"`
	OriginationDate  time.Time   `json:"origination_date"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type SnapshotDTO struct {
	FinancialID        uint64    `json:"financial_id"`
	ReportingPeriod    string    `json:"reporting_period"`
	TotalDebt          float64   `json:"total_debt"`
	EBITDA             float64   `json:"ebitda"`
	InterestExpense    float64   `json:"interest_expense"`
	CurrentAssets      float64   `json:"current_assets"`
	CurrentLiabilities float64   `json:"current_liabilities"`
	NetWorth           float64   `json:"net_worth"`
	UploadDate         time.Time `json:"upload_date"`
}
