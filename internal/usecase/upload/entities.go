package upload

import "covenant-command-center/internal/domain/covenant"

type SubmitInput struct {
	LoanID             uint64  `json:"loan_id"`
	ReportingPeriod    string  `json:"reporting_period"`
	TotalDebt          float64 `json:"total_debt"`
	EBITDA             float64 `json:"ebitda"`
	InterestExpense    float64 `json:"interest_expense"`
	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	NetWorth           float64 `json:"net_worth"`
}

type CovenantResult struct {
	CovenantID     uint64          `json:"covenant_id"`
	Covenant       string          `json:"covenant"`
	Threshold      string          `json:"threshold"`
	Actual         string          `json:"actual"`
	Status         covenant.Status `json:"status"`
	PreviousStatus covenant.Status `json:"previous_status"`
}

type RatioDTO struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
	Display string  `json:"display"`
}

type RatiosDTO struct {
	Leverage         RatioDTO `json:"leverage"`
	InterestCoverage RatioDTO `json:"interest_coverage"`
	CurrentRatio     RatioDTO `json:"current_ratio"`
}

type ResultDTO struct {
	LoanID          uint64           `json:"loan_id"`
	FinancialID     uint64           `json:"financial_id"`
	ReportingPeriod string           `json:"reporting_period"`
	Ratios          RatiosDTO        `json:"ratios"`
	Results         []CovenantResult `json:"results"`
	Skipped         []string         `json:"skipped,omitempty"`
	NewBreaches     int              `json:"new_breaches"`
	AlertsCreated   int              `json:"alerts_created"`
}
