package financial

import (
	"errors"
	"regexp"
	"time"

	"covenant-command-center/internal/domain/loan"
)

var (
	ErrDuplicatePeriod = errors.New("financial data already uploaded for this period")
	ErrInvalidPeriod   = errors.New("reporting period must look like 2026-Q1")
)

var rePeriod = regexp.MustCompile(`^\d{4}-Q[1-4]$`)

func ValidPeriod(p string) bool { return rePeriod.MatchString(p) }

// Table: financial_data. One row per loan and reporting period; rows are
// never updated once written.
type Snapshot struct {
	ID                 uint64          `gorm:"column:financial_id;primaryKey;autoIncrement" json:"financial_id"`
	LoanID             uint64          `gorm:"column:loan_id;not null;uniqueIndex:ux_financial_loan_period" json:"loan_id"`
	Loan               *loan.Agreement `gorm:"foreignKey:LoanID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ReportingPeriod    string          `gorm:"column:reporting_period;size:8;not null;uniqueIndex:ux_financial_loan_period" json:"reporting_period"`
	TotalDebt          float64         `gorm:"column:total_debt;type:decimal(18,2)" json:"total_debt"`
	EBITDA             float64         `gorm:"column:ebitda;type:decimal(18,2)" json:"ebitda"`
	InterestExpense    float64         `gorm:"column:interest_expense;type:decimal(18,2)" json:"interest_expense"`
	CurrentAssets      float64         `gorm:"column:current_assets;type:decimal(18,2)" json:"current_assets"`
	CurrentLiabilities float64         `gorm:"column:current_liabilities;type:decimal(18,2)" json:"current_liabilities"`
	NetWorth           float64         `gorm:"column:net_worth;type:decimal(18,2)" json:"net_worth"`
	UploadDate         time.Time       `gorm:"column:upload_date;autoCreateTime" json:"upload_date"`
}

func (Snapshot) TableName() string { return "financial_data" }
