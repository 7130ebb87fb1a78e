package loan

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrNotActive     = errors.New("loan is not active")
	ErrInvalidStatus = errors.New("invalid loan status")
)

type Status string

const (
	StatusActive    Status = "Active"
	StatusClosed    Status = "Closed"
	StatusDefaulted Status = "Defaulted"
	StatusPaidOff   Status = "Paid Off"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusClosed, StatusDefaulted, StatusPaidOff:
		return true
	}
	return false
}

// Table: loan_agreements. Rows are never deleted; a loan leaves the
// portfolio by changing status.
type Agreement struct {
	ID              uint64    `gorm:"column:loan_id;primaryKey;autoIncrement" json:"loan_id"`
	DealName        string    `gorm:"column:deal_name;size:255;not null;index:idx_loans_deal_name" json:"deal_name"`
	BorrowerName    string    `gorm:"column:borrower_name;size:255;not null" json:"borrower_name"`
	PrincipalAmount float64   `gorm:"column:principal_amount;type:decimal(18,2);not null" json:"principal_amount"`
	InterestRate    float64   `gorm:"column:interest_rate;type:decimal(6,3)" json:"interest_rate"`
	Status          Status    `gorm:"column:status;size:16;not null;index:idx_loans_status" json:"status"`
	OriginationDate time.Time `gorm:"column:origination_date;type:date" json:"origination_date"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Agreement) TableName() string { return "loan_agreements" }

func (a *Agreement) IsActive() bool { return a.Status == StatusActive }
