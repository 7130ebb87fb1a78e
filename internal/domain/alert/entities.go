package alert

import (
	"errors"
	"time"

	"covenant-command-center/internal/domain/loan"
)

var (
	ErrNotFound          = errors.New("alert not found")
	ErrInvalidTransition = errors.New("alert is no longer active")
)

type Type string

const (
	TypeBreach   Type = "BREACH"
	TypeCritical Type = "CRITICAL"
	TypeWarning  Type = "WARNING"
	TypeInfo     Type = "INFO"
)

// Rank orders alert types for display: breaches first, info last.
func (t Type) Rank() int {
	switch t {
	case TypeBreach:
		return 1
	case TypeCritical:
		return 2
	case TypeWarning:
		return 3
	default:
		return 4
	}
}

func (t Type) Valid() bool {
	switch t {
	case TypeBreach, TypeCritical, TypeWarning, TypeInfo:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "Active"
	StatusResolved  Status = "Resolved"
	StatusDismissed Status = "Dismissed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

// Table: alerts
type Alert struct {
	ID        uint64          `gorm:"column:alert_id;primaryKey;autoIncrement" json:"alert_id"`
	LoanID    uint64          `gorm:"column:loan_id;not null;index:idx_alerts_loan" json:"loan_id"`
	Loan      *loan.Agreement `gorm:"foreignKey:LoanID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Type      Type            `gorm:"column:alert_type;size:16;not null;index:idx_alerts_type_status" json:"alert_type"`
	Message   string          `gorm:"column:message;type:text;not null" json:"message"`
	Status    Status          `gorm:"column:status;size:16;not null;index:idx_alerts_type_status" json:"status"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Alert) TableName() string { return "alerts" }

// Close moves an active alert to a terminal status.
func (a *Alert) Close(to Status) error {
	if a.Status != StatusActive {
		return ErrInvalidTransition
	}
	if to != StatusResolved && to != StatusDismissed {
		return ErrInvalidTransition
	}
	a.Status = to
	return nil
}

// Row is an alert joined with its loan.
type Row struct {
	AlertID      uint64    `json:"alert_id"`
	LoanID       uint64    `json:"loan_id"`
	DealName     string    `json:"loan"`
	BorrowerName string    `json:"borrower"`
	Type         Type      `json:"type"`
	Message      string    `json:"message"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Filter narrows the alert list. Empty Types means any type; empty
// Status means any status.
type Filter struct {
	Types  []Type
	Status Status
}
