package alert

import (
	"errors"
	"time"

	"covenant-command-center/internal/domain/alert"
)

var ErrInvalidFilter = errors.New("invalid alert filter")

type AlertDTO struct {
	AlertID   uint64       `json:"alert_id"`
	LoanID    uint64       `json:"loan_id"`
	Type      alert.Type   `json:"alert_type"`
	Message   string       `json:"message"`
	Status    alert.Status `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

type SummaryDTO struct {
	TotalActive int64                `json:"total_active"`
	ByType      map[alert.Type]int64 `json:"by_type"`
}
