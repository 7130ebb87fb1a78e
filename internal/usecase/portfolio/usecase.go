package portfolio

import (
	"context"
	"fmt"

	"covenant-command-center/internal/domain/compliance"
	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/loan"
)

type Usecase struct {
	loans     loan.Repository
	covenants covenant.Repository
}

func NewUsecase(loans loan.Repository, covenants covenant.Repository) *Usecase {
	return &Usecase{loans: loans, covenants: covenants}
}

type StatsDTO struct {
	TotalLoans           int64   `json:"total_loans"`
	TotalExposure        float64 `json:"total_exposure"`
	TotalExposureDisplay string  `json:"total_exposure_display"`
	ActiveBreaches       int64   `json:"active_breaches"`
	ActiveCovenants      int64   `json:"active_covenants"`
	ComplianceRate       float64 `json:"compliance_rate"`
}

// ComplianceRate is the share of active covenants not in breach, as a
// percentage. With no active covenants the portfolio is fully compliant.
func ComplianceRate(active, breaches int64) float64 {
	if active <= 0 {
		return 100.0
	}
	return float64(active-breaches) / float64(active) * 100
}

// Stats recomputes the headline portfolio metrics. Nothing is cached.
func (u *Usecase) Stats(ctx context.Context) (*StatsDTO, error) {
	totalLoans, err := u.loans.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active loans: %w", err)
	}
	exposure, err := u.loans.SumActivePrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum exposure: %w", err)
	}
	active, err := u.covenants.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active covenants: %w", err)
	}
	breaches, err := u.covenants.CountActiveByStatus(ctx, covenant.StatusBreach)
	if err != nil {
		return nil, fmt.Errorf("count breaches: %w", err)
	}

	return &StatsDTO{
		TotalLoans:           totalLoans,
		TotalExposure:        exposure,
		TotalExposureDisplay: compliance.FormatMoney(exposure),
		ActiveBreaches:       breaches,
		ActiveCovenants:      active,
		ComplianceRate:       ComplianceRate(active, breaches),
	}, nil
}
