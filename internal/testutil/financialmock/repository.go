package financialmock

import (
	"context"
	"errors"

	domain "covenant-command-center/internal/domain/financial"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("financialmock: method not implemented")

type Repo struct {
	CreateFn          func(ctx context.Context, s *domain.Snapshot) error
	ExistsForPeriodFn func(ctx context.Context, loanID uint64, period string) (bool, error)
	ListByLoanFn      func(ctx context.Context, loanID uint64) ([]domain.Snapshot, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Snapshot) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) ExistsForPeriod(ctx context.Context, loanID uint64, period string) (bool, error) {
	if m.ExistsForPeriodFn != nil {
		return m.ExistsForPeriodFn(ctx, loanID, period)
	}
	return false, nil
}

func (m *Repo) ListByLoan(ctx context.Context, loanID uint64) ([]domain.Snapshot, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, errUnimplemented
}
