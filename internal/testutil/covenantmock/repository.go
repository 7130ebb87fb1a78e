package covenantmock

import (
	"context"
	"errors"

	domain "covenant-command-center/internal/domain/covenant"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("covenantmock: method not implemented")

type Repo struct {
	CreateFn              func(ctx context.Context, c *domain.Covenant) error
	SaveFn                func(ctx context.Context, c *domain.Covenant) error
	GetByIDFn             func(ctx context.Context, covenantID uint64) (*domain.Covenant, error)
	ListActiveByLoanFn    func(ctx context.Context, loanID uint64) ([]domain.Covenant, error)
	CountActiveFn         func(ctx context.Context) (int64, error)
	CountActiveByStatusFn func(ctx context.Context, s domain.Status) (int64, error)
	CountMissingFn        func(ctx context.Context) (int64, error)
	ListActiveRowsFn      func(ctx context.Context) ([]domain.Row, error)
	ListRowsFn            func(ctx context.Context, f domain.Filter) ([]domain.Row, error)
	CountOrphansFn        func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Covenant) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Covenant) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, covenantID uint64) (*domain.Covenant, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, covenantID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListActiveByLoan(ctx context.Context, loanID uint64) ([]domain.Covenant, error) {
	if m.ListActiveByLoanFn != nil {
		return m.ListActiveByLoanFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFn != nil {
		return m.CountActiveFn(ctx)
	}
	return 0, errUnimplemented
}

func (m *Repo) CountActiveByStatus(ctx context.Context, s domain.Status) (int64, error) {
	if m.CountActiveByStatusFn != nil {
		return m.CountActiveByStatusFn(ctx, s)
	}
	return 0, errUnimplemented
}

func (m *Repo) CountActiveMissingValue(ctx context.Context) (int64, error) {
	if m.CountMissingFn != nil {
		return m.CountMissingFn(ctx)
	}
	return 0, errUnimplemented
}

func (m *Repo) ListActiveRows(ctx context.Context) ([]domain.Row, error) {
	if m.ListActiveRowsFn != nil {
		return m.ListActiveRowsFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListRows(ctx context.Context, f domain.Filter) ([]domain.Row, error) {
	if m.ListRowsFn != nil {
		return m.ListRowsFn(ctx, f)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountOrphans(ctx context.Context) (int64, error) {
	if m.CountOrphansFn != nil {
		return m.CountOrphansFn(ctx)
	}
	return 0, nil
}
