package loanmock

import (
	"context"
	"errors"

	domain "covenant-command-center/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to no-op success; reads default to errUnimplemented.
type Repo struct {
	CreateFn             func(ctx context.Context, a *domain.Agreement) error
	SaveFn               func(ctx context.Context, a *domain.Agreement) error
	GetByIDFn            func(ctx context.Context, loanID uint64) (*domain.Agreement, error)
	GetByIDForUpdateFn   func(ctx context.Context, loanID uint64) (*domain.Agreement, error)
	ListFn               func(ctx context.Context) ([]domain.Agreement, error)
	CountActiveFn        func(ctx context.Context) (int64, error)
	SumActivePrincipalFn func(ctx context.Context) (float64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Agreement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Agreement) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, loanID uint64) (*domain.Agreement, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, loanID uint64) (*domain.Agreement, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Agreement, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFn != nil {
		return m.CountActiveFn(ctx)
	}
	return 0, errUnimplemented
}

func (m *Repo) SumActivePrincipal(ctx context.Context) (float64, error) {
	if m.SumActivePrincipalFn != nil {
		return m.SumActivePrincipalFn(ctx)
	}
	return 0, errUnimplemented
}
