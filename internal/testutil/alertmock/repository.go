package alertmock

import (
	"context"
	"errors"

	domain "covenant-command-center/internal/domain/alert"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("alertmock: method not implemented")

type Repo struct {
	CreateFn            func(ctx context.Context, a *domain.Alert) error
	SaveFn              func(ctx context.Context, a *domain.Alert) error
	GetByIDFn           func(ctx context.Context, alertID uint64) (*domain.Alert, error)
	ListFn              func(ctx context.Context, f domain.Filter) ([]domain.Row, error)
	RecentFn            func(ctx context.Context, limit int) ([]domain.Row, error)
	CountActiveByTypeFn func(ctx context.Context) (map[domain.Type]int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Alert) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Alert) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, alertID uint64) (*domain.Alert, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, alertID)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Row, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, errUnimplemented
}

func (m *Repo) Recent(ctx context.Context, limit int) ([]domain.Row, error) {
	if m.RecentFn != nil {
		return m.RecentFn(ctx, limit)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountActiveByType(ctx context.Context) (map[domain.Type]int64, error) {
	if m.CountActiveByTypeFn != nil {
		return m.CountActiveByTypeFn(ctx)
	}
	return nil, errUnimplemented
}
