package alert

import "context"

type Repository interface {
	Create(ctx context.Context, a *Alert) error
	Save(ctx context.Context, a *Alert) error
	GetByID(ctx context.Context, alertID uint64) (*Alert, error)

	// Breaches first, then newest first within a type
	List(ctx context.Context, f Filter) ([]Row, error)
	// Newest first
	Recent(ctx context.Context, limit int) ([]Row, error)
	CountActiveByType(ctx context.Context) (map[Type]int64, error)
}
