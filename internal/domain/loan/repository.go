package loan

import "context"

type Repository interface {
	Create(ctx context.Context, a *Agreement) error
	Save(ctx context.Context, a *Agreement) error
	GetByID(ctx context.Context, loanID uint64) (*Agreement, error)
	// Locks the row for the rest of the surrounding transaction
	GetByIDForUpdate(ctx context.Context, loanID uint64) (*Agreement, error)
	List(ctx context.Context) ([]Agreement, error)

	// Aggregates over Active loans only
	CountActive(ctx context.Context) (int64, error)
	SumActivePrincipal(ctx context.Context) (float64, error)
}
