package financial

import "context"

type Repository interface {
	Create(ctx context.Context, s *Snapshot) error
	ExistsForPeriod(ctx context.Context, loanID uint64, period string) (bool, error)
	// Newest period first
	ListByLoan(ctx context.Context, loanID uint64) ([]Snapshot, error)
}
