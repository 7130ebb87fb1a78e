package covenant

import "context"

type Repository interface {
	Create(ctx context.Context, c *Covenant) error
	Save(ctx context.Context, c *Covenant) error
	GetByID(ctx context.Context, covenantID uint64) (*Covenant, error)
	ListActiveByLoan(ctx context.Context, loanID uint64) ([]Covenant, error)

	CountActive(ctx context.Context) (int64, error)
	CountActiveByStatus(ctx context.Context, s Status) (int64, error)
	// Active covenants whose current value is NULL or one of MissingValues.
	CountActiveMissingValue(ctx context.Context) (int64, error)

	// Active covenants inner-joined to their loan, ordered by deal then covenant name.
	ListActiveRows(ctx context.Context) ([]Row, error)
	// Active covenants left-joined to their loan, filtered, breaches first.
	ListRows(ctx context.Context, f Filter) ([]Row, error)
	// Active covenants whose loan_id resolves to no loan.
	CountOrphans(ctx context.Context) (int64, error)
}
