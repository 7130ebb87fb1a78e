package sqlstore

import (
	"context"
	"errors"

	"covenant-command-center/internal/domain/financial"

	"gorm.io/gorm"
)

type FinancialRepository struct{ db *gorm.DB }

func NewFinancialRepository(db *gorm.DB) *FinancialRepository {
	return &FinancialRepository{db: db}
}

// Create relies on the (loan_id, reporting_period) unique index; the
// connection must be opened with TranslateError for the conflict to surface
// as ErrDuplicatePeriod.
func (r *FinancialRepository) Create(ctx context.Context, s *financial.Snapshot) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return financial.ErrDuplicatePeriod
	}
	return err
}

func (r *FinancialRepository) ExistsForPeriod(ctx context.Context, loanID uint64, period string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&financial.Snapshot{}).
		Where("loan_id = ? AND reporting_period = ?", loanID, period).
		Count(&n).Error
	return n > 0, err
}

func (r *FinancialRepository) ListByLoan(ctx context.Context, loanID uint64) ([]financial.Snapshot, error) {
	var out []financial.Snapshot
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("reporting_period DESC, financial_id DESC").
		Find(&out).Error
	return out, err
}
