package sqlstore

import (
	"context"
	"errors"

	loanDomain "covenant-command-center/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, a *loanDomain.Agreement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanRepository) Save(ctx context.Context, a *loanDomain.Agreement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, loanID uint64) (*loanDomain.Agreement, error) {
	var out loanDomain.Agreement
	err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out).Error
	return &out, notFound(err, loanDomain.ErrNotFound)
}

// SQLite has no row locks; the clause is dropped by its dialect and the
// single-writer database lock covers the transaction instead.
func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, loanID uint64) (*loanDomain.Agreement, error) {
	var out loanDomain.Agreement
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out).Error
	return &out, notFound(err, loanDomain.ErrNotFound)
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Agreement, error) {
	var out []loanDomain.Agreement
	err := r.db.WithContext(ctx).Order("deal_name ASC, loan_id ASC").Find(&out).Error
	return out, err
}

func (r *LoanRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Agreement{}).
		Where("status = ?", loanDomain.StatusActive).
		Count(&n).Error
	return n, err
}

func (r *LoanRepository) SumActivePrincipal(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Agreement{}).
		Select("COALESCE(SUM(principal_amount), 0)").
		Where("status = ?", loanDomain.StatusActive).
		Scan(&sum).Error
	return sum, err
}

// notFound swaps gorm's record-not-found for the domain sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
