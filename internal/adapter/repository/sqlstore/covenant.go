package sqlstore

import (
	"context"

	"covenant-command-center/internal/domain/covenant"

	"gorm.io/gorm"
)

type CovenantRepository struct{ db *gorm.DB }

func NewCovenantRepository(db *gorm.DB) *CovenantRepository {
	return &CovenantRepository{db: db}
}

const covenantRowColumns = `c.covenant_id, c.loan_id, l.deal_name, l.borrower_name,
	c.covenant_name, c.covenant_type, c.compliance_status, c.current_value,
	c.threshold_text, c.source_document`

func (r *CovenantRepository) Create(ctx context.Context, c *covenant.Covenant) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CovenantRepository) Save(ctx context.Context, c *covenant.Covenant) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CovenantRepository) GetByID(ctx context.Context, covenantID uint64) (*covenant.Covenant, error) {
	var out covenant.Covenant
	err := r.db.WithContext(ctx).Where("covenant_id = ?", covenantID).First(&out).Error
	return &out, notFound(err, covenant.ErrNotFound)
}

func (r *CovenantRepository) ListActiveByLoan(ctx context.Context, loanID uint64) ([]covenant.Covenant, error) {
	var out []covenant.Covenant
	err := r.db.WithContext(ctx).
		Where("loan_id = ? AND is_active = ?", loanID, true).
		Order("covenant_id ASC").
		Find(&out).Error
	return out, err
}

func (r *CovenantRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&covenant.Covenant{}).
		Where("is_active = ?", true).
		Count(&n).Error
	return n, err
}

func (r *CovenantRepository) CountActiveByStatus(ctx context.Context, s covenant.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&covenant.Covenant{}).
		Where("is_active = ? AND compliance_status = ?", true, s).
		Count(&n).Error
	return n, err
}

func (r *CovenantRepository) CountActiveMissingValue(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&covenant.Covenant{}).
		Where("is_active = ?", true).
		Where("current_value IS NULL OR current_value IN ?", covenant.MissingValues).
		Count(&n).Error
	return n, err
}

func (r *CovenantRepository) ListActiveRows(ctx context.Context) ([]covenant.Row, error) {
	var out []covenant.Row
	err := r.db.WithContext(ctx).
		Table("covenants AS c").
		Select(covenantRowColumns).
		Joins("JOIN loan_agreements AS l ON l.loan_id = c.loan_id").
		Where("c.is_active = ?", true).
		Order("l.deal_name ASC, c.covenant_name ASC").
		Scan(&out).Error
	return out, err
}

func (r *CovenantRepository) ListRows(ctx context.Context, f covenant.Filter) ([]covenant.Row, error) {
	q := r.db.WithContext(ctx).
		Table("covenants AS c").
		Select(covenantRowColumns).
		Joins("LEFT JOIN loan_agreements AS l ON l.loan_id = c.loan_id").
		Where("c.is_active = ?", true)
	if len(f.Statuses) > 0 {
		q = q.Where("c.compliance_status IN ?", f.Statuses)
	}
	if len(f.DealNames) > 0 {
		q = q.Where("l.deal_name IN ?", f.DealNames)
	}
	if len(f.Types) > 0 {
		q = q.Where("c.covenant_type IN ?", f.Types)
	}

	var out []covenant.Row
	err := q.Order(statusRankOrder + ", l.deal_name ASC, c.covenant_name ASC").Scan(&out).Error
	return out, err
}

const statusRankOrder = `CASE c.compliance_status
	WHEN 'BREACH' THEN 1
	WHEN 'AT_RISK' THEN 2
	WHEN 'COMPLIANT' THEN 3
	ELSE 4 END`

func (r *CovenantRepository) CountOrphans(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("covenants AS c").
		Joins("LEFT JOIN loan_agreements AS l ON l.loan_id = c.loan_id").
		Where("c.is_active = ? AND l.loan_id IS NULL", true).
		Count(&n).Error
	return n, err
}
