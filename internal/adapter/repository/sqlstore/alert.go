package sqlstore

import (
	"context"

	"covenant-command-center/internal/domain/alert"

	"gorm.io/gorm"
)

type AlertRepository struct{ db *gorm.DB }

func NewAlertRepository(db *gorm.DB) *AlertRepository { return &AlertRepository{db: db} }

const alertRowColumns = `a.alert_id, a.loan_id, l.deal_name, l.borrower_name,
	a.alert_type AS type, a.message, a.status, a.created_at`

const alertTypeRankOrder = `CASE a.alert_type
	WHEN 'BREACH' THEN 1
	WHEN 'CRITICAL' THEN 2
	WHEN 'WARNING' THEN 3
	ELSE 4 END`

func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AlertRepository) Save(ctx context.Context, a *alert.Alert) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AlertRepository) GetByID(ctx context.Context, alertID uint64) (*alert.Alert, error) {
	var out alert.Alert
	err := r.db.WithContext(ctx).Where("alert_id = ?", alertID).First(&out).Error
	return &out, notFound(err, alert.ErrNotFound)
}

func (r *AlertRepository) List(ctx context.Context, f alert.Filter) ([]alert.Row, error) {
	q := r.rows(ctx)
	if len(f.Types) > 0 {
		q = q.Where("a.alert_type IN ?", f.Types)
	}
	if f.Status != "" {
		q = q.Where("a.status = ?", f.Status)
	}
	var out []alert.Row
	err := q.Order(alertTypeRankOrder + ", a.created_at DESC, a.alert_id DESC").Scan(&out).Error
	return out, err
}

func (r *AlertRepository) Recent(ctx context.Context, limit int) ([]alert.Row, error) {
	var out []alert.Row
	err := r.rows(ctx).
		Order("a.created_at DESC, a.alert_id DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *AlertRepository) CountActiveByType(ctx context.Context) (map[alert.Type]int64, error) {
	var rows []struct {
		AlertType alert.Type
		N         int64
	}
	err := r.db.WithContext(ctx).
		Model(&alert.Alert{}).
		Select("alert_type, COUNT(*) AS n").
		Where("status = ?", alert.StatusActive).
		Group("alert_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[alert.Type]int64, len(rows))
	for _, row := range rows {
		out[row.AlertType] = row.N
	}
	return out, nil
}

func (r *AlertRepository) rows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("alerts AS a").
		Select(alertRowColumns).
		Joins("LEFT JOIN loan_agreements AS l ON l.loan_id = a.loan_id")
}
