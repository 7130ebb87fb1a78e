package alert

import (
	"context"
	"fmt"
	"log/slog"

	"covenant-command-center/internal/domain/alert"
	"covenant-command-center/internal/domain/uow"
)

// RecentLimit is how many alerts the dashboard feed shows.
const RecentLimit = 5

type Usecase struct {
	alerts alert.Repository
	uow    uow.UnitOfWork
	log    *slog.Logger
}

func NewUsecase(alerts alert.Repository, u uow.UnitOfWork, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{alerts: alerts, uow: u, log: log}
}

func (u *Usecase) List(ctx context.Context, f alert.Filter) ([]alert.Row, error) {
	for _, t := range f.Types {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown alert type %q", ErrInvalidFilter, t)
		}
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown alert status %q", ErrInvalidFilter, f.Status)
	}
	rows, err := u.alerts.List(ctx, f)
	return nonNil(rows), err
}

func (u *Usecase) Recent(ctx context.Context) ([]alert.Row, error) {
	rows, err := u.alerts.Recent(ctx, RecentLimit)
	return nonNil(rows), err
}

// Summary counts active alerts per type. Every known type is present,
// zero when there are none.
func (u *Usecase) Summary(ctx context.Context) (*SummaryDTO, error) {
	counts, err := u.alerts.CountActiveByType(ctx)
	if err != nil {
		return nil, err
	}
	s := &SummaryDTO{ByType: map[alert.Type]int64{
		alert.TypeBreach:   0,
		alert.TypeCritical: 0,
		alert.TypeWarning:  0,
		alert.TypeInfo:     0,
	}}
	for t, n := range counts {
		s.ByType[t] = n
		s.TotalActive += n
	}
	return s, nil
}

func (u *Usecase) Resolve(ctx context.Context, alertID uint64) (*AlertDTO, error) {
	return u.close(ctx, alertID, alert.StatusResolved)
}

func (u *Usecase) Dismiss(ctx context.Context, alertID uint64) (*AlertDTO, error) {
	return u.close(ctx, alertID, alert.StatusDismissed)
}

func (u *Usecase) close(ctx context.Context, alertID uint64, to alert.Status) (*AlertDTO, error) {
	var dto *AlertDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Alerts.GetByID(ctx, alertID)
		if err != nil {
			return err
		}
		// State guard: only Active → Resolved/Dismissed
		if err := a.Close(to); err != nil {
			return err
		}
		if err := r.Alerts.Save(ctx, a); err != nil {
			return err
		}
		dto = &AlertDTO{
			AlertID:   a.ID,
			LoanID:    a.LoanID,
			Type:      a.Type,
			Message:   a.Message,
			Status:    a.Status,
			CreatedAt: a.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.InfoContext(ctx, "alert closed", "alert_id", alertID, "status", to)
	return dto, nil
}

func nonNil(rows []alert.Row) []alert.Row {
	if rows == nil {
		return []alert.Row{}
	}
	return rows
}
