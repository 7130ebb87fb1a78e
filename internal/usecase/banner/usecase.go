package banner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"covenant-command-center/internal/domain/covenant"
)

type Usecase struct {
	covenants covenant.Repository
	cfg       Config
	now       func() time.Time
	log       *slog.Logger
}

func NewUsecase(covenants covenant.Repository, cfg Config, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{covenants: covenants, cfg: cfg, now: time.Now, log: log}
}

// WithClock replaces the clock used for due dates.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Current builds the banner from the store as it is right now.
func (u *Usecase) Current(ctx context.Context) (*Banner, error) {
	rows, err := u.covenants.ListActiveRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active covenants: %w", err)
	}
	var t Tally
	if t.Breaches, err = u.covenants.CountActiveByStatus(ctx, covenant.StatusBreach); err != nil {
		return nil, fmt.Errorf("count breaches: %w", err)
	}
	if t.MissingData, err = u.covenants.CountActiveMissingValue(ctx); err != nil {
		return nil, fmt.Errorf("count missing values: %w", err)
	}
	if t.Orphans, err = u.covenants.CountOrphans(ctx); err != nil {
		return nil, fmt.Errorf("count orphan covenants: %w", err)
	}
	if t.Orphans > 0 {
		u.log.WarnContext(ctx, "covenants reference missing loans", "count", t.Orphans)
	}
	b := Prioritize(rows, t, u.now(), u.cfg)
	return &b, nil
}
