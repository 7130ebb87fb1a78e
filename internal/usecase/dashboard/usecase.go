// Package dashboard assembles the single-page view: headline stats, the
// banner, the covenant table and the recent alert feed.
package dashboard

import (
	"context"

	"covenant-command-center/internal/domain/alert"
	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/usecase/banner"
	"covenant-command-center/internal/usecase/portfolio"
)

type StatsSource interface {
	Stats(ctx context.Context) (*portfolio.StatsDTO, error)
}

type BannerSource interface {
	Current(ctx context.Context) (*banner.Banner, error)
}

type CovenantSource interface {
	List(ctx context.Context, f covenant.Filter) ([]covenant.Row, error)
}

type AlertSource interface {
	Recent(ctx context.Context) ([]alert.Row, error)
}

type DTO struct {
	Stats        *portfolio.StatsDTO `json:"stats"`
	Banner       *banner.Banner      `json:"banner"`
	Covenants    []covenant.Row      `json:"covenants"`
	RecentAlerts []alert.Row         `json:"recent_alerts"`
}

type Usecase struct {
	stats     StatsSource
	banner    BannerSource
	covenants CovenantSource
	alerts    AlertSource
}

func NewUsecase(stats StatsSource, b BannerSource, covenants CovenantSource, alerts AlertSource) *Usecase {
	return &Usecase{stats: stats, banner: b, covenants: covenants, alerts: alerts}
}

// Get reads every section fresh; any failing section fails the page.
func (u *Usecase) Get(ctx context.Context, f covenant.Filter) (*DTO, error) {
	stats, err := u.stats.Stats(ctx)
	if err != nil {
		return nil, err
	}
	b, err := u.banner.Current(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := u.covenants.List(ctx, f)
	if err != nil {
		return nil, err
	}
	recent, err := u.alerts.Recent(ctx)
	if err != nil {
		return nil, err
	}
	return &DTO{Stats: stats, Banner: b, Covenants: rows, RecentAlerts: recent}, nil
}
