package seed

import (
	"context"
	"errors"
	"testing"

	"covenant-command-center/internal/adapter/repository/sqlstore"
	"covenant-command-center/internal/domain/alert"
	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/loan"
	"covenant-command-center/internal/domain/uow"
	"covenant-command-center/internal/testutil/loanmock"
	"covenant-command-center/internal/testutil/testdb"
	"covenant-command-center/internal/testutil/uowmock"
	"covenant-command-center/internal/usecase/banner"
	"covenant-command-center/internal/usecase/portfolio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_SeedsOnceAndMatchesDashboard(t *testing.T) {
	gdb := testdb.New(t)
	ctx := context.Background()
	u := sqlstore.NewGormUoW(gdb)

	res, err := Demo(ctx, u, nil)
	require.NoError(t, err)
	assert.Equal(t, Result{Loans: 4, Covenants: 5, Alerts: 3}, res)

	res, err = Demo(ctx, u, nil)
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	loans := sqlstore.NewLoanRepository(gdb)
	covs := sqlstore.NewCovenantRepository(gdb)
	stats, err := portfolio.NewUsecase(loans, covs).Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalLoans)
	assert.InDelta(t, 120_000_000, stats.TotalExposure, 0.001)
	assert.EqualValues(t, 2, stats.ActiveBreaches)
	assert.InDelta(t, 60.0, stats.ComplianceRate, 0.001)

	b, err := banner.NewUsecase(covs, banner.DefaultConfig(), nil).Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, banner.LevelBreach, b.Level)
	assert.Equal(t, 2, b.Count)

	counts, err := sqlstore.NewAlertRepository(gdb).CountActiveByType(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[alert.TypeBreach])
	assert.EqualValues(t, 1, counts[alert.TypeWarning])

	atRisk, err := covs.CountActiveByStatus(ctx, covenant.StatusAtRisk)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atRisk)
}

func TestDemo_RollsBackOnFailure(t *testing.T) {
	boom := errors.New("insert failed")
	created := 0
	loans := &loanmock.Repo{
		ListFn: func(context.Context) ([]loan.Agreement, error) { return nil, nil },
		CreateFn: func(_ context.Context, a *loan.Agreement) error {
			created++
			if created == 2 {
				return boom
			}
			a.ID = uint64(created)
			return nil
		},
	}
	_, err := Demo(context.Background(), uowmock.Passthrough(uow.Repos{Loans: loans}), nil)
	assert.ErrorIs(t, err, boom)
}
