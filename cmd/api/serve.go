package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadp "covenant-command-center/internal/adapter/http"
	"covenant-command-center/internal/adapter/middleware"
	"covenant-command-center/internal/adapter/repository/sqlstore"
	"covenant-command-center/internal/infrastructure/cache"
	"covenant-command-center/internal/infrastructure/seed"
	alertuc "covenant-command-center/internal/usecase/alert"
	"covenant-command-center/internal/usecase/banner"
	covenantuc "covenant-command-center/internal/usecase/covenant"
	"covenant-command-center/internal/usecase/dashboard"
	loanuc "covenant-command-center/internal/usecase/loan"
	"covenant-command-center/internal/usecase/portfolio"
	"covenant-command-center/internal/usecase/upload"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Environment variables (a .env file in the working directory is read too):
  APP_PORT                 listen port (default: 8080)
  DB_DRIVER                sqlite or mysql (default: sqlite)
  SQLITE_PATH              sqlite file (default: covenants.db)
  MYSQL_HOST/PORT/DB/USER/PASS
  REDIS_ADDR               enables upload idempotency when set
  REDIS_DB                 (default: 0)
  IDEMPOTENCY_TTL_SECONDS  (default: 300)
  LOG_LEVEL                debug, info, warn, error (default: info)
  LOG_FORMAT               text or json (default: text)
  NEXT_UPLOAD_DAYS         days until the next upload, shown in the banner (default: 25)
  TEST_SPACING_DAYS        spacing of the 30-day test list (default: 3)
  ZERO_DENOMINATOR_POLICY  not_tested or zero (default: not_tested)
  BANDING_POLICY_FILE      YAML banding table
  SEED_DEMO_DATA           seed the demo portfolio on start (default: false)`,
		RunE: func(cmd *cobra.Command, _ []string) error { return runServe(cmd.Context()) },
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	policy, err := a.policy()
	if err != nil {
		return err
	}

	rdb, err := cache.OpenRedis(ctx, a.cfg.RedisAddr, a.cfg.RedisDB)
	if err != nil {
		return err
	}
	var idem echo.MiddlewareFunc
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		idem = middleware.Idempotency(rdb, time.Duration(a.cfg.IdempTTLSecs)*time.Second, a.log)
	} else {
		a.log.WarnContext(ctx, "REDIS_ADDR not set, uploads are not idempotent")
	}

	uow := sqlstore.NewGormUoW(a.db)
	if a.cfg.SeedDemoData {
		if _, err := seed.Demo(ctx, uow, a.log); err != nil {
			return err
		}
	}

	loans := sqlstore.NewLoanRepository(a.db)
	covenants := sqlstore.NewCovenantRepository(a.db)
	financials := sqlstore.NewFinancialRepository(a.db)
	alerts := sqlstore.NewAlertRepository(a.db)

	portfolioUC := portfolio.NewUsecase(loans, covenants)
	bannerUC := banner.NewUsecase(covenants, banner.Config{
		NextUploadDays: a.cfg.NextUploadDays,
		SpacingDays:    a.cfg.TestSpacingDays,
	}, a.log)
	covenantUC := covenantuc.NewUsecase(covenants, uow)
	alertUC := alertuc.NewUsecase(alerts, uow, a.log)

	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}

	e := httpadp.NewEcho(a.log)
	httpadp.Register(e, httpadp.Handlers{
		Health:    httpadp.NewHandler(sqlDB.PingContext),
		Dashboard: httpadp.NewDashboardHandler(dashboard.NewUsecase(portfolioUC, bannerUC, covenantUC, alertUC), portfolioUC, bannerUC),
		Loans:     httpadp.NewLoanHandler(loanuc.NewUsecase(loans, financials, uow, a.log)),
		Covenants: httpadp.NewCovenantHandler(covenantUC),
		Alerts:    httpadp.NewAlertHandler(alertUC),
		Uploads:   httpadp.NewUploadHandler(upload.NewUsecase(uow, policy, a.log)),
	}, idem)

	addr := ":" + a.cfg.AppPort
	errc := make(chan error, 1)
	go func() {
		a.log.InfoContext(ctx, "listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
