// Command api runs the covenant command center HTTP service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"covenant-command-center/internal/adapter/repository/sqlstore"
	"covenant-command-center/internal/config"
	"covenant-command-center/internal/domain/compliance"
	"covenant-command-center/internal/infrastructure/db"
	applog "covenant-command-center/internal/log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "api",
		Short:         "Loan covenant compliance dashboard backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		// bare `api` serves
		RunE: func(cmd *cobra.Command, _ []string) error { return runServe(cmd.Context()) },
	}
	cmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	return cmd
}

// app holds what every command needs: config, logger and an open,
// migrated store.
type app struct {
	cfg *config.Config
	log *slog.Logger
	db  *gorm.DB
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log := applog.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), log)
	if err != nil {
		return nil, err
	}
	if err := sqlstore.Migrate(ctx, gdb); err != nil {
		closeDB(gdb)
		return nil, err
	}
	log.InfoContext(ctx, "store ready", "driver", cfg.DBDriver)
	return &app{cfg: cfg, log: log, db: gdb}, nil
}

func (a *app) close() { closeDB(a.db) }

func closeDB(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// policy reads the banding table file; ZERO_DENOMINATOR_POLICY always wins
// over the file's zero_denominator.
func (a *app) policy() (compliance.Policy, error) {
	p, err := compliance.LoadPolicy(a.cfg.BandingPolicyFile)
	if err != nil {
		return p, err
	}
	p.ZeroDenominator = compliance.ZeroDenominator(a.cfg.ZeroDenominatorPolicy)
	return p, p.Validate()
}
