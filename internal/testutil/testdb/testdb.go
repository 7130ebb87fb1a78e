// Package testdb provides an in-memory SQLite portfolio store for tests.
package testdb

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"covenant-command-center/internal/adapter/repository/sqlstore"
	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/loan"
	"covenant-command-center/internal/infrastructure/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DSN enforces foreign keys like the production SQLite DSN does.
const DSN = ":memory:?_foreign_keys=on"

// New opens an in-memory database with the schema migrated and foreign keys
// enforced. It is closed when the test finishes.
func New(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenGormWithDialector(sqlite.Open(DSN), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("testdb.New: open database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("testdb.New: %v", err)
	}
	// every connection to ":memory:" is its own database
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := sqlstore.Migrate(context.Background(), gdb); err != nil {
		t.Fatalf("testdb.New: migrate: %v", err)
	}
	return gdb
}

// Loan inserts an agreement and returns it.
func Loan(t *testing.T, gdb *gorm.DB, deal string, status loan.Status, principal float64) *loan.Agreement {
	t.Helper()
	l := &loan.Agreement{
		DealName:        deal,
		BorrowerName:    deal + " Borrower",
		PrincipalAmount: principal,
		InterestRate:    5.0,
		Status:          status,
		OriginationDate: time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := gdb.Create(l).Error; err != nil {
		t.Fatalf("testdb.Loan: %v", err)
	}
	return l
}

// Covenant inserts an active covenant. A nil value leaves it untested.
func Covenant(t *testing.T, gdb *gorm.DB, loanID uint64, name, threshold string, value *string, st covenant.Status) *covenant.Covenant {
	t.Helper()
	c := &covenant.Covenant{
		LoanID:           loanID,
		Name:             name,
		Type:             covenant.TypeFinancial,
		ThresholdText:    threshold,
		CurrentValue:     value,
		ComplianceStatus: st,
		IsActive:         true,
	}
	if err := gdb.Create(c).Error; err != nil {
		t.Fatalf("testdb.Covenant: %v", err)
	}
	return c
}

// OrphanCovenant inserts an active covenant pointing at a loan id that does
// not exist. Foreign keys are switched off for the insert only; New keeps a
// single connection, so the pragma applies to it.
func OrphanCovenant(t *testing.T, gdb *gorm.DB, missingLoanID uint64, name, threshold string, value *string, st covenant.Status) *covenant.Covenant {
	t.Helper()
	if err := gdb.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		t.Fatalf("testdb.OrphanCovenant: %v", err)
	}
	defer func() {
		if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			t.Fatalf("testdb.OrphanCovenant: restore foreign keys: %v", err)
		}
	}()
	return Covenant(t, gdb, missingLoanID, name, threshold, value, st)
}
