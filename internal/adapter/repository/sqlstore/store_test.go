package sqlstore

import (
	"context"
	"testing"
	"time"

	"covenant-command-center/internal/domain/alert"
	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/loan"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with the domain schema.
// Foreign keys stay off so orphan rows can be planted on purpose.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to ":memory:" is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func makeLoan(deal string, status loan.Status, principal float64) *loan.Agreement {
	return &loan.Agreement{
		DealName:        deal,
		BorrowerName:    deal + " Borrower",
		PrincipalAmount: principal,
		InterestRate:    5.5,
		Status:          status,
		OriginationDate: time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func mustLoan(t *testing.T, db *gorm.DB, deal string, status loan.Status, principal float64) *loan.Agreement {
	t.Helper()
	l := makeLoan(deal, status, principal)
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return l
}

func strp(s string) *string { return &s }

func mustCovenant(t *testing.T, db *gorm.DB, loanID uint64, name, threshold string, value *string, st covenant.Status) *covenant.Covenant {
	t.Helper()
	c := &covenant.Covenant{
		LoanID:           loanID,
		Name:             name,
		Type:             covenant.TypeFinancial,
		ThresholdText:    threshold,
		CurrentValue:     value,
		ComplianceStatus: st,
		IsActive:         true,
		SourceDocument:   "Credit Agreement.pdf",
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed covenant: %v", err)
	}
	return c
}

func mustAlert(t *testing.T, db *gorm.DB, loanID uint64, typ alert.Type, st alert.Status, at time.Time) *alert.Alert {
	t.Helper()
	a := &alert.Alert{LoanID: loanID, Type: typ, Message: string(typ) + " alert", Status: st, CreatedAt: at}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed alert: %v", err)
	}
	return a
}
