package sqlstore

import (
	"context"
	"fmt"

	"covenant-command-center/internal/domain/alert"
	"covenant-command-center/internal/domain/covenant"
	"covenant-command-center/internal/domain/financial"
	"covenant-command-center/internal/domain/loan"

	"gorm.io/gorm"
)

// Models in dependency order: loans first so the foreign keys resolve.
func Models() []any {
	return []any{
		&loan.Agreement{},
		&covenant.Covenant{},
		&financial.Snapshot{},
		&alert.Alert{},
	}
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
