package db

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestOpenGormWithDialector_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	// Expect exactly the one Ping from our code
	mock.ExpectPing()

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // don't query @@version
	})

	gdb, err := OpenGormWithDialector(dial, discard())
	if err != nil {
		t.Fatalf("OpenGormWithDialector error: %v", err)
	}
	if gdb == nil {
		t.Fatalf("got nil gorm.DB")
	}
	if !gdb.Config.TranslateError {
		t.Errorf("TranslateError must be on for duplicate-period detection")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGormWithDialector_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("no ping"))

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	gdb, err := OpenGormWithDialector(dial, discard())
	if err == nil {
		t.Fatalf("expected error, got nil (gdb=%v)", gdb)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGorm_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "covenants.db")
	gdb, err := OpenGorm(DriverSQLite, path, discard())
	if err != nil {
		t.Fatalf("OpenGorm sqlite: %v", err)
	}
	sqlDB, _ := gdb.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	if got := sqlDB.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("MaxOpenConnections = %d, want 1", got)
	}
}

func TestOpenGorm_UnknownDriver(t *testing.T) {
	if _, err := OpenGorm("oracle", "x", discard()); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	l := NewGormLogger(log)
	ctx := context.Background()
	begin := time.Now()

	called := false
	l.Trace(ctx, begin, func() (string, int64) { called = true; return "SELECT 1", 1 }, nil)
	if called {
		t.Errorf("SQL rendered although Debug is disabled")
	}

	l.Trace(ctx, begin, func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)
	if buf.Len() != 0 {
		t.Errorf("record-not-found logged as error: %s", buf.String())
	}

	l.Trace(ctx, begin, func() (string, int64) { return "SELECT broken", 0 }, errors.New("syntax"))
	if !strings.Contains(buf.String(), "gorm query error") || !strings.Contains(buf.String(), "SELECT broken") {
		t.Errorf("expected error line, got %s", buf.String())
	}
}

func TestTruncateSQL(t *testing.T) {
	long := strings.Repeat("a", 500)
	got := truncateSQL(long)
	if len(got) > maxSQLLength || !strings.Contains(got, "...") {
		t.Fatalf("truncateSQL len=%d", len(got))
	}
	if truncateSQL("SELECT 1") != "SELECT 1" {
		t.Fatal("short SQL must be kept")
	}
}
