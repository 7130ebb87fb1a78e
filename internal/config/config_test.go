package config

import (
	"os"
	"strings"
	"testing"
)

// unsetenv clears k for the test and restores it afterwards.
func unsetenv(t *testing.T, k string) {
	t.Helper()
	t.Setenv(k, "")
	_ = os.Unsetenv(k)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "DB_DRIVER", "SQLITE_PATH", "REDIS_ADDR", "REDIS_DB",
		"IDEMPOTENCY_TTL_SECONDS", "NEXT_UPLOAD_DAYS", "TEST_SPACING_DAYS", "ZERO_DENOMINATOR_POLICY"} {
		unsetenv(t, k)
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DBDriver != "sqlite" || c.IdempTTLSecs != 300 || c.NextUploadDays != 25 || c.TestSpacingDays != 3 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.RedisAddr != "" {
		t.Fatalf("redis must be off by default, got %q", c.RedisAddr)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")
	t.Setenv("ZERO_DENOMINATOR_POLICY", "zero")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.IdempTTLSecs != 60 || c.ZeroDenominatorPolicy != "zero" {
		t.Fatalf("env not applied: %+v", c)
	}
	if !strings.Contains(c.DSN(), "@tcp(db.internal:3307)/") {
		t.Fatalf("unexpected DSN %q", c.DSN())
	}
}

func TestLoad_BadNumber(t *testing.T) {
	t.Setenv("REDIS_DB", "two")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric REDIS_DB")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		AppPort: "8080", DBDriver: "sqlite", SQLitePath: "x.db",
		IdempTTLSecs: 300, NextUploadDays: 25, TestSpacingDays: 3,
		ZeroDenominatorPolicy: "not_tested",
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("base config invalid: %v", err)
	}

	cases := map[string]func(c *Config){
		"driver":  func(c *Config) { c.DBDriver = "postgres" },
		"port":    func(c *Config) { c.AppPort = "" },
		"ttl":     func(c *Config) { c.IdempTTLSecs = 0 },
		"spacing": func(c *Config) { c.TestSpacingDays = 0 },
		"policy":  func(c *Config) { c.ZeroDenominatorPolicy = "ignore" },
		"mysql":   func(c *Config) { c.DBDriver = "mysql"; c.MySQLHost = "" },
		"sqlite":  func(c *Config) { c.SQLitePath = "" },
	}
	for name, mutate := range cases {
		c := base
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestSQLiteDSN(t *testing.T) {
	c := Config{SQLitePath: "data/covenants.db"}
	if got := c.SQLiteDSN(); got != "data/covenants.db?_foreign_keys=on&_busy_timeout=5000" {
		t.Fatalf("SQLiteDSN = %q", got)
	}
	c.SQLitePath = "file:x.db?cache=shared"
	if got := c.SQLiteDSN(); !strings.HasPrefix(got, "file:x.db?cache=shared&") {
		t.Fatalf("SQLiteDSN = %q", got)
	}
}
