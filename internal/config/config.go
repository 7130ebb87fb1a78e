package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppPort string `envconfig:"APP_PORT" default:"8080"`

	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"covenants.db"`

	MySQLHost string `envconfig:"MYSQL_HOST" default:"mysql"`
	MySQLPort string `envconfig:"MYSQL_PORT" default:"3306"`
	MySQLDB   string `envconfig:"MYSQL_DB" default:"covenants"`
	MySQLUser string `envconfig:"MYSQL_USER" default:"covenants"`
	MySQLPass string `envconfig:"MYSQL_PASS" default:"covenants"`

	// empty disables the idempotency middleware
	RedisAddr    string `envconfig:"REDIS_ADDR"`
	RedisDB      int    `envconfig:"REDIS_DB" default:"0"`
	IdempTTLSecs int    `envconfig:"IDEMPOTENCY_TTL_SECONDS" default:"300"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	NextUploadDays  int `envconfig:"NEXT_UPLOAD_DAYS" default:"25"`
	TestSpacingDays int `envconfig:"TEST_SPACING_DAYS" default:"3"`

	ZeroDenominatorPolicy string `envconfig:"ZERO_DENOMINATOR_POLICY" default:"not_tested"`
	BandingPolicyFile     string `envconfig:"BANDING_POLICY_FILE"`

	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"false"`
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER %q (want sqlite or mysql)", c.DBDriver)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("invalid IDEMPOTENCY_TTL_SECONDS %d", c.IdempTTLSecs)
	}
	if c.NextUploadDays < 0 || c.TestSpacingDays <= 0 {
		return errors.New("NEXT_UPLOAD_DAYS must be >= 0 and TEST_SPACING_DAYS > 0")
	}
	switch c.ZeroDenominatorPolicy {
	case "not_tested", "zero":
	default:
		return fmt.Errorf("invalid ZERO_DENOMINATOR_POLICY %q", c.ZeroDenominatorPolicy)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) SQLiteDSN() string {
	sep := "?"
	if strings.Contains(c.SQLitePath, "?") {
		sep = "&"
	}
	return c.SQLitePath + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// DSN returns the DSN for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "mysql" {
		return c.MySQLDSN()
	}
	return c.SQLiteDSN()
}
