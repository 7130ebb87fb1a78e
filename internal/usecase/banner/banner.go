// Package banner picks the single most urgent dashboard notification.
package banner

import (
	"fmt"
	"time"

	"covenant-command-center/internal/domain/covenant"
)

type Level string

const (
	LevelBreach        Level = "breach"
	LevelMissingData   Level = "missing-data"
	LevelUpcomingTests Level = "upcoming-tests"
	LevelAllClear      Level = "all-clear"
)

// Priority is 1 for the most urgent level.
func (l Level) Priority() int {
	switch l {
	case LevelBreach:
		return 1
	case LevelMissingData:
		return 2
	case LevelUpcomingTests:
		return 3
	default:
		return 4
	}
}

// Severity is the colour class a client renders the banner with.
func (l Level) Severity() string {
	switch l {
	case LevelBreach:
		return "error"
	case LevelMissingData:
		return "warning"
	case LevelUpcomingTests:
		return "info"
	default:
		return "success"
	}
}

const (
	maxUpcomingTests = 3
	maxUpcoming30    = 10
	testFrequency    = "Quarterly"
	upcomingTestDays = 3
)

// Config holds the display heuristics. Due dates are placeholders spaced
// SpacingDays apart; they are not a covenant test schedule.
type Config struct {
	NextUploadDays int
	SpacingDays    int
}

func DefaultConfig() Config { return Config{NextUploadDays: 25, SpacingDays: 3} }

type BreachItem struct {
	Loan         string  `json:"loan"`
	Covenant     string  `json:"covenant"`
	CurrentValue *string `json:"current_value"`
	Threshold    string  `json:"threshold"`
}

type MissingDataItem struct {
	Loan      string        `json:"loan"`
	Covenant  string        `json:"covenant"`
	Type      covenant.Type `json:"type"`
	Threshold string        `json:"threshold"`
}

type UpcomingTest struct {
	Loan      string `json:"loan"`
	Covenant  string `json:"covenant"`
	Frequency string `json:"frequency"`
	DueDate   string `json:"due_date"`
}

type ScheduledTest struct {
	Loan      string        `json:"loan"`
	Covenant  string        `json:"covenant"`
	Type      covenant.Type `json:"type"`
	TestDate  string        `json:"test_date"`
	DaysUntil int           `json:"days_until"`
}

type Banner struct {
	Level             Level             `json:"level"`
	Severity          string            `json:"severity"`
	Priority          int               `json:"priority"`
	Title             string            `json:"title"`
	Message           string            `json:"message"`
	Count             int               `json:"count"`
	Breaches          []BreachItem      `json:"breaches,omitempty"`
	MissingData       []MissingDataItem `json:"missing_data,omitempty"`
	UpcomingTests     []UpcomingTest    `json:"upcoming_tests,omitempty"`
	Upcoming30        []ScheduledTest   `json:"upcoming_30"`
	IntegrityWarnings []string          `json:"integrity_warnings,omitempty"`
}

// Tally counts every active covenant, joined to a loan or not. The banner
// level and count come from it; the detail lists come from the joined rows.
type Tally struct {
	Breaches    int64
	MissingData int64
	Orphans     int64
}

// TallyRows counts rows that all resolved to a loan.
func TallyRows(rows []covenant.Row) Tally {
	var t Tally
	for _, r := range rows {
		if r.ComplianceStatus == covenant.StatusBreach {
			t.Breaches++
		}
		if r.MissingValue() {
			t.MissingData++
		}
	}
	return t
}

// Prioritize selects exactly one banner level, first match wins: breach,
// missing data, upcoming tests, all clear. rows must already be ordered by
// (loan, covenant) and hold active covenants only.
func Prioritize(rows []covenant.Row, tally Tally, today time.Time, cfg Config) Banner {
	var (
		breaches []BreachItem
		missing  []MissingDataItem
		upcoming []UpcomingTest
	)
	dueSoon := dateOnly(today).AddDate(0, 0, upcomingTestDays)
	for _, r := range rows {
		if r.ComplianceStatus == covenant.StatusBreach {
			breaches = append(breaches, BreachItem{
				Loan: r.DealName, Covenant: r.CovenantName,
				CurrentValue: r.CurrentValue, Threshold: r.ThresholdText,
			})
		} else if len(upcoming) < maxUpcomingTests {
			upcoming = append(upcoming, UpcomingTest{
				Loan: r.DealName, Covenant: r.CovenantName,
				Frequency: testFrequency, DueDate: dueSoon.Format(time.DateOnly),
			})
		}
		if r.MissingValue() {
			missing = append(missing, MissingDataItem{
				Loan: r.DealName, Covenant: r.CovenantName,
				Type: r.CovenantType, Threshold: r.ThresholdText,
			})
		}
	}

	var b Banner
	switch {
	case tally.Breaches > 0:
		b = Banner{
			Level:    LevelBreach,
			Count:    int(tally.Breaches),
			Title:    fmt.Sprintf("%d COVENANT BREACH(ES) REQUIRE IMMEDIATE ATTENTION", tally.Breaches),
			Message:  "Review breaches immediately and contact your lender. Breach alerts are automatically generated when financial data is uploaded.",
			Breaches: breaches,
		}
	case tally.MissingData > 0:
		b = Banner{
			Level:       LevelMissingData,
			Count:       int(tally.MissingData),
			Title:       fmt.Sprintf("%d COVENANT(S) MISSING FINANCIAL DATA - UPLOAD REQUIRED", tally.MissingData),
			Message:     "Upload quarterly financial statements to enable automatic covenant testing and breach detection. System will calculate compliance immediately upon upload.",
			MissingData: missing,
		}
	case len(upcoming) > 0:
		b = Banner{
			Level:         LevelUpcomingTests,
			Count:         len(upcoming),
			Title:         fmt.Sprintf("%d COVENANT TEST(S) DUE IN NEXT 7 DAYS", len(upcoming)),
			Message:       "Prepare financial statements for upcoming covenant tests. Upload data early to ensure timely compliance monitoring.",
			UpcomingTests: upcoming,
		}
	default:
		b = Banner{
			Level:   LevelAllClear,
			Title:   "ALL COVENANTS IN COMPLIANCE - NO IMMEDIATE ACTION REQUIRED",
			Message: fmt.Sprintf("Next financial data upload due in approximately %d days. System is actively monitoring all covenants.", cfg.NextUploadDays),
		}
	}
	b.Severity = b.Level.Severity()
	b.Priority = b.Level.Priority()
	b.Upcoming30 = Upcoming30(rows, today, cfg.SpacingDays)
	if tally.Orphans > 0 {
		b.IntegrityWarnings = []string{
			fmt.Sprintf("%d active covenant(s) reference a loan that does not exist and are missing from the detail lists", tally.Orphans),
		}
	}
	return b
}

// Upcoming30 lists the first ten rows with placeholder test dates spaced
// spacingDays apart starting spacingDays from today.
func Upcoming30(rows []covenant.Row, today time.Time, spacingDays int) []ScheduledTest {
	n := min(len(rows), maxUpcoming30)
	out := make([]ScheduledTest, 0, n)
	base := dateOnly(today)
	for i, r := range rows[:n] {
		days := (i + 1) * spacingDays
		out = append(out, ScheduledTest{
			Loan:      r.DealName,
			Covenant:  r.CovenantName,
			Type:      r.CovenantType,
			TestDate:  base.AddDate(0, 0, days).Format(time.DateOnly),
			DaysUntil: days,
		})
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
