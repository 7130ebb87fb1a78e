package compliance

import (
	"fmt"
	"os"

	"covenant-command-center/internal/domain/covenant"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ZeroDenominator decides what a ratio with a zero or negative denominator
// means for its covenant.
type ZeroDenominator string

const (
	// ZeroAsNotTested leaves the covenant untested with value "N/A".
	ZeroAsNotTested ZeroDenominator = "not_tested"
	// ZeroAsValue compares the ratio as 0 against the threshold.
	ZeroAsValue ZeroDenominator = "zero"
)

func (z ZeroDenominator) Valid() bool { return z == ZeroAsNotTested || z == ZeroAsValue }

// Band is the banding rule of one metric. A failing value whose relative
// shortfall is within AtRiskMargin is AT_RISK; beyond it, BREACH. A zero
// margin means every failure is a breach.
type Band struct {
	AtRiskMargin float64 `yaml:"at_risk_margin"`
}

// Policy is the per-metric banding table plus the zero-denominator rule.
type Policy struct {
	ZeroDenominator ZeroDenominator `yaml:"zero_denominator"`
	Bands           map[Metric]Band `yaml:"bands"`
}

// DefaultPolicy bands only the current ratio: falling up to 10% short of a
// minimum current ratio is AT_RISK rather than BREACH.
func DefaultPolicy() Policy {
	return Policy{
		ZeroDenominator: ZeroAsNotTested,
		Bands: map[Metric]Band{
			MetricLeverage:         {AtRiskMargin: 0},
			MetricInterestCoverage: {AtRiskMargin: 0},
			MetricCurrentRatio:     {AtRiskMargin: 0.10},
			MetricEBITDA:           {AtRiskMargin: 0},
			MetricNetWorth:         {AtRiskMargin: 0},
			MetricTotalDebt:        {AtRiskMargin: 0},
		},
	}
}

// LoadPolicy reads a YAML banding table and lays it over the defaults.
// An empty path returns the defaults.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read banding policy: %w", err)
	}
	var file Policy
	if err := yaml.Unmarshal(data, &file); err != nil {
		return p, fmt.Errorf("parse banding policy: %w", err)
	}
	if file.ZeroDenominator != "" {
		p.ZeroDenominator = file.ZeroDenominator
	}
	for m, b := range file.Bands {
		p.Bands[m] = b
	}
	return p, p.Validate()
}

func (p Policy) Validate() error {
	if !p.ZeroDenominator.Valid() {
		return fmt.Errorf("unknown zero_denominator policy %q", p.ZeroDenominator)
	}
	for m, b := range p.Bands {
		if b.AtRiskMargin < 0 {
			return fmt.Errorf("band %s: at_risk_margin must not be negative", m)
		}
	}
	return nil
}

// Outcome is the tested state of one covenant.
type Outcome struct {
	Metric  Metric
	Value   Value
	Display string
	Status  covenant.Status
}

// Evaluate tests value v of metric m against threshold t.
func (p Policy) Evaluate(m Metric, t Threshold, v Value) Outcome {
	out := Outcome{Metric: m, Value: v}
	if !v.Defined && m.IsRatio() && p.ZeroDenominator != ZeroAsValue {
		out.Display = covenant.NotAvailable
		out.Status = covenant.StatusNotTested
		return out
	}
	out.Display = FormatValue(m, v.Amount)

	if !t.Fails(v.Amount) {
		out.Status = covenant.StatusCompliant
		return out
	}
	out.Status = covenant.StatusBreach
	margin := decimal.NewFromFloat(p.Bands[m].AtRiskMargin)
	short := t.Shortfall(v.Amount)
	if margin.IsPositive() && !short.IsNegative() && short.LessThanOrEqual(margin) {
		out.Status = covenant.StatusAtRisk
	}
	return out
}

// Test resolves the covenant's metric and threshold and evaluates it
// against the figures. ok is false when the covenant cannot be tested from
// financial figures at all (reporting covenants, unreadable thresholds).
func (p Policy) Test(c covenant.Covenant, f Figures) (Outcome, Threshold, bool) {
	m, found := ResolveMetric(c.Name)
	if !found {
		return Outcome{}, Threshold{}, false
	}
	t, err := ParseThreshold(c.Name, c.ThresholdText)
	if err != nil {
		return Outcome{}, Threshold{}, false
	}
	return p.Evaluate(m, t, f.Value(m)), t, true
}

// FormatValue renders ratios as "5.29x" and money metrics as USD.
func FormatValue(m Metric, d decimal.Decimal) string {
	if m.IsRatio() {
		return d.StringFixed(2) + "x"
	}
	return FormatMoney(d.InexactFloat64())
}

// FormatMoney renders an amount in US dollars, e.g. "$6,200,000.00".
func FormatMoney(amount float64) string {
	return money.NewFromFloat(amount, money.USD).Display()
}
