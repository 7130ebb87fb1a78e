// Package compliance tests covenant thresholds against reported financials.
package compliance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Metric is the financial measure a covenant constrains.
type Metric string

const (
	MetricLeverage         Metric = "leverage"
	MetricInterestCoverage Metric = "interest_coverage"
	MetricCurrentRatio     Metric = "current_ratio"
	MetricEBITDA           Metric = "ebitda"
	MetricNetWorth         Metric = "net_worth"
	MetricTotalDebt        Metric = "total_debt"
)

// IsRatio reports whether the metric is a ratio (shown as "1.23x") rather
// than a money amount.
func (m Metric) IsRatio() bool {
	switch m {
	case MetricLeverage, MetricInterestCoverage, MetricCurrentRatio:
		return true
	}
	return false
}

// Checked in order: "Debt to EBITDA" must resolve to leverage before the
// bare "ebitda" keyword gets a chance.
var metricKeywords = []struct {
	metric Metric
	words  []string
}{
	{MetricLeverage, []string{"leverage", "debt to ebitda", "debt/ebitda"}},
	{MetricInterestCoverage, []string{"interest coverage", "coverage ratio"}},
	{MetricCurrentRatio, []string{"current ratio"}},
	{MetricNetWorth, []string{"net worth", "tangible net worth"}},
	{MetricTotalDebt, []string{"total debt"}},
	{MetricEBITDA, []string{"ebitda"}},
}

// ResolveMetric maps a covenant name such as "Maximum Leverage Ratio" to the
// metric it constrains.
func ResolveMetric(covenantName string) (Metric, bool) {
	name := strings.ToLower(covenantName)
	for _, mk := range metricKeywords {
		for _, w := range mk.words {
			if strings.Contains(name, w) {
				return mk.metric, true
			}
		}
	}
	return "", false
}

// Figures are the raw amounts of one financial snapshot.
type Figures struct {
	TotalDebt          decimal.Decimal
	EBITDA             decimal.Decimal
	InterestExpense    decimal.Decimal
	CurrentAssets      decimal.Decimal
	CurrentLiabilities decimal.Decimal
	NetWorth           decimal.Decimal
}

func NewFigures(totalDebt, ebitda, interestExpense, currentAssets, currentLiabilities, netWorth float64) Figures {
	return Figures{
		TotalDebt:          decimal.NewFromFloat(totalDebt),
		EBITDA:             decimal.NewFromFloat(ebitda),
		InterestExpense:    decimal.NewFromFloat(interestExpense),
		CurrentAssets:      decimal.NewFromFloat(currentAssets),
		CurrentLiabilities: decimal.NewFromFloat(currentLiabilities),
		NetWorth:           decimal.NewFromFloat(netWorth),
	}
}

// Value is a computed metric. Defined is false when a ratio's denominator
// was zero or negative; Amount is then zero.
type Value struct {
	Amount  decimal.Decimal
	Defined bool
}

func defined(d decimal.Decimal) Value { return Value{Amount: d, Defined: true} }

func ratio(num, den decimal.Decimal) Value {
	if den.LessThanOrEqual(decimal.Zero) {
		return Value{Amount: decimal.Zero}
	}
	return defined(num.Div(den))
}

// Value computes metric m from the figures.
func (f Figures) Value(m Metric) Value {
	switch m {
	case MetricLeverage:
		return ratio(f.TotalDebt, f.EBITDA)
	case MetricInterestCoverage:
		return ratio(f.EBITDA, f.InterestExpense)
	case MetricCurrentRatio:
		return ratio(f.CurrentAssets, f.CurrentLiabilities)
	case MetricEBITDA:
		return defined(f.EBITDA)
	case MetricNetWorth:
		return defined(f.NetWorth)
	case MetricTotalDebt:
		return defined(f.TotalDebt)
	}
	return Value{}
}

// Ratios are the three headline ratios of a snapshot.
type Ratios struct {
	Leverage         Value
	InterestCoverage Value
	CurrentRatio     Value
}

func (f Figures) Ratios() Ratios {
	return Ratios{
		Leverage:         f.Value(MetricLeverage),
		InterestCoverage: f.Value(MetricInterestCoverage),
		CurrentRatio:     f.Value(MetricCurrentRatio),
	}
}
