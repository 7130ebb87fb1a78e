package compliance

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownDirection = errors.New("threshold has no direction")
	ErrInvalidThreshold = errors.New("threshold has no numeric limit")
)

// Direction says which side of the limit is compliant.
type Direction int

const (
	// Maximum covenants breach when the value rises above the limit.
	Maximum Direction = iota + 1
	// Minimum covenants breach when the value falls below the limit.
	Minimum
)

func (d Direction) String() string {
	switch d {
	case Maximum:
		return "maximum"
	case Minimum:
		return "minimum"
	}
	return "unknown"
}

type Threshold struct {
	Direction Direction
	Limit     decimal.Decimal
}

// ParseThreshold reads texts like "≤ 4.50x", ">= $5,000,000" or "3.00x".
// The comparison symbol wins; without one the covenant name must say
// Maximum or Minimum.
func ParseThreshold(covenantName, text string) (Threshold, error) {
	dir := directionFromText(text)
	if dir == 0 {
		dir = directionFromName(covenantName)
	}
	if dir == 0 {
		return Threshold{}, fmt.Errorf("%w: %q", ErrUnknownDirection, text)
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' || r == '-' {
			return r
		}
		return -1
	}, text)
	if digits == "" {
		return Threshold{}, fmt.Errorf("%w: %q", ErrInvalidThreshold, text)
	}
	limit, err := decimal.NewFromString(digits)
	if err != nil {
		return Threshold{}, fmt.Errorf("%w: %q", ErrInvalidThreshold, text)
	}
	return Threshold{Direction: dir, Limit: limit}, nil
}

func directionFromText(text string) Direction {
	switch {
	case strings.ContainsAny(text, "≤<"):
		return Maximum
	case strings.ContainsAny(text, "≥>"):
		return Minimum
	}
	return 0
}

func directionFromName(name string) Direction {
	n := strings.ToLower(name)
	switch {
	case strings.HasPrefix(n, "max"):
		return Maximum
	case strings.HasPrefix(n, "min"):
		return Minimum
	}
	return 0
}

// Fails reports whether v is on the wrong side of the limit. Sitting exactly
// on the limit is compliant.
func (t Threshold) Fails(v decimal.Decimal) bool {
	if t.Direction == Maximum {
		return v.GreaterThan(t.Limit)
	}
	return v.LessThan(t.Limit)
}

// Shortfall is how far v misses the limit, relative to the limit. It is
// zero when v passes and -1 when the limit is zero (no relative measure).
func (t Threshold) Shortfall(v decimal.Decimal) decimal.Decimal {
	if !t.Fails(v) {
		return decimal.Zero
	}
	if t.Limit.IsZero() {
		return decimal.NewFromInt(-1)
	}
	gap := v.Sub(t.Limit)
	if t.Direction == Minimum {
		gap = t.Limit.Sub(v)
	}
	return gap.Div(t.Limit.Abs())
}
