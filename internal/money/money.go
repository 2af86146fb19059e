// Package money holds currency amounts as an integer count of cents.
//
// Amounts enter the system as decimal text or float64 and are converted exactly
// once: scaled by 100 and rounded half away from zero. Arithmetic afterwards is
// plain int64 arithmetic with overflow checks.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrOutOfRange    = fmt.Errorf("%w: out of range", ErrInvalidAmount)
)

var (
	centsPerUnit = decimal.NewFromInt(constants.CentsPerUnit)
	maxCents     = decimal.NewFromInt(math.MaxInt64)
	minCents     = decimal.NewFromInt(math.MinInt64)
)

// Money is a signed amount of minor units (cents).
type Money int64

func FromCents(cents int64) Money {
	return Money(cents)
}

// FromDecimal converts a dollar amount to cents, rounding half away from zero.
func FromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Mul(centsPerUnit).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, fmt.Errorf("%s: %w", d.String(), ErrOutOfRange)
	}
	return Money(cents.IntPart()), nil
}

// Parse converts dollar text such as "150", "150.5" or "-0.125" to cents.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount: %w", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, ErrInvalidAmount)
	}

	return FromDecimal(d)
}

// ParsePositive is Parse restricted to amounts greater than zero after rounding.
func ParsePositive(s string) (Money, error) {
	m, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if !m.IsPositive() {
		return 0, fmt.Errorf("%q must be greater than zero: %w", s, ErrInvalidAmount)
	}
	return m, nil
}

// FromFloat converts a float dollar amount using its shortest decimal
// representation, so 0.1 is ten cents rather than 0.1000000000000000055 dollars.
func FromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not finite: %w", f, ErrInvalidAmount)
	}
	return FromDecimal(decimal.NewFromFloat(f))
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

func (m Money) Add(o Money) (Money, error) {
	sum := m + o
	if (o > 0 && sum < m) || (o < 0 && sum > m) {
		return 0, fmt.Errorf("%s + %s: %w", m, o, ErrOutOfRange)
	}
	return sum, nil
}

func (m Money) Sub(o Money) (Money, error) {
	if o == math.MinInt64 {
		return 0, fmt.Errorf("%s - %s: %w", m, o, ErrOutOfRange)
	}
	return m.Add(-o)
}

// Neg panics on math.MinInt64 cents, which no parsed amount can reach.
func (m Money) Neg() Money {
	if m == math.MinInt64 {
		panic("money: negation overflow")
	}
	return -m
}

func (m Money) Abs() Money {
	if m < 0 {
		return m.Neg()
	}
	return m
}

func (m Money) Cmp(o Money) int {
	switch {
	case m < o:
		return -1
	case m > o:
		return 1
	default:
		return 0
	}
}

func (m Money) Sign() int {
	return m.Cmp(0)
}

func (m Money) IsPositive() bool { return m > 0 }
func (m Money) IsNegative() bool { return m < 0 }
func (m Money) IsZero() bool     { return m == 0 }

// String renders the amount in major units with two decimals, e.g. "-30.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Format appends a currency code: "70.00 USD".
func (m Money) Format(currency string) string {
	if currency == "" {
		return m.String()
	}
	return m.String() + " " + currency
}
