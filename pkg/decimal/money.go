package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64. Non-finite values become zero
// since decimal cannot represent them.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromUnits creates a Money instance from a whole currency amount
func NewMoneyFromUnits(units int64) Money {
	return Money{decimal.NewFromInt(units)}
}

var half = decimal.NewFromFloat(0.5)

// Round rounds to whole currency units, halves toward positive infinity
// (2.5 becomes 3, -2.5 becomes -2).
func (m Money) Round() Money {
	return Money{m.Decimal.Add(half).Floor()}
}

// Units returns the amount rounded to whole currency units.
func (m Money) Units() int64 {
	return m.Round().IntPart()
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// RoundUnits rounds a float amount to whole currency units. This is the single rounding
// policy of the projection: half up, applied to each reported field on its own.
func RoundUnits(value float64) int64 {
	return NewMoney(value).Units()
}

// String returns the string representation in whole units
func (m Money) String() string {
	return m.Round().Decimal.StringFixed(0)
}
