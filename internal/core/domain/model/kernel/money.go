package kernel

import (
	"fmt"
	"math"

	"wroom/internal/pkg/errs"
)

// Money is a value object representing an amount of currency in minor units
// (cents). Keeping prices as integers avoids floating point rounding drift
// when line item totals are summed.
//
// The zero value is a valid amount of zero. Negative amounts are rejected by
// NewMoney, which is the only way negative input can enter the domain.
//
// Example:
//
//	price, err := kernel.NewMoney(1250) // 12.50
//	if err != nil {
//	    // handle invalid amount
//	}
//	total := price.Mul(3) // 37.50
type Money int64

// NewMoney creates a Money amount from minor units.
// Returns an error if the amount is negative.
func NewMoney(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"money is invalid",
			fmt.Errorf("%d is negative", minorUnits),
		)
	}
	return Money(minorUnits), nil
}

// MoneyFromFloat creates Money from a major-unit float, rounding to the
// nearest cent. Used at API boundaries where amounts arrive as decimals.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(int64(math.Round(f * 100.0)))
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Mul returns the amount multiplied by a quantity.
func (m Money) Mul(quantity int) Money {
	return m * Money(quantity)
}

// MinorUnits returns the raw amount in minor units.
func (m Money) MinorUnits() int64 {
	return int64(m)
}

// Float returns the amount in major units for presentation.
func (m Money) Float() float64 {
	return float64(m) / 100.0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m == other
}

// Validate checks that the amount is not negative.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"money is invalid",
			fmt.Errorf("%d is negative", int64(m)),
		)
	}
	return nil
}
