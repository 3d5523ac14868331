package kernel

import (
	"fmt"
	"math"

	"parcel/internal/pkg/errs"
)

// CentTolerance is the maximum accepted difference, in cents, between a
// shipment's COD amount and the amount a courier actually collected.
// It absorbs rounding on the collection side.
const CentTolerance = 1

// Money is a value object for a non-negative monetary amount with
// two-decimal precision. The amount is stored in cents to keep arithmetic
// exact; float conversion happens only at the edges.
//
// The zero value represents zero money and is valid (a prepaid shipment has
// a COD amount of zero).
//
// Example:
//
//	price, err := kernel.NewMoneyFromFloat(39.99)
//	if err != nil {
//	    // handle invalid amount
//	}
//	total := price.Add(kernel.MoneyFromCents(150))
type Money struct {
	cents int64
}

// MoneyFromCents creates Money from an amount expressed in cents.
// Negative amounts are clamped by validation at the call sites that
// construct money from external input; this constructor trusts its caller
// and exists for persistence reconstruction.
func MoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromFloat creates Money from a float amount, rounding to the
// nearest cent. Rejects negative, NaN and infinite values.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%.2f is negative", amount))
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a float with two-decimal precision.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// IsEqual reports whether two amounts are exactly equal.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// WithinCentOf reports whether the two amounts differ by at most
// CentTolerance cents. This is the ±0.01 tolerance applied when matching a
// collected COD amount against the shipment's COD amount.
func (m Money) WithinCentOf(other Money) bool {
	diff := m.cents - other.cents
	if diff < 0 {
		diff = -diff
	}
	return diff <= CentTolerance
}

// String renders the amount with two decimals.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float64())
}
