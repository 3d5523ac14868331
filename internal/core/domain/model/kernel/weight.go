package kernel

import (
	"fmt"
	"math"

	"parcel/internal/pkg/errs"
)

// Weight is a value object for a parcel weight in kilograms with
// two-decimal precision. Weight must be strictly positive; the zero value
// is invalid and must be constructed through NewWeight.
type Weight struct {
	kg float64
}

// NewWeight creates a Weight from a kilogram value, rounding to two
// decimals. Rejects zero, negative, NaN and infinite values.
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidError("weight")
	}

	rounded := math.Round(kg*100) / 100
	if rounded <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%.2f is not greater than 0", kg))
	}

	return Weight{kg: rounded}, nil
}

// Kilograms returns the weight value.
func (w Weight) Kilograms() float64 {
	return w.kg
}

// Validate checks that the weight was constructed through NewWeight.
func (w Weight) Validate() error {
	if w.kg <= 0 {
		return errs.NewValueIsRequiredError("weight must be created via NewWeight")
	}
	return nil
}

// Between reports whether the weight lies inside the inclusive range
// [from, to]. Used by pricing rules, whose weight bands include both ends.
func (w Weight) Between(from, to float64) bool {
	return w.kg >= from && w.kg <= to
}

// String renders the weight with two decimals.
func (w Weight) String() string {
	return fmt.Sprintf("%.2f", w.kg)
}
