package kernel

import (
	"fmt"
	"math"

	"ordersvc/internal/pkg/errs"
)

// Amount is a non-negative monetary quantity: coinsurance, unit price or cost.
// The zero value means "not known yet" for value and cost and triggers a
// lookup against the pricing authority.
type Amount float64

// NewAmount validates v for the parameter paramName.
func NewAmount(paramName string, v float64) (Amount, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%v is not a finite number", v))
	}
	if v < 0 {
		return 0, errs.NewValueIsOutOfRangeError(paramName, v, 0, "+inf")
	}
	return Amount(v), nil
}

func (a Amount) IsZero() bool {
	return a == 0
}

func (a Amount) Float64() float64 {
	return float64(a)
}
