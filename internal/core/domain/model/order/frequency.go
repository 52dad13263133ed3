package order

import (
	"ordersvc/internal/pkg/errs"
)

const (
	MinFrequency = 1
	MaxFrequency = 7
)

// Frequency is the number of treatment sessions per week prescribed by an order.
type Frequency int

// NewFrequency validates raw and returns it as a Frequency.
func NewFrequency(raw int) (Frequency, error) {
	f := Frequency(raw)
	if err := f.Validate(); err != nil {
		return 0, err
	}
	return f, nil
}

// Validate checks that the frequency is within 1..7 sessions per week.
func (f Frequency) Validate() error {
	if f < MinFrequency || f > MaxFrequency {
		return errs.NewValueIsOutOfRangeError("frequency", int(f), MinFrequency, MaxFrequency)
	}
	return nil
}

func (f Frequency) Int() int {
	return int(f)
}
