package kernel

import (
	"fmt"
	"strconv"

	"ordersvc/internal/pkg/errs"
)

// MaxID is the largest identifier accepted anywhere in the service. It matches
// the range of the INTEGER primary keys shared with the peer services.
const MaxID = 2147483647

// ID is a positive integer identifier of an entity owned by this service or
// referenced from another one (company, patient, treatment, professional).
type ID int64

// NewID validates raw and returns it as an ID.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// NewNamedID is NewID with the parameter name reported in the error.
func NewNamedID(paramName string, raw int64) (ID, error) {
	if raw <= 0 || raw > MaxID {
		return 0, errs.NewValueIsOutOfRangeError(paramName, raw, 1, MaxID)
	}
	return ID(raw), nil
}

// Validate reports whether the identifier is within 1..MaxID.
func (id ID) Validate() error {
	if id <= 0 || id > MaxID {
		return errs.NewValueIsOutOfRangeError("id", int64(id), 1, MaxID)
	}
	return nil
}

func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Ptr returns a pointer to a copy of id. It is a helper for optional references.
func (id ID) Ptr() *ID {
	return &id
}

// EqualPtr compares two optional identifiers.
func EqualPtr(a, b *ID) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return *a == *b
	}
}

// FormatPtr renders an optional identifier for messages.
func FormatPtr(id *ID) string {
	if id == nil {
		return "null"
	}
	return fmt.Sprintf("%d", *id)
}
