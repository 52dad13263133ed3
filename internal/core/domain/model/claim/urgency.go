package claim

import (
	"fmt"
	"strings"

	"ordersvc/internal/pkg/errs"
)

// Urgency is the severity reported with a claim.
type Urgency string

const (
	Low      Urgency = "low"
	Medium   Urgency = "medium"
	High     Urgency = "high"
	Critical Urgency = "critical"
)

// ParseUrgency accepts the urgency names case-insensitively.
func ParseUrgency(raw string) (Urgency, error) {
	u := Urgency(strings.ToLower(strings.TrimSpace(raw)))
	if err := u.Validate(); err != nil {
		return "", err
	}
	return u, nil
}

func (u Urgency) Validate() error {
	switch u {
	case Low, Medium, High, Critical:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("urgency", fmt.Errorf("%q is not one of low, medium, high, critical", string(u)))
	}
}

func (u Urgency) String() string {
	return string(u)
}
