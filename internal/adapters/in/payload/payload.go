// Package payload holds the request documents accepted by the inbound adapters
// and turns them into commands and queries. Field names follow the documents
// the peer services already send.
package payload

import (
	"encoding/json"
	"strings"
	"time"

	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"
)

// ClientIDs is the tenant context forwarded by the gateway.
type ClientIDs struct {
	ClientID int64  `json:"client_id"`
	MongoID  string `json:"mongo_id"`
}

func (c ClientIDs) Context() (kernel.ClientContext, error) {
	return kernel.NewClientContext(c.ClientID, c.MongoID)
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Page returns the first page when p is nil.
func (p *Pagination) Page() (queries.Page, error) {
	if p == nil {
		return queries.FirstPage(), nil
	}
	return queries.NewPage(p.Limit, p.Offset)
}

// Date accepts RFC 3339 timestamps and plain calendar dates.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (d *Date) UnmarshalJSON(raw []byte) error {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	t, err := ParseDate(text)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDate reads text in any of the accepted date layouts and returns it in UTC.
func ParseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidError("date " + text)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339Nano))
}

func timePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func idPtr(raw *int64) *kernel.ID {
	if raw == nil {
		return nil
	}
	id := kernel.ID(*raw)
	return &id
}

func amount(paramName string, v float64) (kernel.Amount, error) {
	return kernel.NewAmount(paramName, v)
}

func amountPtr(paramName string, v *float64) (*kernel.Amount, error) {
	if v == nil {
		return nil, nil
	}
	a, err := kernel.NewAmount(paramName, *v)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
