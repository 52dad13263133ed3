// Package authority implements the coordinator and community clients over the
// message bus.
package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"ordersvc/internal/core/domain/model/kernel"

	pkgerrors "github.com/pkg/errors"
)

// Requester sends one request and decodes its reply. *msgbus.Client
// satisfies it.
type Requester interface {
	Send(ctx context.Context, pattern string, data any, out any) error
}

type currentClient struct {
	ClientID int64  `json:"client_id"`
	MongoID  string `json:"mongo_id"`
}

func newCurrentClient(cc kernel.ClientContext) currentClient {
	return currentClient{ClientID: cc.ClientID().Int64(), MongoID: cc.ActorID()}
}

type compositeID struct {
	CompanyID      int64  `json:"company_fk"`
	TreatmentID    int64  `json:"treatment_fk"`
	PatientID      *int64 `json:"patient_fk,omitempty"`
	ProfessionalID *int64 `json:"professional_fk,omitempty"`
}

type coordinatorRequest struct {
	CurrentClient currentClient `json:"currentClient"`
	CompositeID   compositeID   `json:"compositeIdDto"`
}

type relation struct {
	ClientID       int64 `json:"client_fk"`
	ProfessionalID int64 `json:"professional_fk"`
}

type relationRequest struct {
	Relation relation `json:"relation"`
}

// valueReply is the answer of the pricing topics. The value arrives either as
// a JSON number or as a numeric string, as produced by decimal columns.
type valueReply struct {
	Value json.RawMessage `json:"value"`
}

func (r valueReply) amount() (kernel.Amount, error) {
	raw := bytes.TrimSpace(r.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, pkgerrors.Wrap(err, "decode value")
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, nil
		}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "value %q is not a number", text)
	}
	return kernel.Amount(v), nil
}

// truthy reports whether a reply carries an answer: null, false, zero, empty
// strings and empty documents do not.
func truthy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`, "{}", "[]":
		return false
	default:
		return true
	}
}
