// Package msgbus implements request/reply messaging over Redis pub/sub in the
// framing used by the NestJS Redis transporter, so the service can answer and
// call the existing peers.
//
// A request for pattern P is published on channel P:
//
//	{"pattern": "P", "data": {...}, "id": "<uuid>"}
//
// and its reply on channel "P.reply":
//
//	{"id": "<uuid>", "response": ..., "err": {...}, "isDisposed": true}
package msgbus

import (
	"bytes"
	"encoding/json"

	"ordersvc/internal/pkg/errs"
)

const replySuffix = ".reply"

// ReplyChannel returns the channel replies to pattern are published on.
func ReplyChannel(pattern string) string {
	return pattern + replySuffix
}

type Request struct {
	Pattern string          `json:"pattern"`
	Data    json.RawMessage `json:"data"`
	ID      string          `json:"id"`
}

type Reply struct {
	ID         string          `json:"id"`
	Response   json.RawMessage `json:"response,omitempty"`
	Err        *ErrorBody      `json:"err,omitempty"`
	IsDisposed bool            `json:"isDisposed"`
}

// ErrorBody is the failure half of a reply. Peers may send a bare string
// instead of an object; it is decoded as a message without a status.
type ErrorBody struct {
	Status  int    `json:"status"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

func (b *ErrorBody) UnmarshalJSON(raw []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte(`"`)) {
		return json.Unmarshal(raw, &b.Message)
	}

	type plain ErrorBody
	var body plain
	if err := json.Unmarshal(raw, &body); err != nil {
		return err
	}
	*b = ErrorBody(body)
	return nil
}

// NewErrorBody classifies err for the wire.
func NewErrorBody(err error) *ErrorBody {
	kind := errs.KindOf(err)
	return &ErrorBody{
		Status:  errs.KindStatus(kind),
		Kind:    string(kind),
		Message: err.Error(),
	}
}

// asError turns a received error body into a typed error. Statuses of 500 and
// above, and timeouts reported by the peer, mean the peer could not answer.
func (b *ErrorBody) asError(pattern string) error {
	status := b.Status
	if status == 0 {
		status = errs.KindStatus(errs.Kind(b.Kind))
		if b.Kind == "" {
			status = 400
		}
	}

	rejected := errs.NewUpstreamRejectedError(pattern, status, b.Message)
	if errs.KindFromStatus(status) == errs.KindUpstreamUnavailable || status >= 500 {
		return errs.NewUpstreamUnavailableErrorWithCause(pattern, rejected)
	}
	return rejected
}
