package kernel

import (
	"errors"

	"ordersvc/internal/pkg/guard"
)

var ErrClientContextIsNotConstructed = errors.New(
	"ClientContext must be created via NewClientContext constructor",
)

// ClientContext identifies the tenant and the caller behind an inbound operation.
// Every tenant-scoped read is filtered by ClientID and every write is stamped with it.
// ActorID is the opaque identity of the caller as resolved by the gateway and is
// only forwarded to other services.
type ClientContext struct {
	clientID ID
	actorID  string
	guard    guard.ConstructorGuard
}

func NewClientContext(clientID int64, actorID string) (ClientContext, error) {
	id, err := NewNamedID("client_id", clientID)
	if err != nil {
		return ClientContext{}, err
	}

	return ClientContext{
		clientID: id,
		actorID:  actorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// MustNewClientContext panics on invalid input. Intended for tests and jobs.
func MustNewClientContext(clientID int64, actorID string) ClientContext {
	cc, err := NewClientContext(clientID, actorID)
	if err != nil {
		panic(err)
	}
	return cc
}

func (c ClientContext) Validate() error {
	return c.guard.Validate(ErrClientContextIsNotConstructed)
}

func (c ClientContext) ClientID() ID {
	return c.clientID
}

func (c ClientContext) ActorID() string {
	return c.actorID
}
