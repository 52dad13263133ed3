package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/orderdetail"
	"ordersvc/internal/pkg/guard"
)

var ErrCreateOrderDetailCommandIsNotConstructed = errors.New(
	"CreateOrderDetailCommand must be created via NewCreateOrderDetailCommand constructor",
)

// CreateOrderDetailCommand schedules a window of sessions under an existing order.
type CreateOrderDetailCommand struct { //nolint:recvcheck //using for validation
	clientContext kernel.ClientContext
	updatedBy     kernel.ID
	orderID       kernel.ID
	draft         orderdetail.Draft

	guard guard.ConstructorGuard
}

func NewCreateOrderDetailCommand(
	cc kernel.ClientContext,
	updatedBy kernel.ID,
	orderID kernel.ID,
	draft orderdetail.Draft,
) (CreateOrderDetailCommand, error) {
	if err := errors.Join(
		cc.Validate(),
		namedID("updated_by", updatedBy),
		namedID("order_fk", orderID),
	); err != nil {
		return CreateOrderDetailCommand{}, err
	}

	return CreateOrderDetailCommand{
		clientContext: cc,
		updatedBy:     updatedBy,
		orderID:       orderID,
		draft:         draft,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderDetailCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderDetailCommandIsNotConstructed)
}

func (c CreateOrderDetailCommand) ClientContext() kernel.ClientContext {
	return c.clientContext
}

func (c CreateOrderDetailCommand) UpdatedBy() kernel.ID {
	return c.updatedBy
}

func (c CreateOrderDetailCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CreateOrderDetailCommand) Draft() orderdetail.Draft {
	return c.draft
}
