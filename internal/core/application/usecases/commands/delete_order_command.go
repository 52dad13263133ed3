package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand soft-deletes an order of the tenant. Details are kept.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	clientContext kernel.ClientContext
	updatedBy     kernel.ID
	orderID       kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(cc kernel.ClientContext, updatedBy, orderID kernel.ID) (DeleteOrderCommand, error) {
	if err := errors.Join(
		cc.Validate(),
		namedID("updated_by", updatedBy),
		namedID("order_id", orderID),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		clientContext: cc,
		updatedBy:     updatedBy,
		orderID:       orderID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) ClientContext() kernel.ClientContext {
	return c.clientContext
}

func (c DeleteOrderCommand) UpdatedBy() kernel.ID {
	return c.updatedBy
}

func (c DeleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
