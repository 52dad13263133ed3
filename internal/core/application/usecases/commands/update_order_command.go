package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is a partial update of an order of the tenant.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	clientContext kernel.ClientContext
	updatedBy     kernel.ID
	orderID       kernel.ID
	patch         order.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	cc kernel.ClientContext,
	updatedBy kernel.ID,
	orderID kernel.ID,
	patch order.Patch,
) (UpdateOrderCommand, error) {
	if err := errors.Join(
		cc.Validate(),
		namedID("updated_by", updatedBy),
		namedID("order_id", orderID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		clientContext: cc,
		updatedBy:     updatedBy,
		orderID:       orderID,
		patch:         patch,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) ClientContext() kernel.ClientContext {
	return c.clientContext
}

func (c UpdateOrderCommand) UpdatedBy() kernel.ID {
	return c.updatedBy
}

func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

// namedID validates an identifier carried by a command and names it in the error.
func namedID(paramName string, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return nil
}
