package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/orderdetail"
	"ordersvc/internal/pkg/guard"
)

var ErrUpdateOrderDetailCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailCommand must be created via NewUpdateOrderDetailCommand constructor",
)

type UpdateOrderDetailCommand struct { //nolint:recvcheck //using for validation
	clientContext kernel.ClientContext
	updatedBy     kernel.ID
	detailID      kernel.ID
	patch         orderdetail.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailCommand(
	cc kernel.ClientContext,
	updatedBy kernel.ID,
	detailID kernel.ID,
	patch orderdetail.Patch,
) (UpdateOrderDetailCommand, error) {
	if err := errors.Join(
		cc.Validate(),
		namedID("updated_by", updatedBy),
		namedID("detail_id", detailID),
	); err != nil {
		return UpdateOrderDetailCommand{}, err
	}

	return UpdateOrderDetailCommand{
		clientContext: cc,
		updatedBy:     updatedBy,
		detailID:      detailID,
		patch:         patch,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderDetailCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailCommandIsNotConstructed)
}

func (c UpdateOrderDetailCommand) ClientContext() kernel.ClientContext {
	return c.clientContext
}

func (c UpdateOrderDetailCommand) UpdatedBy() kernel.ID {
	return c.updatedBy
}

func (c UpdateOrderDetailCommand) DetailID() kernel.ID {
	return c.detailID
}

func (c UpdateOrderDetailCommand) Patch() orderdetail.Patch {
	return c.patch
}
