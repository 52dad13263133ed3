package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrFinalizeOrderDetailCommandIsNotConstructed = errors.New(
	"FinalizeOrderDetailCommand must be created via NewFinalizeOrderDetailCommand constructor",
)

type FinalizeOrderDetailCommand struct { //nolint:recvcheck //using for validation
	clientContext kernel.ClientContext
	updatedBy     kernel.ID
	detailID      kernel.ID

	guard guard.ConstructorGuard
}

func NewFinalizeOrderDetailCommand(
	cc kernel.ClientContext, updatedBy, detailID kernel.ID,
) (FinalizeOrderDetailCommand, error) {
	if err := errors.Join(
		cc.Validate(),
		namedID("updated_by", updatedBy),
		namedID("detail_id", detailID),
	); err != nil {
		return FinalizeOrderDetailCommand{}, err
	}

	return FinalizeOrderDetailCommand{
		clientContext: cc,
		updatedBy:     updatedBy,
		detailID:      detailID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c FinalizeOrderDetailCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderDetailCommandIsNotConstructed)
}

func (c FinalizeOrderDetailCommand) ClientContext() kernel.ClientContext {
	return c.clientContext
}

func (c FinalizeOrderDetailCommand) UpdatedBy() kernel.ID {
	return c.updatedBy
}

func (c FinalizeOrderDetailCommand) DetailID() kernel.ID {
	return c.detailID
}
