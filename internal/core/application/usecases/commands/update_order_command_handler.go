package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler merges a patch over a tenant order and persists the
// patched columns only. The coordinator check runs again on the merged
// references, whether or not the patch touched them.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	validator  CoordinatorValidator
}

// NewUpdateOrderCommandHandler creates a handler for UpdateOrderCommand.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory, validator CoordinatorValidator) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, command UpdateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cc := command.ClientContext()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cc.ClientID(), command.OrderID())
	if err != nil {
		return nil, err
	}

	fields, err := o.ApplyPatch(command.Patch(), command.UpdatedBy())
	if err != nil {
		return nil, err
	}

	if err = h.validator.ValidateCoordinator(ctx, cc, o.References()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o, fields); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
