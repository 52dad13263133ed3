package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/orderdetail"
)

// UpdateOrderDetailCommandHandler merges a patch over an open detail.
//
// The parent order is loaded for its frequency, needed when total_sessions is
// zero after the merge. A newly assigned professional is confirmed with the
// community authority, and value or cost left at zero are resolved again.
type UpdateOrderDetailCommandHandler struct {
	uowFactory UoWFactory
	validator  DetailValidator
}

// NewUpdateOrderDetailCommandHandler creates a handler for UpdateOrderDetailCommand.
func NewUpdateOrderDetailCommandHandler(
	uowFactory UoWFactory, validator DetailValidator,
) UpdateOrderDetailCommandHandler {
	return UpdateOrderDetailCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

func (h UpdateOrderDetailCommandHandler) Handle(
	ctx context.Context, command UpdateOrderDetailCommand,
) (*orderdetail.OrderDetail, error) {
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
	detailRepo := uow.OrderDetailRepository()

	d, err := detailRepo.Get(ctx, cc.ClientID(), command.DetailID())
	if err != nil {
		return nil, err
	}

	parent, err := uow.OrderRepository().Get(ctx, cc.ClientID(), d.OrderID())
	if err != nil {
		return nil, err
	}
	if err = parent.EnsureActive(); err != nil {
		return nil, err
	}

	result, err := d.ApplyPatch(command.Patch(), parent.Frequency(), command.UpdatedBy())
	if err != nil {
		return nil, err
	}

	if result.ProfessionalAssigned {
		if err = h.validator.ValidateProfessionalRelationship(ctx, cc.ClientID(), *d.ProfessionalID()); err != nil {
			return nil, err
		}
	}

	resolved, err := h.validator.ResolvePricing(ctx, cc, parent.References(), d)
	if err != nil {
		return nil, err
	}
	result.MarkResolved(resolved...)

	if err = detailRepo.Update(ctx, d, result.Fields); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
