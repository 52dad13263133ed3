package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/orderdetail"
)

// CreateOrderDetailCommandHandler creates a detail under a tenant order.
//
// The steps run in a fixed order: load the parent, derive total_sessions,
// check the session bound, confirm the professional relationship, resolve the
// missing price and cost, persist. A failing step stops the chain.
type CreateOrderDetailCommandHandler struct {
	uowFactory UoWFactory
	validator  DetailValidator
}

// NewCreateOrderDetailCommandHandler creates a handler for CreateOrderDetailCommand.
func NewCreateOrderDetailCommandHandler(
	uowFactory UoWFactory, validator DetailValidator,
) CreateOrderDetailCommandHandler {
	return CreateOrderDetailCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

func (h CreateOrderDetailCommandHandler) Handle(
	ctx context.Context, command CreateOrderDetailCommand,
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
	parent, err := uow.OrderRepository().Get(ctx, cc.ClientID(), command.OrderID())
	if err != nil {
		return nil, err
	}

	d, err := createDetail(ctx, uow, h.validator, cc, parent, command.Draft(), command.UpdatedBy())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func createDetail(
	ctx context.Context,
	uow UoW,
	validator DetailValidator,
	cc kernel.ClientContext,
	parent *order.Order,
	draft orderdetail.Draft,
	updatedBy kernel.ID,
) (*orderdetail.OrderDetail, error) {
	d, err := orderdetail.NewOrderDetail(parent, draft, updatedBy)
	if err != nil {
		return nil, err
	}

	if professionalID := d.ProfessionalID(); professionalID != nil {
		if err = validator.ValidateProfessionalRelationship(ctx, cc.ClientID(), *professionalID); err != nil {
			return nil, err
		}
	}

	if _, err = validator.ResolvePricing(ctx, cc, parent.References(), d); err != nil {
		return nil, err
	}

	if err = uow.OrderDetailRepository().Add(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
