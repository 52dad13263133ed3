package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/orderdetail"
)

// CreateOrderResult is the outcome of CreateOrderCommandHandler. Detail is nil
// when the command carried no detail.
type CreateOrderResult struct {
	Order  *order.Order
	Detail *orderdetail.OrderDetail
}

// CreateOrderCommandHandler confirms the patient, company and treatment triple
// with the coordinator authority and persists the order stamped with the tenant
// and the actor. An embedded detail is created in the same transaction, so a
// failing detail leaves no bare order behind.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	validator  Validator
}

// NewCreateOrderCommandHandler creates a handler for CreateOrderCommand.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, validator Validator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle runs the coordinator check before opening the transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (CreateOrderResult, error) {
	if err := command.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	cc := command.ClientContext()
	newOrder, err := order.NewOrder(
		cc.ClientID(), command.References(), command.Frequency(), command.Diagnosis(), command.UpdatedBy(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.validator.ValidateCoordinator(ctx, cc, newOrder.References()); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	result := CreateOrderResult{Order: newOrder}
	if draft := command.Detail(); draft != nil {
		result.Detail, err = createDetail(ctx, uow, h.validator, cc, newOrder, *draft, command.UpdatedBy())
		if err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return result, nil
}
