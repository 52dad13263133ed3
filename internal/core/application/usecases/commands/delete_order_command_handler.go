package commands

import (
	"context"
	"time"

	"ordersvc/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler stamps deleted_at on a tenant order. A second delete
// fails with a conflict, both when it is detected on load and when it loses the
// race on the conditional write.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for DeleteOrderCommand.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, command.ClientContext().ClientID(), command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Delete(command.UpdatedBy(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o, []order.Field{order.FieldDeletedAt, order.FieldUpdatedBy}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
