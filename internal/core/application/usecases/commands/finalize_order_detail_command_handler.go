package commands

import (
	"context"
	"time"

	"ordersvc/internal/core/domain/model/orderdetail"
)

// FinalizeOrderDetailCommandHandler closes a detail. Finalizing is terminal.
type FinalizeOrderDetailCommandHandler struct {
	uowFactory UoWFactory
}

// NewFinalizeOrderDetailCommandHandler creates a handler for FinalizeOrderDetailCommand.
func NewFinalizeOrderDetailCommandHandler(uowFactory UoWFactory) FinalizeOrderDetailCommandHandler {
	return FinalizeOrderDetailCommandHandler{uowFactory: uowFactory}
}

func (h FinalizeOrderDetailCommandHandler) Handle(
	ctx context.Context, command FinalizeOrderDetailCommand,
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

	detailRepo := uow.OrderDetailRepository()
	d, err := detailRepo.Get(ctx, command.ClientContext().ClientID(), command.DetailID())
	if err != nil {
		return nil, err
	}

	if err = d.Finalize(command.UpdatedBy(), time.Now()); err != nil {
		return nil, err
	}

	fields := []orderdetail.Field{orderdetail.FieldFinishedAt, orderdetail.FieldUpdatedBy}
	if err = detailRepo.Update(ctx, d, fields); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
