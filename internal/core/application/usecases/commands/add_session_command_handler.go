package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/orderdetail"
	"ordersvc/internal/pkg/errs"
)

// AddSessionCommandHandler increments sessions with a single conditional write.
// When nothing was updated the detail is re-read to tell "not yours or closed"
// (not found) from "no sessions left" (validation).
type AddSessionCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddSessionCommandHandler creates a handler for AddSessionCommand.
func NewAddSessionCommandHandler(uowFactory UoWFactory) AddSessionCommandHandler {
	return AddSessionCommandHandler{uowFactory: uowFactory}
}

func (h AddSessionCommandHandler) Handle(ctx context.Context, command AddSessionCommand) (*orderdetail.OrderDetail, error) {
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
	updated, err := detailRepo.IncrementSessions(ctx, command.DetailID(), command.ProfessionalID())
	if err != nil {
		return nil, err
	}

	d, err := detailRepo.GetUnscoped(ctx, command.DetailID())
	if err != nil {
		return nil, err
	}

	if !updated {
		if err = d.EnsureSessionAddable(command.ProfessionalID()); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectConflictError("detail_id", command.DetailID(), "was modified concurrently")
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
