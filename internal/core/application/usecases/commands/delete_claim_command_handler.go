package commands

import (
	"context"
	"time"

	"ordersvc/internal/core/domain/model/claim"
)

// DeleteClaimCommandHandler handles DeleteClaimCommand.
type DeleteClaimCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteClaimCommandHandler creates a handler for DeleteClaimCommand.
func NewDeleteClaimCommandHandler(uowFactory UoWFactory) DeleteClaimCommandHandler {
	return DeleteClaimCommandHandler{uowFactory: uowFactory}
}

func (h DeleteClaimCommandHandler) Handle(ctx context.Context, command DeleteClaimCommand) (*claim.Claim, error) {
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

	claimRepo := uow.ClaimRepository()
	c, err := claimRepo.Get(ctx, command.ClientContext().ClientID(), command.ClaimID())
	if err != nil {
		return nil, err
	}

	if err = c.Delete(command.UpdatedBy(), time.Now()); err != nil {
		return nil, err
	}

	if err = claimRepo.Update(ctx, c, []claim.Field{claim.FieldDeletedAt, claim.FieldUpdatedBy}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
