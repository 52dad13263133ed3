package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/claim"
)

// UpdateClaimCommandHandler handles UpdateClaimCommand.
type UpdateClaimCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateClaimCommandHandler creates a handler for UpdateClaimCommand.
func NewUpdateClaimCommandHandler(uowFactory UoWFactory) UpdateClaimCommandHandler {
	return UpdateClaimCommandHandler{uowFactory: uowFactory}
}

// Handle moves the claim to another detail only when that detail belongs to
// the same tenant.
func (h UpdateClaimCommandHandler) Handle(ctx context.Context, command UpdateClaimCommand) (*claim.Claim, error) {
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

	clientID := command.ClientContext().ClientID()
	claimRepo := uow.ClaimRepository()

	c, err := claimRepo.Get(ctx, clientID, command.ClaimID())
	if err != nil {
		return nil, err
	}

	patch := command.Patch()
	fields, err := c.ApplyPatch(patch, command.UpdatedBy())
	if err != nil {
		return nil, err
	}

	if patch.DetailID != nil {
		if _, err = uow.OrderDetailRepository().Get(ctx, clientID, *patch.DetailID); err != nil {
			return nil, err
		}
	}

	if err = claimRepo.Update(ctx, c, fields); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
