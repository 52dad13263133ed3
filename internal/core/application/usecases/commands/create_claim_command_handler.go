package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/claim"
)

// CreateClaimCommandHandler persists a claim once the detail it refers to is
// known to belong to the tenant.
type CreateClaimCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateClaimCommandHandler creates a handler for CreateClaimCommand.
func NewCreateClaimCommandHandler(uowFactory UoWFactory) CreateClaimCommandHandler {
	return CreateClaimCommandHandler{uowFactory: uowFactory}
}

func (h CreateClaimCommandHandler) Handle(ctx context.Context, command CreateClaimCommand) (*claim.Claim, error) {
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
	if _, err := uow.OrderDetailRepository().Get(ctx, clientID, command.DetailID()); err != nil {
		return nil, err
	}

	c, err := claim.NewClaim(
		clientID, command.DetailID(), command.Cause(), command.Urgency(), command.ReportedDate(), command.UpdatedBy(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ClaimRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
