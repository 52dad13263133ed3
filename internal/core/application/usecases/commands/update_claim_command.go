package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrUpdateClaimCommandIsNotConstructed = errors.New(
	"UpdateClaimCommand must be created via NewUpdateClaimCommand constructor",
)

type UpdateClaimCommand struct { //nolint:recvcheck //using for validation
	clientContext kernel.ClientContext
	updatedBy     kernel.ID
	claimID       kernel.ID
	patch         claim.Patch

	guard guard.ConstructorGuard
}

func NewUpdateClaimCommand(
	cc kernel.ClientContext,
	updatedBy kernel.ID,
	claimID kernel.ID,
	patch claim.Patch,
) (UpdateClaimCommand, error) {
	if err := errors.Join(
		cc.Validate(),
		namedID("updated_by", updatedBy),
		namedID("claim_id", claimID),
	); err != nil {
		return UpdateClaimCommand{}, err
	}

	return UpdateClaimCommand{
		clientContext: cc,
		updatedBy:     updatedBy,
		claimID:       claimID,
		patch:         patch,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateClaimCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClaimCommandIsNotConstructed)
}

func (c UpdateClaimCommand) ClientContext() kernel.ClientContext {
	return c.clientContext
}

func (c UpdateClaimCommand) UpdatedBy() kernel.ID {
	return c.updatedBy
}

func (c UpdateClaimCommand) ClaimID() kernel.ID {
	return c.claimID
}

func (c UpdateClaimCommand) Patch() claim.Patch {
	return c.patch
}
