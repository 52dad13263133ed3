package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrDeleteClaimCommandIsNotConstructed = errors.New(
	"DeleteClaimCommand must be created via NewDeleteClaimCommand constructor",
)

type DeleteClaimCommand struct { //nolint:recvcheck //using for validation
	clientContext kernel.ClientContext
	updatedBy     kernel.ID
	claimID       kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteClaimCommand(cc kernel.ClientContext, updatedBy, claimID kernel.ID) (DeleteClaimCommand, error) {
	if err := errors.Join(
		cc.Validate(),
		namedID("updated_by", updatedBy),
		namedID("claim_id", claimID),
	); err != nil {
		return DeleteClaimCommand{}, err
	}

	return DeleteClaimCommand{
		clientContext: cc,
		updatedBy:     updatedBy,
		claimID:       claimID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteClaimCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClaimCommandIsNotConstructed)
}

func (c DeleteClaimCommand) ClientContext() kernel.ClientContext {
	return c.clientContext
}

func (c DeleteClaimCommand) UpdatedBy() kernel.ID {
	return c.updatedBy
}

func (c DeleteClaimCommand) ClaimID() kernel.ID {
	return c.claimID
}
