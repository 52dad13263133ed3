package commands

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrCreateClaimCommandIsNotConstructed = errors.New(
	"CreateClaimCommand must be created via NewCreateClaimCommand constructor",
)

// CreateClaimCommand reports an incident against a detail of the tenant.
type CreateClaimCommand struct { //nolint:recvcheck //using for validation
	clientContext kernel.ClientContext
	updatedBy     kernel.ID
	detailID      kernel.ID
	cause         string
	urgency       claim.Urgency
	reportedDate  time.Time

	guard guard.ConstructorGuard
}

func NewCreateClaimCommand(
	cc kernel.ClientContext,
	updatedBy kernel.ID,
	detailID kernel.ID,
	cause string,
	urgency claim.Urgency,
	reportedDate time.Time,
) (CreateClaimCommand, error) {
	if err := errors.Join(
		cc.Validate(),
		namedID("updated_by", updatedBy),
		namedID("detail_fk", detailID),
		urgency.Validate(),
	); err != nil {
		return CreateClaimCommand{}, err
	}

	return CreateClaimCommand{
		clientContext: cc,
		updatedBy:     updatedBy,
		detailID:      detailID,
		cause:         cause,
		urgency:       urgency,
		reportedDate:  reportedDate,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateClaimCommand) Validate() error {
	return c.guard.Validate(ErrCreateClaimCommandIsNotConstructed)
}

func (c CreateClaimCommand) ClientContext() kernel.ClientContext {
	return c.clientContext
}

func (c CreateClaimCommand) UpdatedBy() kernel.ID {
	return c.updatedBy
}

func (c CreateClaimCommand) DetailID() kernel.ID {
	return c.detailID
}

func (c CreateClaimCommand) Cause() string {
	return c.cause
}

func (c CreateClaimCommand) Urgency() claim.Urgency {
	return c.urgency
}

func (c CreateClaimCommand) ReportedDate() time.Time {
	return c.reportedDate
}
