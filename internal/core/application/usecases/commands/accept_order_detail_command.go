package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrAcceptOrderDetailCommandIsNotConstructed = errors.New(
	"AcceptOrderDetailCommand must be created via NewAcceptOrderDetailCommand constructor",
)

// AcceptOrderDetailCommand is sent by a professional taking an open detail.
// Professionals work across tenants, so the command carries no client context;
// the tenant of the detail is used for the relationship check.
type AcceptOrderDetailCommand struct { //nolint:recvcheck //using for validation
	professionalID kernel.ID
	detailID       kernel.ID

	guard guard.ConstructorGuard
}

func NewAcceptOrderDetailCommand(professionalID, detailID kernel.ID) (AcceptOrderDetailCommand, error) {
	if err := errors.Join(
		namedID("professional_id", professionalID),
		namedID("detail_id", detailID),
	); err != nil {
		return AcceptOrderDetailCommand{}, err
	}

	return AcceptOrderDetailCommand{
		professionalID: professionalID,
		detailID:       detailID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderDetailCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderDetailCommandIsNotConstructed)
}

func (c AcceptOrderDetailCommand) ProfessionalID() kernel.ID {
	return c.professionalID
}

func (c AcceptOrderDetailCommand) DetailID() kernel.ID {
	return c.detailID
}
