package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrAddSessionCommandIsNotConstructed = errors.New(
	"AddSessionCommand must be created via NewAddSessionCommand constructor",
)

// AddSessionCommand records one performed session of a detail.
type AddSessionCommand struct { //nolint:recvcheck //using for validation
	detailID       kernel.ID
	professionalID kernel.ID

	guard guard.ConstructorGuard
}

func NewAddSessionCommand(detailID, professionalID kernel.ID) (AddSessionCommand, error) {
	if err := errors.Join(
		namedID("detail_id", detailID),
		namedID("professional_id", professionalID),
	); err != nil {
		return AddSessionCommand{}, err
	}

	return AddSessionCommand{
		detailID:       detailID,
		professionalID: professionalID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AddSessionCommand) Validate() error {
	return c.guard.Validate(ErrAddSessionCommandIsNotConstructed)
}

func (c AddSessionCommand) DetailID() kernel.ID {
	return c.detailID
}

func (c AddSessionCommand) ProfessionalID() kernel.ID {
	return c.professionalID
}
