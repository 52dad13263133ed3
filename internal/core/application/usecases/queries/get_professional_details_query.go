package queries

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var (
	ErrGetProfessionalDetailsQueryIsNotConstructed = errors.New(
		"GetProfessionalDetailsQuery must be created via NewGetProfessionalDetailsQuery constructor",
	)
	ErrGetProfessionalDetailQueryIsNotConstructed = errors.New(
		"GetProfessionalDetailQuery must be created via NewGetProfessionalDetailQuery constructor",
	)
)

// GetProfessionalDetailsQuery lists the unfinished details assigned to a
// professional across tenants. It backs the professional's work list.
type GetProfessionalDetailsQuery struct {
	professionalID kernel.ID
	page           Page

	guard guard.ConstructorGuard
}

func NewGetProfessionalDetailsQuery(professionalID kernel.ID, page Page) (GetProfessionalDetailsQuery, error) {
	if err := checkID("professional_id", professionalID); err != nil {
		return GetProfessionalDetailsQuery{}, err
	}
	return GetProfessionalDetailsQuery{
		professionalID: professionalID,
		page:           page,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetProfessionalDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetProfessionalDetailsQueryIsNotConstructed)
}

func (q GetProfessionalDetailsQuery) ProfessionalID() kernel.ID {
	return q.professionalID
}

func (q GetProfessionalDetailsQuery) Page() Page {
	return q.page
}

// GetProfessionalDetailQuery reads one unfinished detail assigned to a
// professional.
type GetProfessionalDetailQuery struct {
	detailID       kernel.ID
	professionalID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetProfessionalDetailQuery(detailID, professionalID kernel.ID) (GetProfessionalDetailQuery, error) {
	if err := errors.Join(
		checkID("detail_id", detailID),
		checkID("professional_id", professionalID),
	); err != nil {
		return GetProfessionalDetailQuery{}, err
	}
	return GetProfessionalDetailQuery{
		detailID:       detailID,
		professionalID: professionalID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetProfessionalDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetProfessionalDetailQueryIsNotConstructed)
}

func (q GetProfessionalDetailQuery) DetailID() kernel.ID {
	return q.detailID
}

func (q GetProfessionalDetailQuery) ProfessionalID() kernel.ID {
	return q.professionalID
}
