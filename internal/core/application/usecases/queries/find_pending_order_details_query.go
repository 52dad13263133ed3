package queries

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrFindPendingOrderDetailsQueryIsNotConstructed = errors.New(
	"FindPendingOrderDetailsQuery must be created via NewFindPendingOrderDetailsQuery constructor",
)

// FindPendingOrderDetailsQuery lists the details of a tenant that no
// professional has accepted yet, as seen by a professional of that tenant.
type FindPendingOrderDetailsQuery struct {
	clientID       kernel.ID
	professionalID kernel.ID
	page           Page

	guard guard.ConstructorGuard
}

func NewFindPendingOrderDetailsQuery(
	clientID, professionalID kernel.ID, page Page,
) (FindPendingOrderDetailsQuery, error) {
	if err := errors.Join(
		checkID("client_fk", clientID),
		checkID("professional_id", professionalID),
	); err != nil {
		return FindPendingOrderDetailsQuery{}, err
	}
	return FindPendingOrderDetailsQuery{
		clientID:       clientID,
		professionalID: professionalID,
		page:           page,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q FindPendingOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrFindPendingOrderDetailsQueryIsNotConstructed)
}

func (q FindPendingOrderDetailsQuery) ClientID() kernel.ID {
	return q.clientID
}

func (q FindPendingOrderDetailsQuery) ProfessionalID() kernel.ID {
	return q.professionalID
}

func (q FindPendingOrderDetailsQuery) Page() Page {
	return q.page
}
