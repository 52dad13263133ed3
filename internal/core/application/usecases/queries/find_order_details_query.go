package queries

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrFindOrderDetailsQueryIsNotConstructed = errors.New(
	"FindOrderDetailsQuery must be created via NewFindOrderDetailsQuery constructor",
)

type OrderDetailCriteria struct {
	OrderID        *kernel.ID
	ProfessionalID *kernel.ID
}

// FindOrderDetailsQuery lists the unfinished details of the calling tenant.
type FindOrderDetailsQuery struct {
	clientContext kernel.ClientContext
	criteria      OrderDetailCriteria
	page          Page

	guard guard.ConstructorGuard
}

func NewFindOrderDetailsQuery(
	cc kernel.ClientContext, criteria OrderDetailCriteria, page Page,
) (FindOrderDetailsQuery, error) {
	if err := errors.Join(
		cc.Validate(),
		optionalID("order_fk", criteria.OrderID),
		optionalID("professional_fk", criteria.ProfessionalID),
	); err != nil {
		return FindOrderDetailsQuery{}, err
	}

	return FindOrderDetailsQuery{
		clientContext: cc,
		criteria:      criteria,
		page:          page,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q FindOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderDetailsQueryIsNotConstructed)
}

func (q FindOrderDetailsQuery) ClientContext() kernel.ClientContext {
	return q.clientContext
}

func (q FindOrderDetailsQuery) Criteria() OrderDetailCriteria {
	return q.criteria
}

func (q FindOrderDetailsQuery) Page() Page {
	return q.page
}
