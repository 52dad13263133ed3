package queries

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrFindOrdersQueryIsNotConstructed = errors.New(
	"FindOrdersQuery must be created via NewFindOrdersQuery constructor",
)

// OrderCriteria narrows FindOrdersQuery. Only these predicates can be
// expressed; the tenant is never part of the criteria.
type OrderCriteria struct {
	CompanyID      *kernel.ID
	PatientID      *kernel.ID
	TreatmentID    *kernel.ID
	IncludeDeleted bool
}

// FindOrdersQuery lists the orders of the calling tenant, oldest first.
type FindOrdersQuery struct {
	clientContext kernel.ClientContext
	criteria      OrderCriteria
	page          Page

	guard guard.ConstructorGuard
}

func NewFindOrdersQuery(cc kernel.ClientContext, criteria OrderCriteria, page Page) (FindOrdersQuery, error) {
	if err := errors.Join(
		cc.Validate(),
		optionalID("company_fk", criteria.CompanyID),
		optionalID("patient_fk", criteria.PatientID),
		optionalID("treatment_fk", criteria.TreatmentID),
	); err != nil {
		return FindOrdersQuery{}, err
	}

	return FindOrdersQuery{
		clientContext: cc,
		criteria:      criteria,
		page:          page,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q FindOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFindOrdersQueryIsNotConstructed)
}

func (q FindOrdersQuery) ClientContext() kernel.ClientContext {
	return q.clientContext
}

func (q FindOrdersQuery) Criteria() OrderCriteria {
	return q.criteria
}

func (q FindOrdersQuery) Page() Page {
	return q.page
}
