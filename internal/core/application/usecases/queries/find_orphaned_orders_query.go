package queries

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/guard"
)

var ErrFindOrphanedOrdersQueryIsNotConstructed = errors.New(
	"FindOrphanedOrdersQuery must be created via NewFindOrphanedOrdersQuery constructor",
)

// FindOrphanedOrdersQuery lists live orders that have no detail and were
// created before a cutoff. Such orders are left behind when a detail creation
// failed after its order had been stored by an older client.
//
// The tenant variant serves inbound requests; NewFindAllOrphanedOrdersQuery
// spans every tenant and is used by the sweep job and the CLI.
type FindOrphanedOrdersQuery struct {
	clientContext *kernel.ClientContext
	olderThan     time.Time
	page          Page

	guard guard.ConstructorGuard
}

func NewFindOrphanedOrdersQuery(
	cc kernel.ClientContext, olderThan time.Time, page Page,
) (FindOrphanedOrdersQuery, error) {
	if err := errors.Join(cc.Validate(), checkCutoff(olderThan)); err != nil {
		return FindOrphanedOrdersQuery{}, err
	}
	return FindOrphanedOrdersQuery{
		clientContext: &cc,
		olderThan:     olderThan,
		page:          page,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func NewFindAllOrphanedOrdersQuery(olderThan time.Time, page Page) (FindOrphanedOrdersQuery, error) {
	if err := checkCutoff(olderThan); err != nil {
		return FindOrphanedOrdersQuery{}, err
	}
	return FindOrphanedOrdersQuery{
		olderThan: olderThan,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func checkCutoff(olderThan time.Time) error {
	if olderThan.IsZero() {
		return errs.NewValueIsRequiredError("older_than")
	}
	return nil
}

func (q FindOrphanedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFindOrphanedOrdersQueryIsNotConstructed)
}

// ClientContext returns the tenant, or nil for the all-tenants variant.
func (q FindOrphanedOrdersQuery) ClientContext() *kernel.ClientContext {
	return q.clientContext
}

func (q FindOrphanedOrdersQuery) OlderThan() time.Time {
	return q.olderThan
}

func (q FindOrphanedOrdersQuery) Page() Page {
	return q.page
}
