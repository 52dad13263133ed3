package queries

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var (
	ErrFindClaimQueryIsNotConstructed = errors.New(
		"FindClaimQuery must be created via NewFindClaimQuery constructor",
	)
	ErrFindClaimsQueryIsNotConstructed = errors.New(
		"FindClaimsQuery must be created via NewFindClaimsQuery constructor",
	)
)

type FindClaimQuery struct {
	clientContext kernel.ClientContext
	claimID       kernel.ID

	guard guard.ConstructorGuard
}

func NewFindClaimQuery(cc kernel.ClientContext, claimID kernel.ID) (FindClaimQuery, error) {
	if err := errors.Join(cc.Validate(), checkID("claim_id", claimID)); err != nil {
		return FindClaimQuery{}, err
	}
	return FindClaimQuery{clientContext: cc, claimID: claimID, guard: guard.NewConstructorGuard()}, nil
}

func (q FindClaimQuery) Validate() error {
	return q.guard.Validate(ErrFindClaimQueryIsNotConstructed)
}

func (q FindClaimQuery) ClientContext() kernel.ClientContext {
	return q.clientContext
}

func (q FindClaimQuery) ClaimID() kernel.ID {
	return q.claimID
}

type ClaimCriteria struct {
	DetailID       *kernel.ID
	IncludeDeleted bool
}

// FindClaimsQuery lists the claims of the calling tenant. Deleted claims are
// hidden unless the criteria ask for them.
type FindClaimsQuery struct {
	clientContext kernel.ClientContext
	criteria      ClaimCriteria
	page          Page

	guard guard.ConstructorGuard
}

func NewFindClaimsQuery(cc kernel.ClientContext, criteria ClaimCriteria, page Page) (FindClaimsQuery, error) {
	if err := errors.Join(cc.Validate(), optionalID("detail_fk", criteria.DetailID)); err != nil {
		return FindClaimsQuery{}, err
	}
	return FindClaimsQuery{
		clientContext: cc,
		criteria:      criteria,
		page:          page,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q FindClaimsQuery) Validate() error {
	return q.guard.Validate(ErrFindClaimsQueryIsNotConstructed)
}

func (q FindClaimsQuery) ClientContext() kernel.ClientContext {
	return q.clientContext
}

func (q FindClaimsQuery) Criteria() ClaimCriteria {
	return q.criteria
}

func (q FindClaimsQuery) Page() Page {
	return q.page
}
