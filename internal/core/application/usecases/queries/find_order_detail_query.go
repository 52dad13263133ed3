package queries

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrFindOrderDetailQueryIsNotConstructed = errors.New(
	"FindOrderDetailQuery must be created via NewFindOrderDetailQuery constructor",
)

// FindOrderDetailQuery reads one detail of the calling tenant, finalized or not.
type FindOrderDetailQuery struct {
	clientContext kernel.ClientContext
	detailID      kernel.ID

	guard guard.ConstructorGuard
}

func NewFindOrderDetailQuery(cc kernel.ClientContext, detailID kernel.ID) (FindOrderDetailQuery, error) {
	if err := errors.Join(cc.Validate(), checkID("detail_id", detailID)); err != nil {
		return FindOrderDetailQuery{}, err
	}
	return FindOrderDetailQuery{clientContext: cc, detailID: detailID, guard: guard.NewConstructorGuard()}, nil
}

func (q FindOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderDetailQueryIsNotConstructed)
}

func (q FindOrderDetailQuery) ClientContext() kernel.ClientContext {
	return q.clientContext
}

func (q FindOrderDetailQuery) DetailID() kernel.ID {
	return q.detailID
}
