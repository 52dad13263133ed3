package queries

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"
)

var ErrFindOrderQueryIsNotConstructed = errors.New(
	"FindOrderQuery must be created via NewFindOrderQuery constructor",
)

// FindOrderQuery reads one order of the calling tenant.
//
// Example:
//
//	query, err := NewFindOrderQuery(cc, orderID)
//	if err != nil {
//	    return err
//	}
//	resp, err := NewFindOrderQueryHandler(db).Handle(ctx, query)
type FindOrderQuery struct {
	clientContext kernel.ClientContext
	orderID       kernel.ID

	guard guard.ConstructorGuard
}

func NewFindOrderQuery(cc kernel.ClientContext, orderID kernel.ID) (FindOrderQuery, error) {
	if err := errors.Join(cc.Validate(), checkID("order_id", orderID)); err != nil {
		return FindOrderQuery{}, err
	}
	return FindOrderQuery{clientContext: cc, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q FindOrderQuery) Validate() error {
	return q.guard.Validate(ErrFindOrderQueryIsNotConstructed)
}

func (q FindOrderQuery) ClientContext() kernel.ClientContext {
	return q.clientContext
}

func (q FindOrderQuery) OrderID() kernel.ID {
	return q.orderID
}
