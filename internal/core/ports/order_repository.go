// Package ports defines the contracts between the application core and its
// adapters: repositories per aggregate, the unit of work, and the clients of
// the authorities living in other services.
package ports

import (
	"context"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read is scoped by the tenant passed explicitly; an order owned by
// another tenant is reported as not found.
type OrderRepository interface {
	// Add persists a new order and assigns the identifier generated by storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order of the tenant clientID, deleted or not.
	// Returns errs.ObjectNotFoundError when absent or foreign.
	Get(ctx context.Context, clientID kernel.ID, orderID kernel.ID) (*order.Order, error)

	// Update persists only the given fields of an order that is not deleted.
	// The write is conditional on deleted_at IS NULL; when no row matches (the
	// order was deleted concurrently) it returns errs.ObjectConflictError.
	Update(ctx context.Context, aggregate *order.Order, fields []order.Field) error
}
