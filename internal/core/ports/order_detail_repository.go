package ports

import (
	"context"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/orderdetail"
)

// OrderDetailRepository defines the persistence contract for order details.
type OrderDetailRepository interface {
	// Add persists a new detail and assigns the identifier generated by storage.
	Add(ctx context.Context, aggregate *orderdetail.OrderDetail) error

	// Get retrieves a detail of the tenant clientID.
	Get(ctx context.Context, clientID kernel.ID, detailID kernel.ID) (*orderdetail.OrderDetail, error)

	// GetUnscoped retrieves a detail by identifier only. Professionals address
	// details across tenants, so acceptance and session tracking are not
	// tenant-scoped.
	GetUnscoped(ctx context.Context, detailID kernel.ID) (*orderdetail.OrderDetail, error)

	// Update persists only the given fields of a detail that is not finalized.
	// The write is conditional on finished_at IS NULL; no matching row yields
	// errs.ObjectConflictError.
	Update(ctx context.Context, aggregate *orderdetail.OrderDetail, fields []orderdetail.Field) error

	// Accept assigns professionalID with one conditional write guarded by
	// professional_fk IS NULL AND finished_at IS NULL. When the guard does not
	// match, the losing side of a race, it returns errs.ObjectNotFoundError.
	Accept(ctx context.Context, detailID kernel.ID, professionalID kernel.ID) error

	// IncrementSessions adds one session with one conditional write guarded by
	// the professional, finished_at IS NULL and sessions < total_sessions.
	// It reports whether a row was updated.
	IncrementSessions(ctx context.Context, detailID kernel.ID, professionalID kernel.ID) (bool, error)
}
