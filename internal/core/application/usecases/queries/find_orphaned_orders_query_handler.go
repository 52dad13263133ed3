package queries

import (
	"context"

	"gorm.io/gorm"
)

// FindOrphanedOrdersQueryHandler handles FindOrphanedOrdersQuery.
type FindOrphanedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewFindOrphanedOrdersQueryHandler creates a handler for orders that never got a detail.
// Requires a GORM database connection for query execution.
func NewFindOrphanedOrdersQueryHandler(db *gorm.DB) FindOrphanedOrdersQueryHandler {
	return FindOrphanedOrdersQueryHandler{db: db}
}

func (h FindOrphanedOrdersQueryHandler) Handle(
	ctx context.Context, query FindOrphanedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table(ordersTable).
		Where("deleted_at IS NULL AND created_at < ?", query.OlderThan().UTC()).
		Where("NOT EXISTS (SELECT 1 FROM order_details d WHERE d.order_fk = orders.order_id)")
	if cc := query.ClientContext(); cc != nil {
		tx = tx.Where("client_fk = ?", cc.ClientID().Int64())
	}

	orders := make([]OrderResponse, 0)
	if err := query.Page().apply(tx.Order("order_id")).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
