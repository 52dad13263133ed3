package queries

import (
	"context"
	"errors"

	"ordersvc/internal/pkg/errs"

	"gorm.io/gorm"
)

// FindOrderQueryHandler returns a single order of the tenant. Soft-deleted
// orders are reported as missing.
type FindOrderQueryHandler struct {
	db *gorm.DB
}

// NewFindOrderQueryHandler creates a handler for single order lookups.
func NewFindOrderQueryHandler(db *gorm.DB) FindOrderQueryHandler {
	return FindOrderQueryHandler{db: db}
}

func (h FindOrderQueryHandler) Handle(ctx context.Context, query FindOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	err := h.db.WithContext(ctx).
		Table(ordersTable).
		Where("order_id = ? AND deleted_at IS NULL", query.OrderID().Int64()).
		Where("client_fk = ?", query.ClientContext().ClientID().Int64()).
		Take(&resp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}
	return resp, nil
}
