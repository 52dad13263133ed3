package queries

import (
	"context"

	"gorm.io/gorm"
)

// FindOrderDetailQueryHandler handles FindOrderDetailQuery.
type FindOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewFindOrderDetailQueryHandler creates a handler for single detail lookups.
func NewFindOrderDetailQueryHandler(db *gorm.DB) FindOrderDetailQueryHandler {
	return FindOrderDetailQueryHandler{db: db}
}

func (h FindOrderDetailQueryHandler) Handle(
	ctx context.Context, query FindOrderDetailQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	tx := h.db.WithContext(ctx).
		Table(orderDetailsTable).
		Where("detail_id = ?", query.DetailID().Int64()).
		Where("client_fk = ?", query.ClientContext().ClientID().Int64())
	return takeDetail(tx, query.DetailID())
}
