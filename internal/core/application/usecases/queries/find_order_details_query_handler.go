package queries

import (
	"context"

	"gorm.io/gorm"
)

// FindOrderDetailsQueryHandler handles FindOrderDetailsQuery.
type FindOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewFindOrderDetailsQueryHandler creates a handler for open detail listings.
// Requires a GORM database connection for query execution.
func NewFindOrderDetailsQueryHandler(db *gorm.DB) FindOrderDetailsQueryHandler {
	return FindOrderDetailsQueryHandler{db: db}
}

func (h FindOrderDetailsQueryHandler) Handle(
	ctx context.Context, query FindOrderDetailsQuery,
) ([]OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	criteria := query.Criteria()
	tx := h.db.WithContext(ctx).Table(orderDetailsTable).Where("finished_at IS NULL")
	if criteria.OrderID != nil {
		tx = tx.Where("order_fk = ?", criteria.OrderID.Int64())
	}
	if criteria.ProfessionalID != nil {
		tx = tx.Where("professional_fk = ?", criteria.ProfessionalID.Int64())
	}
	tx = tx.Where("client_fk = ?", query.ClientContext().ClientID().Int64())

	return findDetails(tx, query.Page())
}
