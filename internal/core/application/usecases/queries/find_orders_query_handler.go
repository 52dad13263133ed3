package queries

import (
	"context"

	"gorm.io/gorm"
)

// FindOrdersQueryHandler handles FindOrdersQuery.
type FindOrdersQueryHandler struct {
	db *gorm.DB
}

// NewFindOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewFindOrdersQueryHandler(db *gorm.DB) FindOrdersQueryHandler {
	return FindOrdersQueryHandler{db: db}
}

// Handle applies the criteria first and the tenant predicate last, so no
// criteria value can widen the result to another tenant.
func (h FindOrdersQueryHandler) Handle(ctx context.Context, query FindOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	criteria := query.Criteria()
	tx := h.db.WithContext(ctx).Table(ordersTable)
	if criteria.CompanyID != nil {
		tx = tx.Where("company_fk = ?", criteria.CompanyID.Int64())
	}
	if criteria.PatientID != nil {
		tx = tx.Where("patient_fk = ?", criteria.PatientID.Int64())
	}
	if criteria.TreatmentID != nil {
		tx = tx.Where("treatment_fk = ?", criteria.TreatmentID.Int64())
	}
	if !criteria.IncludeDeleted {
		tx = tx.Where("deleted_at IS NULL")
	}
	tx = tx.Where("client_fk = ?", query.ClientContext().ClientID().Int64())

	orders := make([]OrderResponse, 0)
	if err := query.Page().apply(tx.Order("order_id")).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
