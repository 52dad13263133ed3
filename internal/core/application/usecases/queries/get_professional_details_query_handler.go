package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProfessionalDetailsQueryHandler handles GetProfessionalDetailsQuery.
type GetProfessionalDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetProfessionalDetailsQueryHandler creates a handler for a professional's open details.
// Requires a GORM database connection for query execution.
func NewGetProfessionalDetailsQueryHandler(db *gorm.DB) GetProfessionalDetailsQueryHandler {
	return GetProfessionalDetailsQueryHandler{db: db}
}

func (h GetProfessionalDetailsQueryHandler) Handle(
	ctx context.Context, query GetProfessionalDetailsQuery,
) ([]OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table(orderDetailsTable).
		Where("professional_fk = ? AND finished_at IS NULL", query.ProfessionalID().Int64())
	return findDetails(tx, query.Page())
}

// GetProfessionalDetailQueryHandler handles GetProfessionalDetailQuery.
type GetProfessionalDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetProfessionalDetailQueryHandler creates a handler for one open detail of a professional.
// Requires a GORM database connection for query execution.
func NewGetProfessionalDetailQueryHandler(db *gorm.DB) GetProfessionalDetailQueryHandler {
	return GetProfessionalDetailQueryHandler{db: db}
}

func (h GetProfessionalDetailQueryHandler) Handle(
	ctx context.Context, query GetProfessionalDetailQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	tx := h.db.WithContext(ctx).
		Table(orderDetailsTable).
		Where("detail_id = ? AND professional_fk = ? AND finished_at IS NULL",
			query.DetailID().Int64(), query.ProfessionalID().Int64())
	return takeDetail(tx, query.DetailID())
}
