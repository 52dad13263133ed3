package queries

import (
	"context"

	"ordersvc/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// RelationshipValidator confirms that a professional works for a tenant.
type RelationshipValidator interface {
	ValidateProfessionalRelationship(ctx context.Context, clientID, professionalID kernel.ID) error
}

// FindPendingOrderDetailsQueryHandler confirms the professional belongs to the
// tenant before listing anything. A failed confirmation returns no rows.
type FindPendingOrderDetailsQueryHandler struct {
	db        *gorm.DB
	validator RelationshipValidator
}

// NewFindPendingOrderDetailsQueryHandler creates a handler for details waiting for a professional.
// Requires a GORM database connection for query execution.
func NewFindPendingOrderDetailsQueryHandler(
	db *gorm.DB, validator RelationshipValidator,
) FindPendingOrderDetailsQueryHandler {
	return FindPendingOrderDetailsQueryHandler{db: db, validator: validator}
}

func (h FindPendingOrderDetailsQueryHandler) Handle(
	ctx context.Context, query FindPendingOrderDetailsQuery,
) ([]OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.validator.ValidateProfessionalRelationship(ctx, query.ClientID(), query.ProfessionalID()); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table(orderDetailsTable).
		Where("professional_fk IS NULL AND finished_at IS NULL").
		Where("client_fk = ?", query.ClientID().Int64())
	return findDetails(tx, query.Page())
}
