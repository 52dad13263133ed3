package queries

import (
	"context"
	"errors"

	"ordersvc/internal/pkg/errs"

	"gorm.io/gorm"
)

// FindClaimQueryHandler handles FindClaimQuery.
type FindClaimQueryHandler struct {
	db *gorm.DB
}

// NewFindClaimQueryHandler creates a handler for single claim lookups.
func NewFindClaimQueryHandler(db *gorm.DB) FindClaimQueryHandler {
	return FindClaimQueryHandler{db: db}
}

func (h FindClaimQueryHandler) Handle(ctx context.Context, query FindClaimQuery) (ClaimResponse, error) {
	if err := query.Validate(); err != nil {
		return ClaimResponse{}, err
	}

	var resp ClaimResponse
	err := h.db.WithContext(ctx).
		Table(claimsTable).
		Where("claim_id = ? AND deleted_at IS NULL", query.ClaimID().Int64()).
		Where("client_fk = ?", query.ClientContext().ClientID().Int64()).
		Take(&resp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ClaimResponse{}, errs.NewObjectNotFoundError("claim_id", query.ClaimID())
	}
	if err != nil {
		return ClaimResponse{}, err
	}
	return resp, nil
}

// FindClaimsQueryHandler handles FindClaimsQuery.
type FindClaimsQueryHandler struct {
	db *gorm.DB
}

// NewFindClaimsQueryHandler creates a handler for claim listings.
// Requires a GORM database connection for query execution.
func NewFindClaimsQueryHandler(db *gorm.DB) FindClaimsQueryHandler {
	return FindClaimsQueryHandler{db: db}
}

func (h FindClaimsQueryHandler) Handle(ctx context.Context, query FindClaimsQuery) ([]ClaimResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	criteria := query.Criteria()
	tx := h.db.WithContext(ctx).Table(claimsTable)
	if criteria.DetailID != nil {
		tx = tx.Where("detail_fk = ?", criteria.DetailID.Int64())
	}
	if !criteria.IncludeDeleted {
		tx = tx.Where("deleted_at IS NULL")
	}
	tx = tx.Where("client_fk = ?", query.ClientContext().ClientID().Int64())

	claims := make([]ClaimResponse, 0)
	if err := query.Page().apply(tx.Order("claim_id")).Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}
