package claimrepo

import (
	"context"
	"errors"

	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClaimRepository implements ports.ClaimRepository using GORM.
type GormClaimRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormClaimRepository creates a new GORM claim repository.
func NewGormClaimRepository(db *gorm.DB, tracker aggregateTracker) *GormClaimRepository {
	return &GormClaimRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a claim and records the generated identifier on it.
func (r *GormClaimRepository) Add(ctx context.Context, aggregate *claim.Claim) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads a claim of the tenant clientID, deleted or not.
func (r *GormClaimRepository) Get(ctx context.Context, clientID kernel.ID, claimID kernel.ID) (*claim.Claim, error) {
	if err := claimID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("claim_id", err)
	}

	var dto ClaimDTO
	err := r.db.WithContext(ctx).
		Where("claim_id = ? AND client_fk = ?", claimID.Int64(), clientID.Int64()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("claim_id", claimID)
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Update writes the given fields of a claim that is not deleted.
func (r *GormClaimRepository) Update(ctx context.Context, aggregate *claim.Claim, fields []claim.Field) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ClaimDTO{}).
		Where("claim_id = ? AND client_fk = ? AND deleted_at IS NULL", dto.ID, dto.ClientID).
		Updates(columns(dto, fields))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectConflictError("claim_id", aggregate.ID(), "is already deleted")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
