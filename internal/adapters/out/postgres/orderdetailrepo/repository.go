package orderdetailrepo

import (
	"context"
	"errors"
	"slices"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/orderdetail"
	"ordersvc/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderDetailRepository implements ports.OrderDetailRepository using GORM.
type GormOrderDetailRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderDetailRepository creates a new GORM order detail repository.
func NewGormOrderDetailRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderDetailRepository {
	return &GormOrderDetailRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new detail and records the generated identifier on it.
func (r *GormOrderDetailRepository) Add(ctx context.Context, aggregate *orderdetail.OrderDetail) error {
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

// Get loads a detail of the tenant clientID.
func (r *GormOrderDetailRepository) Get(
	ctx context.Context, clientID kernel.ID, detailID kernel.ID,
) (*orderdetail.OrderDetail, error) {
	return r.first(ctx, detailID, "detail_id = ? AND client_fk = ?", detailID.Int64(), clientID.Int64())
}

// GetUnscoped loads a detail regardless of its tenant. Professional-facing
// operations use it; they carry no tenant context.
func (r *GormOrderDetailRepository) GetUnscoped(
	ctx context.Context, detailID kernel.ID,
) (*orderdetail.OrderDetail, error) {
	return r.first(ctx, detailID, "detail_id = ?", detailID.Int64())
}

// Update writes the given fields of an open detail. The guard on finished_at
// makes a concurrent finalize win over a late update. When the professional is
// among the fields the write also requires professional_fk IS NULL, so an
// update races with Accept under the same predicate.
func (r *GormOrderDetailRepository) Update(
	ctx context.Context, aggregate *orderdetail.OrderDetail, fields []orderdetail.Field,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	query := r.db.WithContext(ctx).
		Model(&OrderDetailDTO{}).
		Where("detail_id = ? AND client_fk = ? AND finished_at IS NULL", dto.ID, dto.ClientID)

	assigning := slices.Contains(fields, orderdetail.FieldProfessional)
	if assigning {
		query = query.Where("professional_fk IS NULL")
	}

	result := query.Updates(columns(dto, fields))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if assigning {
			return errs.NewObjectNotFoundErrorWithCause("detail_id", aggregate.ID(), errors.New("already taken or finalized"))
		}
		return errs.NewObjectConflictError("detail_id", aggregate.ID(), "is already finalized")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Accept assigns professionalID to an unassigned open detail. Of two concurrent
// calls only one affects the row; the other gets not found.
func (r *GormOrderDetailRepository) Accept(ctx context.Context, detailID kernel.ID, professionalID kernel.ID) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDetailDTO{}).
		Where("detail_id = ? AND professional_fk IS NULL AND finished_at IS NULL", detailID.Int64()).
		Updates(map[string]any{
			"professional_fk": professionalID.Int64(),
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("detail_id", detailID, errors.New("already taken or finalized"))
	}
	return nil
}

// IncrementSessions adds one session when the detail is open, assigned to
// professionalID and below its total. It reports whether the row changed.
func (r *GormOrderDetailRepository) IncrementSessions(
	ctx context.Context, detailID kernel.ID, professionalID kernel.ID,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&OrderDetailDTO{}).
		Where("detail_id = ? AND professional_fk = ? AND finished_at IS NULL AND sessions < total_sessions",
			detailID.Int64(), professionalID.Int64()).
		Updates(map[string]any{
			"sessions":   gorm.Expr("sessions + 1"),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormOrderDetailRepository) first(
	ctx context.Context, detailID kernel.ID, query string, args ...any,
) (*orderdetail.OrderDetail, error) {
	if err := detailID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("detail_id", err)
	}

	var dto OrderDetailDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("detail_id", detailID)
		}
		return nil, err
	}

	return ToDomain(dto)
}
