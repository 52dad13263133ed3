// Package orderdetailrepo maps the order detail aggregate onto the
// order_details table and implements the conditional writes used for
// acceptance and session tracking.
package orderdetailrepo

import (
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/orderdetail"
)

// OrderDetailDTO is the row of the order_details table.
type OrderDetailDTO struct {
	ID             int64      `gorm:"column:detail_id;primaryKey;autoIncrement"`
	ClientID       int64      `gorm:"column:client_fk;not null;index"`
	OrderID        int64      `gorm:"column:order_fk;not null;index"`
	ProfessionalID *int64     `gorm:"column:professional_fk;index"`
	StartDate      time.Time  `gorm:"column:start_date;not null"`
	FinishDate     time.Time  `gorm:"column:finish_date;not null"`
	TotalSessions  int        `gorm:"column:total_sessions;not null;default:0"`
	Sessions       int        `gorm:"column:sessions;not null;default:0"`
	Coinsurance    float64    `gorm:"column:coinsurance;type:numeric(12,2);not null;default:0"`
	Value          float64    `gorm:"column:value;type:numeric(12,2);not null;default:0"`
	Cost           float64    `gorm:"column:cost;type:numeric(12,2);not null;default:0"`
	StartedAt      *time.Time `gorm:"column:started_at"`
	FinishedAt     *time.Time `gorm:"column:finished_at"`
	Requirements   *string    `gorm:"column:requirements"`
	UpdatedBy      int64      `gorm:"column:updated_by;not null"`
	CreatedAt      time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;not null"`
}

func (OrderDetailDTO) TableName() string {
	return "order_details"
}

func fromDomain(d *orderdetail.OrderDetail) OrderDetailDTO {
	var professionalID *int64
	if id := d.ProfessionalID(); id != nil {
		raw := id.Int64()
		professionalID = &raw
	}

	return OrderDetailDTO{
		ID:             d.ID().Int64(),
		ClientID:       d.ClientID().Int64(),
		OrderID:        d.OrderID().Int64(),
		ProfessionalID: professionalID,
		StartDate:      d.StartDate(),
		FinishDate:     d.FinishDate(),
		TotalSessions:  d.TotalSessions(),
		Sessions:       d.Sessions(),
		Coinsurance:    d.Coinsurance().Float64(),
		Value:          d.Value().Float64(),
		Cost:           d.Cost().Float64(),
		StartedAt:      d.StartedAt(),
		FinishedAt:     d.FinishedAt(),
		Requirements:   d.Requirements(),
		UpdatedBy:      d.UpdatedBy().Int64(),
		CreatedAt:      d.CreatedAt(),
		UpdatedAt:      d.UpdatedAt(),
	}
}

// ToDomain rebuilds the aggregate from a row.
func ToDomain(dto OrderDetailDTO) (*orderdetail.OrderDetail, error) {
	var professionalID *kernel.ID
	if dto.ProfessionalID != nil {
		professionalID = kernel.ID(*dto.ProfessionalID).Ptr()
	}

	return orderdetail.RestoreOrderDetail(orderdetail.Snapshot{
		ID:             kernel.ID(dto.ID),
		ClientID:       kernel.ID(dto.ClientID),
		OrderID:        kernel.ID(dto.OrderID),
		ProfessionalID: professionalID,
		StartDate:      dto.StartDate,
		FinishDate:     dto.FinishDate,
		TotalSessions:  dto.TotalSessions,
		Sessions:       dto.Sessions,
		Coinsurance:    kernel.Amount(dto.Coinsurance),
		Value:          kernel.Amount(dto.Value),
		Cost:           kernel.Amount(dto.Cost),
		StartedAt:      dto.StartedAt,
		FinishedAt:     dto.FinishedAt,
		Requirements:   dto.Requirements,
		UpdatedBy:      kernel.ID(dto.UpdatedBy),
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	})
}

func columns(dto OrderDetailDTO, fields []orderdetail.Field) map[string]any {
	values := map[orderdetail.Field]any{
		orderdetail.FieldProfessional:  dto.ProfessionalID,
		orderdetail.FieldStartDate:     dto.StartDate,
		orderdetail.FieldFinishDate:    dto.FinishDate,
		orderdetail.FieldTotalSessions: dto.TotalSessions,
		orderdetail.FieldSessions:      dto.Sessions,
		orderdetail.FieldCoinsurance:   dto.Coinsurance,
		orderdetail.FieldValue:         dto.Value,
		orderdetail.FieldCost:          dto.Cost,
		orderdetail.FieldStartedAt:     dto.StartedAt,
		orderdetail.FieldFinishedAt:    dto.FinishedAt,
		orderdetail.FieldRequirements:  dto.Requirements,
		orderdetail.FieldUpdatedBy:     dto.UpdatedBy,
	}

	updates := make(map[string]any, len(fields)+1)
	for _, f := range fields {
		if v, ok := values[f]; ok {
			updates[string(f)] = v
		}
	}
	updates["updated_at"] = dto.UpdatedAt
	return updates
}
