// Package orderrepo maps the order aggregate onto the orders table.
package orderrepo

import (
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID          int64      `gorm:"column:order_id;primaryKey;autoIncrement"`
	ClientID    int64      `gorm:"column:client_fk;not null;index"`
	CompanyID   int64      `gorm:"column:company_fk;not null;index"`
	PatientID   int64      `gorm:"column:patient_fk;not null"`
	TreatmentID int64      `gorm:"column:treatment_fk;not null"`
	Frequency   int        `gorm:"column:frequency;type:smallint;not null"`
	Diagnosis   *string    `gorm:"column:diagnosis"`
	UpdatedBy   int64      `gorm:"column:updated_by;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null"`
	DeletedAt   *time.Time `gorm:"column:deleted_at"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().Int64(),
		ClientID:    o.ClientID().Int64(),
		CompanyID:   o.CompanyID().Int64(),
		PatientID:   o.PatientID().Int64(),
		TreatmentID: o.TreatmentID().Int64(),
		Frequency:   o.Frequency().Int(),
		Diagnosis:   o.Diagnosis(),
		UpdatedBy:   o.UpdatedBy().Int64(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		DeletedAt:   o.DeletedAt(),
	}
}

// ToDomain rebuilds the aggregate from a row. It is exported for the read side,
// which loads rows without going through the repository.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(order.Snapshot{
		ID:          kernel.ID(dto.ID),
		ClientID:    kernel.ID(dto.ClientID),
		CompanyID:   kernel.ID(dto.CompanyID),
		PatientID:   kernel.ID(dto.PatientID),
		TreatmentID: kernel.ID(dto.TreatmentID),
		Frequency:   dto.Frequency,
		Diagnosis:   dto.Diagnosis,
		UpdatedBy:   kernel.ID(dto.UpdatedBy),
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
		DeletedAt:   dto.DeletedAt,
	})
}

// columns returns the values of fields keyed by column name, plus updated_at.
func columns(dto OrderDTO, fields []order.Field) map[string]any {
	values := map[order.Field]any{
		order.FieldCompany:   dto.CompanyID,
		order.FieldPatient:   dto.PatientID,
		order.FieldTreatment: dto.TreatmentID,
		order.FieldFrequency: dto.Frequency,
		order.FieldDiagnosis: dto.Diagnosis,
		order.FieldUpdatedBy: dto.UpdatedBy,
		order.FieldDeletedAt: dto.DeletedAt,
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
