// Package claimrepo maps the claim aggregate onto the claims table.
package claimrepo

import (
	"time"

	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/kernel"
)

type ClaimDTO struct {
	ID           int64      `gorm:"column:claim_id;primaryKey;autoIncrement"`
	ClientID     int64      `gorm:"column:client_fk;not null;index"`
	DetailID     int64      `gorm:"column:detail_fk;not null;index"`
	Cause        string     `gorm:"column:cause;not null"`
	Urgency      string     `gorm:"column:urgency;type:varchar(16);not null"`
	ReportedDate time.Time  `gorm:"column:reported_date;not null"`
	UpdatedBy    int64      `gorm:"column:updated_by;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;not null"`
	DeletedAt    *time.Time `gorm:"column:deleted_at"`
}

func (ClaimDTO) TableName() string {
	return "claims"
}

func fromDomain(c *claim.Claim) ClaimDTO {
	return ClaimDTO{
		ID:           c.ID().Int64(),
		ClientID:     c.ClientID().Int64(),
		DetailID:     c.DetailID().Int64(),
		Cause:        c.Cause(),
		Urgency:      c.Urgency().String(),
		ReportedDate: c.ReportedDate(),
		UpdatedBy:    c.UpdatedBy().Int64(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
		DeletedAt:    c.DeletedAt(),
	}
}

func ToDomain(dto ClaimDTO) (*claim.Claim, error) {
	return claim.RestoreClaim(claim.Snapshot{
		ID:           kernel.ID(dto.ID),
		ClientID:     kernel.ID(dto.ClientID),
		DetailID:     kernel.ID(dto.DetailID),
		Cause:        dto.Cause,
		Urgency:      claim.Urgency(dto.Urgency),
		ReportedDate: dto.ReportedDate,
		UpdatedBy:    kernel.ID(dto.UpdatedBy),
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
		DeletedAt:    dto.DeletedAt,
	})
}

func columns(dto ClaimDTO, fields []claim.Field) map[string]any {
	values := map[claim.Field]any{
		claim.FieldDetail:       dto.DetailID,
		claim.FieldCause:        dto.Cause,
		claim.FieldUrgency:      dto.Urgency,
		claim.FieldReportedDate: dto.ReportedDate,
		claim.FieldUpdatedBy:    dto.UpdatedBy,
		claim.FieldDeletedAt:    dto.DeletedAt,
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
