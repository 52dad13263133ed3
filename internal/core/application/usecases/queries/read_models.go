package queries

import (
	"time"

	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/orderdetail"
)

const (
	ordersTable       = "orders"
	orderDetailsTable = "order_details"
	claimsTable       = "claims"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	OrderID     int64      `gorm:"column:order_id"     json:"order_id"`
	ClientID    int64      `gorm:"column:client_fk"    json:"client_fk"`
	CompanyID   int64      `gorm:"column:company_fk"   json:"company_fk"`
	PatientID   int64      `gorm:"column:patient_fk"   json:"patient_fk"`
	TreatmentID int64      `gorm:"column:treatment_fk" json:"treatment_fk"`
	Frequency   int        `gorm:"column:frequency"    json:"frequency"`
	Diagnosis   *string    `gorm:"column:diagnosis"    json:"diagnosis"`
	UpdatedBy   int64      `gorm:"column:updated_by"   json:"updated_by"`
	CreatedAt   time.Time  `gorm:"column:created_at"   json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"   json:"updated_at"`
	DeletedAt   *time.Time `gorm:"column:deleted_at"   json:"deleted_at"`
}

// OrderDetailResponse is the read model of an order detail.
type OrderDetailResponse struct {
	DetailID       int64      `gorm:"column:detail_id"       json:"detail_id"`
	ClientID       int64      `gorm:"column:client_fk"       json:"client_fk"`
	OrderID        int64      `gorm:"column:order_fk"        json:"order_fk"`
	ProfessionalID *int64     `gorm:"column:professional_fk" json:"professional_fk"`
	StartDate      time.Time  `gorm:"column:start_date"      json:"start_date"`
	FinishDate     time.Time  `gorm:"column:finish_date"     json:"finish_date"`
	TotalSessions  int        `gorm:"column:total_sessions"  json:"total_sessions"`
	Sessions       int        `gorm:"column:sessions"        json:"sessions"`
	Coinsurance    float64    `gorm:"column:coinsurance"     json:"coinsurance"`
	Value          float64    `gorm:"column:value"           json:"value"`
	Cost           float64    `gorm:"column:cost"            json:"cost"`
	StartedAt      *time.Time `gorm:"column:started_at"      json:"started_at"`
	FinishedAt     *time.Time `gorm:"column:finished_at"     json:"finished_at"`
	Requirements   *string    `gorm:"column:requirements"    json:"requirements"`
	UpdatedBy      int64      `gorm:"column:updated_by"      json:"updated_by"`
	CreatedAt      time.Time  `gorm:"column:created_at"      json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"      json:"updated_at"`
}

// ClaimResponse is the read model of a claim.
type ClaimResponse struct {
	ClaimID      int64      `gorm:"column:claim_id"      json:"claim_id"`
	ClientID     int64      `gorm:"column:client_fk"     json:"client_fk"`
	DetailID     int64      `gorm:"column:detail_fk"     json:"detail_fk"`
	Cause        string     `gorm:"column:cause"         json:"cause"`
	Urgency      string     `gorm:"column:urgency"       json:"urgency"`
	ReportedDate time.Time  `gorm:"column:reported_date" json:"reported_date"`
	UpdatedBy    int64      `gorm:"column:updated_by"    json:"updated_by"`
	CreatedAt    time.Time  `gorm:"column:created_at"    json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"    json:"updated_at"`
	DeletedAt    *time.Time `gorm:"column:deleted_at"    json:"deleted_at"`
}

// NewOrderResponse renders an aggregate returned by a command.
func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.ID().Int64(),
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

// CreatedOrderResponse is the answer to order creation. OrderDetail is set when
// the first detail was created in the same transaction.
type CreatedOrderResponse struct {
	OrderResponse
	OrderDetail *OrderDetailResponse `json:"order_detail,omitempty"`
}

func NewCreatedOrderResponse(o *order.Order, d *orderdetail.OrderDetail) CreatedOrderResponse {
	res := CreatedOrderResponse{OrderResponse: NewOrderResponse(o)}
	if d != nil {
		detail := NewOrderDetailResponse(d)
		res.OrderDetail = &detail
	}
	return res
}

func NewOrderDetailResponse(d *orderdetail.OrderDetail) OrderDetailResponse {
	var professionalID *int64
	if id := d.ProfessionalID(); id != nil {
		raw := id.Int64()
		professionalID = &raw
	}

	return OrderDetailResponse{
		DetailID:       d.ID().Int64(),
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

func NewClaimResponse(c *claim.Claim) ClaimResponse {
	return ClaimResponse{
		ClaimID:      c.ID().Int64(),
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
