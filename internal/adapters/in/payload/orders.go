package payload

import (
	"errors"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
)

type CreateOrderDto struct {
	UpdatedBy   int64   `json:"updated_by"`
	CompanyID   int64   `json:"company_fk"`
	PatientID   int64   `json:"patient_fk"`
	TreatmentID int64   `json:"treatment_fk"`
	Frequency   int     `json:"frequency"`
	Diagnosis   *string `json:"diagnosis,omitempty"`

	// OrderDetail is created with the order in one transaction.
	OrderDetail *CreateOrderDetailDto `json:"order_detail,omitempty"`
}

func (d CreateOrderDto) Command(cc kernel.ClientContext) (commands.CreateOrderCommand, error) {
	cmd, err := commands.NewCreateOrderCommand(cc, kernel.ID(d.UpdatedBy), order.References{
		CompanyID:   kernel.ID(d.CompanyID),
		PatientID:   kernel.ID(d.PatientID),
		TreatmentID: kernel.ID(d.TreatmentID),
	}, d.Frequency, d.Diagnosis)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	if d.OrderDetail != nil {
		draft, err := d.OrderDetail.Draft()
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		cmd = cmd.WithDetail(draft)
	}
	return cmd, nil
}

type UpdateOrderDto struct {
	OrderID     int64   `json:"order_id"`
	UpdatedBy   int64   `json:"updated_by"`
	CompanyID   *int64  `json:"company_fk,omitempty"`
	PatientID   *int64  `json:"patient_fk,omitempty"`
	TreatmentID *int64  `json:"treatment_fk,omitempty"`
	Frequency   *int    `json:"frequency,omitempty"`
	Diagnosis   *string `json:"diagnosis,omitempty"`
}

func (d UpdateOrderDto) Command(cc kernel.ClientContext) (commands.UpdateOrderCommand, error) {
	return commands.NewUpdateOrderCommand(cc, kernel.ID(d.UpdatedBy), kernel.ID(d.OrderID), order.Patch{
		CompanyID:   idPtr(d.CompanyID),
		PatientID:   idPtr(d.PatientID),
		TreatmentID: idPtr(d.TreatmentID),
		Frequency:   d.Frequency,
		Diagnosis:   d.Diagnosis,
	})
}

type DeleteOrderDto struct {
	OrderID   int64 `json:"order_id"`
	UpdatedBy int64 `json:"updated_by"`
}

func (d DeleteOrderDto) Command(cc kernel.ClientContext) (commands.DeleteOrderCommand, error) {
	return commands.NewDeleteOrderCommand(cc, kernel.ID(d.UpdatedBy), kernel.ID(d.OrderID))
}

// OrderWhereInput is the closed set of order filters.
type OrderWhereInput struct {
	CompanyID      *int64 `json:"company_fk,omitempty"`
	PatientID      *int64 `json:"patient_fk,omitempty"`
	TreatmentID    *int64 `json:"treatment_fk,omitempty"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
}

func (w *OrderWhereInput) Query(cc kernel.ClientContext, pagination *Pagination) (queries.FindOrdersQuery, error) {
	var criteria queries.OrderCriteria
	if w != nil {
		criteria = queries.OrderCriteria{
			CompanyID:      idPtr(w.CompanyID),
			PatientID:      idPtr(w.PatientID),
			TreatmentID:    idPtr(w.TreatmentID),
			IncludeDeleted: w.IncludeDeleted,
		}
	}

	page, err := pagination.Page()
	query, qErr := queries.NewFindOrdersQuery(cc, criteria, page)
	if err = errors.Join(err, qErr); err != nil {
		return queries.FindOrdersQuery{}, err
	}
	return query, nil
}
