package payload

import (
	"errors"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/orderdetail"
)

type CreateOrderDetailDto struct {
	UpdatedBy      int64   `json:"updated_by"`
	OrderID        int64   `json:"order_fk"`
	ProfessionalID *int64  `json:"professional_fk,omitempty"`
	StartDate      Date    `json:"start_date"`
	FinishDate     Date    `json:"finish_date"`
	TotalSessions  int     `json:"total_sessions"`
	Sessions       int     `json:"sessions"`
	Coinsurance    float64 `json:"coinsurance"`
	Value          float64 `json:"value"`
	Cost           float64 `json:"cost"`
	StartedAt      *Date   `json:"started_at,omitempty"`
	Requirements   *string `json:"requirements,omitempty"`
}

func (d CreateOrderDetailDto) Draft() (orderdetail.Draft, error) {
	coinsurance, cErr := amount("coinsurance", d.Coinsurance)
	value, vErr := amount("value", d.Value)
	cost, kErr := amount("cost", d.Cost)
	if err := errors.Join(cErr, vErr, kErr); err != nil {
		return orderdetail.Draft{}, err
	}

	return orderdetail.Draft{
		ProfessionalID: idPtr(d.ProfessionalID),
		StartDate:      d.StartDate.Time,
		FinishDate:     d.FinishDate.Time,
		TotalSessions:  d.TotalSessions,
		Sessions:       d.Sessions,
		Coinsurance:    coinsurance,
		Value:          value,
		Cost:           cost,
		StartedAt:      timePtr(d.StartedAt),
		Requirements:   d.Requirements,
	}, nil
}

func (d CreateOrderDetailDto) Command(cc kernel.ClientContext) (commands.CreateOrderDetailCommand, error) {
	draft, err := d.Draft()
	if err != nil {
		return commands.CreateOrderDetailCommand{}, err
	}
	return commands.NewCreateOrderDetailCommand(cc, kernel.ID(d.UpdatedBy), kernel.ID(d.OrderID), draft)
}

type UpdateDetailDto struct {
	DetailID       int64    `json:"detail_id"`
	UpdatedBy      int64    `json:"updated_by"`
	ProfessionalID *int64   `json:"professional_fk,omitempty"`
	StartDate      *Date    `json:"start_date,omitempty"`
	FinishDate     *Date    `json:"finish_date,omitempty"`
	TotalSessions  *int     `json:"total_sessions,omitempty"`
	Sessions       *int     `json:"sessions,omitempty"`
	Coinsurance    *float64 `json:"coinsurance,omitempty"`
	Value          *float64 `json:"value,omitempty"`
	Cost           *float64 `json:"cost,omitempty"`
	StartedAt      *Date    `json:"started_at,omitempty"`
	Requirements   *string  `json:"requirements,omitempty"`
}

func (d UpdateDetailDto) Command(cc kernel.ClientContext) (commands.UpdateOrderDetailCommand, error) {
	coinsurance, cErr := amountPtr("coinsurance", d.Coinsurance)
	value, vErr := amountPtr("value", d.Value)
	cost, kErr := amountPtr("cost", d.Cost)
	if err := errors.Join(cErr, vErr, kErr); err != nil {
		return commands.UpdateOrderDetailCommand{}, err
	}

	return commands.NewUpdateOrderDetailCommand(cc, kernel.ID(d.UpdatedBy), kernel.ID(d.DetailID), orderdetail.Patch{
		ProfessionalID: idPtr(d.ProfessionalID),
		StartDate:      timePtr(d.StartDate),
		FinishDate:     timePtr(d.FinishDate),
		TotalSessions:  d.TotalSessions,
		Sessions:       d.Sessions,
		Coinsurance:    coinsurance,
		Value:          value,
		Cost:           cost,
		StartedAt:      timePtr(d.StartedAt),
		Requirements:   d.Requirements,
	})
}

type DeleteDetailDto struct {
	DetailID  int64 `json:"detail_id"`
	UpdatedBy int64 `json:"updated_by"`
}

func (d DeleteDetailDto) Command(cc kernel.ClientContext) (commands.FinalizeOrderDetailCommand, error) {
	return commands.NewFinalizeOrderDetailCommand(cc, kernel.ID(d.UpdatedBy), kernel.ID(d.DetailID))
}

type DetailWhereInput struct {
	OrderID        *int64 `json:"order_fk,omitempty"`
	ProfessionalID *int64 `json:"professional_fk,omitempty"`
}

func (w *DetailWhereInput) Query(cc kernel.ClientContext, pagination *Pagination) (queries.FindOrderDetailsQuery, error) {
	var criteria queries.OrderDetailCriteria
	if w != nil {
		criteria = queries.OrderDetailCriteria{
			OrderID:        idPtr(w.OrderID),
			ProfessionalID: idPtr(w.ProfessionalID),
		}
	}

	page, err := pagination.Page()
	query, qErr := queries.NewFindOrderDetailsQuery(cc, criteria, page)
	if err = errors.Join(err, qErr); err != nil {
		return queries.FindOrderDetailsQuery{}, err
	}
	return query, nil
}
