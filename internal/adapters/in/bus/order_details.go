package bus

import (
	"context"
	"encoding/json"
	"errors"

	"ordersvc/internal/adapters/in/payload"
	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/orderdetail"
)

func detailResult(d *orderdetail.OrderDetail, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return queries.NewOrderDetailResponse(d), nil
}

type createDetailMessage struct {
	tenantMessage
	Dto       *payload.CreateOrderDetailDto `json:"createOrderDetailDto"`
	LegacyDto *payload.CreateOrderDetailDto `json:"createDetailDto"`
}

func (h *Handlers) CreateOrderDetail(ctx context.Context, data json.RawMessage) (any, error) {
	var msg createDetailMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	if msg.Dto == nil {
		msg.Dto = msg.LegacyDto
	}
	dto, err := required("createOrderDetailDto", msg.Dto)
	if err != nil {
		return nil, err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return nil, err
	}
	return detailResult(h.uc.CreateOrderDetail.Handle(ctx, cmd))
}

type detailIDMessage struct {
	tenantMessage
	DetailID int64 `json:"detail_id"`
}

func (h *Handlers) FindOrderDetail(ctx context.Context, data json.RawMessage) (any, error) {
	var msg detailIDMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	query, err := queries.NewFindOrderDetailQuery(cc, kernel.ID(msg.DetailID))
	if err != nil {
		return nil, err
	}
	return h.uc.FindOrderDetail.Handle(ctx, query)
}

type findDetailsMessage struct {
	tenantMessage
	Where      *payload.DetailWhereInput `json:"whereInput"`
	Pagination *payload.Pagination       `json:"paginationDto"`
}

func (h *Handlers) FindOrderDetails(ctx context.Context, data json.RawMessage) (any, error) {
	var msg findDetailsMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	query, err := msg.Where.Query(cc, msg.Pagination)
	if err != nil {
		return nil, err
	}
	return h.uc.FindOrderDetails.Handle(ctx, query)
}

type updateDetailMessage struct {
	tenantMessage
	Dto *payload.UpdateDetailDto `json:"updateDetailDto"`
}

func (h *Handlers) UpdateOrderDetail(ctx context.Context, data json.RawMessage) (any, error) {
	var msg updateDetailMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	dto, err := required("updateDetailDto", msg.Dto)
	if err != nil {
		return nil, err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return nil, err
	}
	return detailResult(h.uc.UpdateOrderDetail.Handle(ctx, cmd))
}

type finalizeDetailMessage struct {
	tenantMessage
	Dto *payload.DeleteDetailDto `json:"deleteDetailDto"`
}

func (h *Handlers) FinalizeOrderDetail(ctx context.Context, data json.RawMessage) (any, error) {
	var msg finalizeDetailMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	dto, err := required("deleteDetailDto", msg.Dto)
	if err != nil {
		return nil, err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return nil, err
	}
	return detailResult(h.uc.FinalizeOrderDetail.Handle(ctx, cmd))
}

// professionalMessage carries the professional acting on a detail. These
// topics are not tenant-scoped: the professional reaches the detail directly.
type professionalMessage struct {
	ProfessionalID int64               `json:"professional_id"`
	DetailID       int64               `json:"detail_id"`
	Pagination     *payload.Pagination `json:"paginationDto"`
}

func (h *Handlers) AcceptOrderDetail(ctx context.Context, data json.RawMessage) (any, error) {
	var msg professionalMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cmd, err := commands.NewAcceptOrderDetailCommand(kernel.ID(msg.ProfessionalID), kernel.ID(msg.DetailID))
	if err != nil {
		return nil, err
	}
	return detailResult(h.uc.AcceptOrderDetail.Handle(ctx, cmd))
}

func (h *Handlers) AddSession(ctx context.Context, data json.RawMessage) (any, error) {
	var msg professionalMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cmd, err := commands.NewAddSessionCommand(kernel.ID(msg.DetailID), kernel.ID(msg.ProfessionalID))
	if err != nil {
		return nil, err
	}
	return detailResult(h.uc.AddSession.Handle(ctx, cmd))
}

func (h *Handlers) GetProfessionalDetails(ctx context.Context, data json.RawMessage) (any, error) {
	var msg professionalMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	page, pErr := msg.Pagination.Page()
	query, qErr := queries.NewGetProfessionalDetailsQuery(kernel.ID(msg.ProfessionalID), page)
	if err := errors.Join(pErr, qErr); err != nil {
		return nil, err
	}
	return h.uc.GetProfessionalDetails.Handle(ctx, query)
}

func (h *Handlers) GetProfessionalDetail(ctx context.Context, data json.RawMessage) (any, error) {
	var msg professionalMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	query, err := queries.NewGetProfessionalDetailQuery(kernel.ID(msg.DetailID), kernel.ID(msg.ProfessionalID))
	if err != nil {
		return nil, err
	}
	return h.uc.GetProfessionalDetail.Handle(ctx, query)
}

type countDetailsMessage struct {
	CompanyID int64 `json:"company_id"`
}

func (h *Handlers) CountDetailsByCompany(ctx context.Context, data json.RawMessage) (any, error) {
	var msg countDetailsMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	query, err := queries.NewCountDetailsByCompanyQuery(kernel.ID(msg.CompanyID))
	if err != nil {
		return nil, err
	}
	return h.uc.CountDetailsByCompany.Handle(ctx, query)
}

type pendingDetailsMessage struct {
	ClientID       int64               `json:"client_fk"`
	ProfessionalID int64               `json:"professional_id"`
	Pagination     *payload.Pagination `json:"paginationDto"`
}

func (h *Handlers) FindPendingOrderDetails(ctx context.Context, data json.RawMessage) (any, error) {
	var msg pendingDetailsMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	page, pErr := msg.Pagination.Page()
	query, qErr := queries.NewFindPendingOrderDetailsQuery(kernel.ID(msg.ClientID), kernel.ID(msg.ProfessionalID), page)
	if err := errors.Join(pErr, qErr); err != nil {
		return nil, err
	}
	return h.uc.FindPendingOrderDetails.Handle(ctx, query)
}
