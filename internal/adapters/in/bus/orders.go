package bus

import (
	"context"
	"encoding/json"
	"errors"

	"ordersvc/internal/adapters/in/payload"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/kernel"
)

type createOrderMessage struct {
	tenantMessage
	Dto *payload.CreateOrderDto `json:"createOrderDto"`
}

func (h *Handlers) CreateOrder(ctx context.Context, data json.RawMessage) (any, error) {
	var msg createOrderMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	dto, err := required("createOrderDto", msg.Dto)
	if err != nil {
		return nil, err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return nil, err
	}

	res, err := h.uc.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return queries.NewCreatedOrderResponse(res.Order, res.Detail), nil
}

type orderIDMessage struct {
	tenantMessage
	OrderID int64 `json:"order_id"`
}

func (h *Handlers) FindOrder(ctx context.Context, data json.RawMessage) (any, error) {
	var msg orderIDMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	query, err := queries.NewFindOrderQuery(cc, kernel.ID(msg.OrderID))
	if err != nil {
		return nil, err
	}
	return h.uc.FindOrder.Handle(ctx, query)
}

type findOrdersMessage struct {
	tenantMessage
	Where      *payload.OrderWhereInput `json:"whereInput"`
	Pagination *payload.Pagination      `json:"paginationDto"`
}

func (h *Handlers) FindOrders(ctx context.Context, data json.RawMessage) (any, error) {
	var msg findOrdersMessage
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
	return h.uc.FindOrders.Handle(ctx, query)
}

type updateOrderMessage struct {
	tenantMessage
	Dto *payload.UpdateOrderDto `json:"updateOrderDto"`
}

func (h *Handlers) UpdateOrder(ctx context.Context, data json.RawMessage) (any, error) {
	var msg updateOrderMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	dto, err := required("updateOrderDto", msg.Dto)
	if err != nil {
		return nil, err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return nil, err
	}

	o, err := h.uc.UpdateOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return queries.NewOrderResponse(o), nil
}

type deleteOrderMessage struct {
	tenantMessage
	Dto *payload.DeleteOrderDto `json:"deleteOrderDto"`
}

func (h *Handlers) DeleteOrder(ctx context.Context, data json.RawMessage) (any, error) {
	var msg deleteOrderMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	dto, err := required("deleteOrderDto", msg.Dto)
	if err != nil {
		return nil, err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return nil, err
	}

	o, err := h.uc.DeleteOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return queries.NewOrderResponse(o), nil
}

type findOrphanedOrdersMessage struct {
	tenantMessage
	OlderThan  *payload.Date       `json:"older_than"`
	Pagination *payload.Pagination `json:"paginationDto"`
}

func (h *Handlers) FindOrphanedOrders(ctx context.Context, data json.RawMessage) (any, error) {
	var msg findOrphanedOrdersMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	olderThan, err := required("older_than", msg.OlderThan)
	if err != nil {
		return nil, err
	}

	page, pErr := msg.Pagination.Page()
	query, qErr := queries.NewFindOrphanedOrdersQuery(cc, olderThan.Time, page)
	if err = errors.Join(pErr, qErr); err != nil {
		return nil, err
	}
	return h.uc.FindOrphanedOrders.Handle(ctx, query)
}
