// Package bus exposes the use cases as request/reply topics on the message bus.
package bus

import (
	"encoding/json"

	"ordersvc/internal/adapters/in/payload"
	"ordersvc/internal/core/application/usecases"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/msgbus"
)

// Registrar is the part of msgbus.Server the handlers need.
type Registrar interface {
	Handle(pattern string, h msgbus.HandlerFunc)
}

// Handlers serves the inbound topics of the service.
type Handlers struct {
	uc usecases.UseCases
}

// NewHandlers creates topic handlers over the use cases.
func NewHandlers(uc usecases.UseCases) *Handlers {
	return &Handlers{uc: uc}
}

// Register binds every inbound topic to its handler.
func (h *Handlers) Register(r Registrar) {
	r.Handle(TopicCreateOrder, h.CreateOrder)
	r.Handle(TopicFindOrder, h.FindOrder)
	r.Handle(TopicFindOrders, h.FindOrders)
	r.Handle(TopicUpdateOrder, h.UpdateOrder)
	r.Handle(TopicDeleteOrder, h.DeleteOrder)
	r.Handle(TopicFindOrphanedOrders, h.FindOrphanedOrders)

	r.Handle(TopicCreateOrderDetail, h.CreateOrderDetail)
	r.Handle(TopicFindOrderDetail, h.FindOrderDetail)
	r.Handle(TopicFindOrderDetails, h.FindOrderDetails)
	r.Handle(TopicUpdateOrderDetail, h.UpdateOrderDetail)
	r.Handle(TopicFinalizeOrderDetail, h.FinalizeOrderDetail)
	r.Handle(TopicAcceptOrderDetail, h.AcceptOrderDetail)
	r.Handle(TopicAddSession, h.AddSession)
	r.Handle(TopicCountDetailsByCompany, h.CountDetailsByCompany)
	r.Handle(TopicGetProfessionalDetails, h.GetProfessionalDetails)
	r.Handle(TopicGetProfessionalDetail, h.GetProfessionalDetail)
	r.Handle(TopicFindPendingOrderDetails, h.FindPendingOrderDetails)

	detailHandlers := map[string]msgbus.HandlerFunc{
		TopicCreateOrderDetail:       h.CreateOrderDetail,
		TopicFindOrderDetail:         h.FindOrderDetail,
		TopicFindOrderDetails:        h.FindOrderDetails,
		TopicUpdateOrderDetail:       h.UpdateOrderDetail,
		TopicFinalizeOrderDetail:     h.FinalizeOrderDetail,
		TopicAcceptOrderDetail:       h.AcceptOrderDetail,
		TopicAddSession:              h.AddSession,
		TopicCountDetailsByCompany:   h.CountDetailsByCompany,
		TopicGetProfessionalDetails:  h.GetProfessionalDetails,
		TopicGetProfessionalDetail:   h.GetProfessionalDetail,
		TopicFindPendingOrderDetails: h.FindPendingOrderDetails,
	}
	for legacy, topic := range LegacyDetailTopics {
		r.Handle(legacy, detailHandlers[topic])
	}

	r.Handle(TopicCreateClaim, h.CreateClaim)
	r.Handle(TopicFindClaim, h.FindClaim)
	r.Handle(TopicFindClaims, h.FindClaims)
	r.Handle(TopicUpdateClaim, h.UpdateClaim)
	r.Handle(TopicDeleteClaim, h.DeleteClaim)
}

// tenantMessage is embedded by every message that runs in a tenant context.
type tenantMessage struct {
	CurrentClient *payload.ClientIDs `json:"currentClient"`
}

func (m tenantMessage) clientContext() (kernel.ClientContext, error) {
	if m.CurrentClient == nil {
		return kernel.ClientContext{}, errs.NewValueIsRequiredError("currentClient")
	}
	return m.CurrentClient.Context()
}

func decode(data json.RawMessage, v any) error {
	if len(data) == 0 || string(data) == "null" {
		return errs.NewValueIsRequiredError("data")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("data", err)
	}
	return nil
}

func required[T any](paramName string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, errs.NewValueIsRequiredError(paramName)
	}
	return *v, nil
}
