package bus

// Inbound topics served by the order service.
const (
	TopicCreateOrder        = "order.create.order"
	TopicFindOrder          = "order.find.order"
	TopicFindOrders         = "order.find.orders"
	TopicUpdateOrder        = "order.update.order"
	TopicDeleteOrder        = "order.delete.order"
	TopicFindOrphanedOrders = "order.find.orphanedOrders"

	TopicCreateOrderDetail       = "order.create.orderDetail"
	TopicFindOrderDetail         = "order.find.orderDetail"
	TopicFindOrderDetails        = "order.findAll.orderDetails"
	TopicUpdateOrderDetail       = "order.update.orderDetail"
	TopicFinalizeOrderDetail     = "order.finalize.orderDetail"
	TopicAcceptOrderDetail       = "order.accept.orderDetail"
	TopicAddSession              = "order.addSession.orderDetail"
	TopicCountDetailsByCompany   = "order.totalOrders.orderDetail"
	TopicGetProfessionalDetails  = "order.getDetails.orderDetail"
	TopicGetProfessionalDetail   = "order.getDetail.orderDetail"
	TopicFindPendingOrderDetails = "order.findPending.orderDetails"

	TopicCreateClaim = "order.create.claim"
	TopicFindClaim   = "order.find.claim"
	TopicFindClaims  = "order.find.claims"
	TopicUpdateClaim = "order.update.claim"
	TopicDeleteClaim = "order.delete.claim"
)

// LegacyDetailTopics maps the detail topic names still published by older
// peers to the topic serving them. Both names share one handler.
var LegacyDetailTopics = map[string]string{
	"order.create.detail":       TopicCreateOrderDetail,
	"order.find.detail":         TopicFindOrderDetail,
	"order.findAll.details":     TopicFindOrderDetails,
	"order.update.detail":       TopicUpdateOrderDetail,
	"order.finalize.detail":     TopicFinalizeOrderDetail,
	"order.accept.detail":       TopicAcceptOrderDetail,
	"order.addSession.detail":   TopicAddSession,
	"order.totalOrders.detail":  TopicCountDetailsByCompany,
	"order.getDetails.detail":   TopicGetProfessionalDetails,
	"order.getDetail.detail":    TopicGetProfessionalDetail,
	"order.findPending.details": TopicFindPendingOrderDetails,
}
