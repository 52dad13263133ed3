// Package usecases bundles the command and query handlers served by the
// inbound adapters.
package usecases

import (
	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type UseCases struct {
	// Orders
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrder        commands.UpdateOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	FindOrder          queries.FindOrderQueryHandler
	FindOrders         queries.FindOrdersQueryHandler
	FindOrphanedOrders queries.FindOrphanedOrdersQueryHandler

	// Order details
	CreateOrderDetail       commands.CreateOrderDetailCommandHandler
	UpdateOrderDetail       commands.UpdateOrderDetailCommandHandler
	FinalizeOrderDetail     commands.FinalizeOrderDetailCommandHandler
	AcceptOrderDetail       commands.AcceptOrderDetailCommandHandler
	AddSession              commands.AddSessionCommandHandler
	FindOrderDetail         queries.FindOrderDetailQueryHandler
	FindOrderDetails        queries.FindOrderDetailsQueryHandler
	CountDetailsByCompany   queries.CountDetailsByCompanyQueryHandler
	GetProfessionalDetails  queries.GetProfessionalDetailsQueryHandler
	GetProfessionalDetail   queries.GetProfessionalDetailQueryHandler
	FindPendingOrderDetails queries.FindPendingOrderDetailsQueryHandler

	// Claims
	CreateClaim commands.CreateClaimCommandHandler
	UpdateClaim commands.UpdateClaimCommandHandler
	DeleteClaim commands.DeleteClaimCommandHandler
	FindClaim   queries.FindClaimQueryHandler
	FindClaims  queries.FindClaimsQueryHandler
}

// New wires every handler. Commands write through uowFactory; queries read
// from db directly.
func New(db *gorm.DB, uowFactory commands.UoWFactory, validator commands.Validator) UseCases {
	return UseCases{
		CreateOrder:        commands.NewCreateOrderCommandHandler(uowFactory, validator),
		UpdateOrder:        commands.NewUpdateOrderCommandHandler(uowFactory, validator),
		DeleteOrder:        commands.NewDeleteOrderCommandHandler(uowFactory),
		FindOrder:          queries.NewFindOrderQueryHandler(db),
		FindOrders:         queries.NewFindOrdersQueryHandler(db),
		FindOrphanedOrders: queries.NewFindOrphanedOrdersQueryHandler(db),

		CreateOrderDetail:       commands.NewCreateOrderDetailCommandHandler(uowFactory, validator),
		UpdateOrderDetail:       commands.NewUpdateOrderDetailCommandHandler(uowFactory, validator),
		FinalizeOrderDetail:     commands.NewFinalizeOrderDetailCommandHandler(uowFactory),
		AcceptOrderDetail:       commands.NewAcceptOrderDetailCommandHandler(uowFactory, validator),
		AddSession:              commands.NewAddSessionCommandHandler(uowFactory),
		FindOrderDetail:         queries.NewFindOrderDetailQueryHandler(db),
		FindOrderDetails:        queries.NewFindOrderDetailsQueryHandler(db),
		CountDetailsByCompany:   queries.NewCountDetailsByCompanyQueryHandler(db),
		GetProfessionalDetails:  queries.NewGetProfessionalDetailsQueryHandler(db),
		GetProfessionalDetail:   queries.NewGetProfessionalDetailQueryHandler(db),
		FindPendingOrderDetails: queries.NewFindPendingOrderDetailsQueryHandler(db, validator),

		CreateClaim: commands.NewCreateClaimCommandHandler(uowFactory),
		UpdateClaim: commands.NewUpdateClaimCommandHandler(uowFactory),
		DeleteClaim: commands.NewDeleteClaimCommandHandler(uowFactory),
		FindClaim:   queries.NewFindClaimQueryHandler(db),
		FindClaims:  queries.NewFindClaimsQueryHandler(db),
	}
}
