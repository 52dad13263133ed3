// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/orderdetail"
	"ordersvc/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderDetailRepoFactory interface {
		OrderDetailRepository() ports.OrderDetailRepository
	}

	ClaimRepoFactory interface {
		ClaimRepository() ports.ClaimRepository
	}

	// UoW spans every aggregate of the service. Creating an order together with
	// its first detail is the one command that writes two aggregates in one
	// transaction; the others touch a single row.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   detailRepo := uow.OrderDetailRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		OrderDetailRepoFactory
		ClaimRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// Cross-service checks used by the command handlers. They are satisfied by
// validation.CrossServiceValidator.
type (
	CoordinatorValidator interface {
		ValidateCoordinator(ctx context.Context, cc kernel.ClientContext, refs order.References) error
	}

	RelationshipValidator interface {
		ValidateProfessionalRelationship(ctx context.Context, clientID, professionalID kernel.ID) error
	}

	PricingResolver interface {
		ResolvePricing(
			ctx context.Context, cc kernel.ClientContext, refs order.References, d *orderdetail.OrderDetail,
		) ([]orderdetail.Field, error)
	}

	// DetailValidator groups the checks needed to create or update a detail.
	DetailValidator interface {
		RelationshipValidator
		PricingResolver
	}

	// Validator is the complete set of cross-service checks.
	Validator interface {
		CoordinatorValidator
		DetailValidator
	}
)
