package commands

import (
	"context"

	"ordersvc/internal/core/domain/model/orderdetail"
)

// AcceptOrderDetailCommandHandler assigns an open detail to a professional.
//
// Two professionals may race for the same detail. The write is one conditional
// update on professional_fk IS NULL AND finished_at IS NULL, so exactly one of
// them wins and the other gets not found. Details of a deleted order cannot be
// accepted.
type AcceptOrderDetailCommandHandler struct {
	uowFactory UoWFactory
	validator  RelationshipValidator
}

// NewAcceptOrderDetailCommandHandler creates a handler for AcceptOrderDetailCommand.
func NewAcceptOrderDetailCommandHandler(
	uowFactory UoWFactory, validator RelationshipValidator,
) AcceptOrderDetailCommandHandler {
	return AcceptOrderDetailCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

func (h AcceptOrderDetailCommandHandler) Handle(
	ctx context.Context, command AcceptOrderDetailCommand,
) (*orderdetail.OrderDetail, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	detailRepo := uow.OrderDetailRepository()
	d, err := detailRepo.GetUnscoped(ctx, command.DetailID())
	if err != nil {
		return nil, err
	}

	if err = d.EnsureAcceptable(); err != nil {
		return nil, err
	}

	parent, err := uow.OrderRepository().Get(ctx, d.ClientID(), d.OrderID())
	if err != nil {
		return nil, err
	}
	if err = parent.EnsureActive(); err != nil {
		return nil, err
	}

	if err = h.validator.ValidateProfessionalRelationship(ctx, d.ClientID(), command.ProfessionalID()); err != nil {
		return nil, err
	}

	if err = detailRepo.Accept(ctx, d.ID(), command.ProfessionalID()); err != nil {
		return nil, err
	}

	if err = d.Accept(command.ProfessionalID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
