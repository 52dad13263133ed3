package commands

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/orderdetail"
	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a treatment order for the
// tenant of the client context, optionally together with its first detail.
//
// Example:
//
//	refs := order.References{CompanyID: 1, PatientID: 1, TreatmentID: 1}
//	cmd, err := NewCreateOrderCommand(cc, updatedBy, refs, 2, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	cmd = cmd.WithDetail(orderdetail.Draft{StartDate: start, FinishDate: finish})
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientContext kernel.ClientContext
	updatedBy     kernel.ID
	references    order.References
	frequency     int
	diagnosis     *string
	detail        *orderdetail.Draft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the input that does not need a remote call.
func NewCreateOrderCommand(
	cc kernel.ClientContext,
	updatedBy kernel.ID,
	refs order.References,
	frequency int,
	diagnosis *string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setClientContext(cc),
		cmd.setUpdatedBy(updatedBy),
		cmd.setReferences(refs),
		cmd.setFrequency(frequency),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.diagnosis = diagnosis

	return cmd, nil
}

// WithDetail attaches the first detail of the order. The order and the detail
// are then created in one transaction.
func (c CreateOrderCommand) WithDetail(draft orderdetail.Draft) CreateOrderCommand {
	c.detail = &draft
	return c
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ClientContext() kernel.ClientContext {
	return c.clientContext
}

func (c CreateOrderCommand) UpdatedBy() kernel.ID {
	return c.updatedBy
}

func (c CreateOrderCommand) References() order.References {
	return c.references
}

func (c CreateOrderCommand) Frequency() int {
	return c.frequency
}

func (c CreateOrderCommand) Diagnosis() *string {
	return c.diagnosis
}

// Detail returns the embedded detail draft, nil when the order is created alone.
func (c CreateOrderCommand) Detail() *orderdetail.Draft {
	return c.detail
}

func (c *CreateOrderCommand) setClientContext(cc kernel.ClientContext) error {
	if err := cc.Validate(); err != nil {
		return err
	}
	c.clientContext = cc
	return nil
}

func (c *CreateOrderCommand) setUpdatedBy(updatedBy kernel.ID) error {
	if err := updatedBy.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("updated_by", err)
	}
	c.updatedBy = updatedBy
	return nil
}

func (c *CreateOrderCommand) setReferences(refs order.References) error {
	var errList []error
	for name, id := range map[string]kernel.ID{
		"company_fk":   refs.CompanyID,
		"patient_fk":   refs.PatientID,
		"treatment_fk": refs.TreatmentID,
	} {
		if err := id.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(name, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.references = refs
	return nil
}

func (c *CreateOrderCommand) setFrequency(frequency int) error {
	if _, err := order.NewFrequency(frequency); err != nil {
		return err
	}
	c.frequency = frequency
	return nil
}
