package authority

import (
	"context"
	"encoding/json"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/ports"
	"ordersvc/internal/pkg/errs"
)

var _ ports.CoordinatorClient = (*CoordinatorClient)(nil)

// CoordinatorClient asks the coordinator service about company, patient and
// treatment relations and their prices.
type CoordinatorClient struct {
	bus Requester
}

// NewCoordinatorClient creates a client publishing on the coordinator topics.
func NewCoordinatorClient(bus Requester) *CoordinatorClient {
	return &CoordinatorClient{bus: bus}
}

// ValidateCoordinator confirms that the patient, company and treatment belong together.
func (c *CoordinatorClient) ValidateCoordinator(
	ctx context.Context, cc kernel.ClientContext, refs order.References,
) (bool, error) {
	patientID := refs.PatientID.Int64()
	req := coordinatorRequest{
		CurrentClient: newCurrentClient(cc),
		CompositeID: compositeID{
			CompanyID:   refs.CompanyID.Int64(),
			TreatmentID: refs.TreatmentID.Int64(),
			PatientID:   &patientID,
		},
	}

	var reply json.RawMessage
	if err := c.bus.Send(ctx, ports.TopicValidateCoordinator, req, &reply); err != nil {
		return false, err
	}
	return truthy(reply), nil
}

// TreatmentPrice returns the price the company charges for the treatment.
func (c *CoordinatorClient) TreatmentPrice(
	ctx context.Context, cc kernel.ClientContext, companyID, treatmentID kernel.ID,
) (kernel.Amount, error) {
	req := coordinatorRequest{
		CurrentClient: newCurrentClient(cc),
		CompositeID:   compositeID{CompanyID: companyID.Int64(), TreatmentID: treatmentID.Int64()},
	}
	return c.value(ctx, ports.TopicTreatmentPrice, req)
}

// ProfessionalCost returns what the company pays the professional for the treatment.
func (c *CoordinatorClient) ProfessionalCost(
	ctx context.Context, cc kernel.ClientContext, companyID, treatmentID, professionalID kernel.ID,
) (kernel.Amount, error) {
	professional := professionalID.Int64()
	req := coordinatorRequest{
		CurrentClient: newCurrentClient(cc),
		CompositeID: compositeID{
			CompanyID:      companyID.Int64(),
			TreatmentID:    treatmentID.Int64(),
			ProfessionalID: &professional,
		},
	}
	return c.value(ctx, ports.TopicProfessionalCost, req)
}

func (c *CoordinatorClient) value(ctx context.Context, topic string, req coordinatorRequest) (kernel.Amount, error) {
	var reply valueReply
	if err := c.bus.Send(ctx, topic, req, &reply); err != nil {
		return 0, err
	}

	amount, err := reply.amount()
	if err != nil {
		return 0, errs.NewUpstreamUnavailableErrorWithCause(topic, err)
	}
	return amount, nil
}
