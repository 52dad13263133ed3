package ports

import (
	"context"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
)

// CoordinatorClient talks to the coordinator authority, the owner of the
// patient, company and treatment relationships and of negotiated prices.
//
// Implementations return errs.UpstreamUnavailableError when no answer arrives
// and errs.UpstreamRejectedError when the authority answers with an error.
type CoordinatorClient interface {
	// ValidateCoordinator reports whether the patient, company and treatment
	// triple is consistent for the tenant.
	ValidateCoordinator(ctx context.Context, cc kernel.ClientContext, refs order.References) (bool, error)

	// TreatmentPrice returns the unit price the company pays for the treatment.
	TreatmentPrice(ctx context.Context, cc kernel.ClientContext, companyID, treatmentID kernel.ID) (kernel.Amount, error)

	// ProfessionalCost returns what the professional is paid per session of the treatment.
	ProfessionalCost(
		ctx context.Context, cc kernel.ClientContext, companyID, treatmentID, professionalID kernel.ID,
	) (kernel.Amount, error)
}

// CommunityClient talks to the community authority, the owner of the
// tenant to professional relationships.
type CommunityClient interface {
	// FindProfessional reports whether professionalID has an active relationship with clientID.
	FindProfessional(ctx context.Context, clientID, professionalID kernel.ID) (bool, error)
}

// Outbound topics of the authorities.
const (
	TopicValidateCoordinator = "coordinator.validate.coordinator"
	TopicTreatmentPrice      = "coordinator.getValue.companyHasTreatment"
	TopicProfessionalCost    = "coordinator.getValue.treatmentHasProfessional"
	TopicFindProfessional    = "community.find.professional"
)
