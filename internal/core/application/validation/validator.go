// Package validation confirms the data of orders and order details against the
// authorities living in other services, and resolves missing prices.
package validation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/orderdetail"
	"ordersvc/internal/core/ports"
	"ordersvc/internal/pkg/errs"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultTimeout = 5 * time.Second

// CrossServiceValidator issues request/await calls to the coordinator and
// community authorities and turns their answers into typed errors.
//
// Every call is bounded by the configured timeout. A call that does not answer
// in time, or fails in transport, yields errs.UpstreamUnavailableError, which is
// distinct from the validation error returned when the authority says no.
type CrossServiceValidator struct {
	coordinator ports.CoordinatorClient
	community   ports.CommunityClient
	timeout     time.Duration
	logger      *zap.Logger
}

// NewCrossServiceValidator creates a validator whose every upstream call is
// bounded by timeout.
func NewCrossServiceValidator(
	coordinator ports.CoordinatorClient,
	community ports.CommunityClient,
	timeout time.Duration,
	logger *zap.Logger,
) *CrossServiceValidator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CrossServiceValidator{
		coordinator: coordinator,
		community:   community,
		timeout:     timeout,
		logger:      logger.With(zap.String("component", "cross_service_validator")),
	}
}

// ValidateCoordinator confirms the patient, company and treatment triple.
// A falsy answer is a validation error; an upstream "not found" answer is
// reported as not found.
func (v *CrossServiceValidator) ValidateCoordinator(ctx context.Context, cc kernel.ClientContext, refs order.References) error {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	ok, err := v.coordinator.ValidateCoordinator(ctx, cc, refs)
	if err != nil {
		err = upstreamError(ports.TopicValidateCoordinator, err)
		v.logger.Debug("coordinator check failed",
			zap.Int64("client_id", cc.ClientID().Int64()),
			zap.String("kind", string(errs.KindOf(err))),
			zap.Error(err))
		return err
	}
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("coordinator", fmt.Errorf(
			"patient %d, company %d and treatment %d are not related",
			refs.PatientID, refs.CompanyID, refs.TreatmentID))
	}
	return nil
}

// LookupTreatmentPrice resolves the unit price of (company, treatment). Any
// failure is reported as the pricing authority being unavailable.
func (v *CrossServiceValidator) LookupTreatmentPrice(
	ctx context.Context, cc kernel.ClientContext, companyID, treatmentID kernel.ID,
) (kernel.Amount, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	value, err := v.coordinator.TreatmentPrice(ctx, cc, companyID, treatmentID)
	if err != nil {
		return 0, pricingError(ports.TopicTreatmentPrice, err)
	}
	return checkedAmount(ports.TopicTreatmentPrice, value)
}

// LookupProfessionalCost resolves the cost of (company, treatment, professional).
func (v *CrossServiceValidator) LookupProfessionalCost(
	ctx context.Context, cc kernel.ClientContext, companyID, treatmentID, professionalID kernel.ID,
) (kernel.Amount, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	cost, err := v.coordinator.ProfessionalCost(ctx, cc, companyID, treatmentID, professionalID)
	if err != nil {
		return 0, pricingError(ports.TopicProfessionalCost, err)
	}
	return checkedAmount(ports.TopicProfessionalCost, cost)
}

// ValidateProfessionalRelationship confirms an active link between the tenant
// and the professional. It is always awaited. An empty answer or an upstream
// rejection is a validation error.
func (v *CrossServiceValidator) ValidateProfessionalRelationship(
	ctx context.Context, clientID, professionalID kernel.ID,
) error {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	ok, err := v.community.FindProfessional(ctx, clientID, professionalID)
	if err != nil {
		err = upstreamError(ports.TopicFindProfessional, err)
		if errors.Is(err, errs.ErrUpstreamRejectedCall) {
			return errs.NewValueIsInvalidErrorWithCause("professional_fk", err)
		}
		return err
	}
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("professional_fk",
			fmt.Errorf("professional %d has no active relationship with client %d", professionalID, clientID))
	}
	return nil
}

// ValidateSessions is the local session bound check.
func ValidateSessions(sessions, totalSessions int) error {
	if sessions < 0 || sessions > totalSessions {
		return errs.NewValueIsOutOfRangeError("sessions", sessions, 0, totalSessions)
	}
	return nil
}

// ResolvePricing fills the value and cost of d that are still zero. The two
// lookups run concurrently and both complete before the detail is touched.
// It returns the fields that were resolved.
func (v *CrossServiceValidator) ResolvePricing(
	ctx context.Context, cc kernel.ClientContext, refs order.References, d *orderdetail.OrderDetail,
) ([]orderdetail.Field, error) {
	needValue, needCost := d.NeedsValue(), d.NeedsCost()
	if !needValue && !needCost {
		return nil, nil
	}

	var value, cost kernel.Amount
	g, gctx := errgroup.WithContext(ctx)
	if needValue {
		g.Go(func() error {
			var err error
			value, err = v.LookupTreatmentPrice(gctx, cc, refs.CompanyID, refs.TreatmentID)
			return err
		})
	}
	if needCost {
		professionalID := *d.ProfessionalID()
		g.Go(func() error {
			var err error
			cost, err = v.LookupProfessionalCost(gctx, cc, refs.CompanyID, refs.TreatmentID, professionalID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resolved := make([]orderdetail.Field, 0, 2)
	if needValue {
		if err := d.ResolveValue(value); err != nil {
			return nil, err
		}
		resolved = append(resolved, orderdetail.FieldValue)
	}
	if needCost {
		if err := d.ResolveCost(cost); err != nil {
			return nil, err
		}
		resolved = append(resolved, orderdetail.FieldCost)
	}
	return resolved, nil
}

// upstreamError keeps typed upstream errors and turns anything else, including
// deadline and cancellation, into an unavailable error.
func upstreamError(topic string, err error) error {
	switch {
	case errors.Is(err, errs.ErrUpstreamRejectedCall), errors.Is(err, errs.ErrUpstreamUnavailable):
		return err
	default:
		return errs.NewUpstreamUnavailableErrorWithCause(topic, err)
	}
}

func pricingError(topic string, err error) error {
	if errors.Is(err, errs.ErrUpstreamUnavailable) {
		return err
	}
	return errs.NewUpstreamUnavailableErrorWithCause(topic, err)
}

func checkedAmount(topic string, a kernel.Amount) (kernel.Amount, error) {
	checked, err := kernel.NewAmount(topic, a.Float64())
	if err != nil {
		return 0, errs.NewUpstreamUnavailableErrorWithCause(topic, err)
	}
	return checked, nil
}
