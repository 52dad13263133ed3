// Package claim provides the Claim aggregate: an incident reported against an
// order detail, owned by a tenant and soft-deleted.
package claim

import (
	"errors"
	"strings"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"
)

var ErrClaimIsNotConstructed = errors.New("Claim must be created via NewClaim constructor")

type Field string

const (
	FieldDetail       Field = "detail_fk"
	FieldCause        Field = "cause"
	FieldUrgency      Field = "urgency"
	FieldReportedDate Field = "reported_date"
	FieldUpdatedBy    Field = "updated_by"
	FieldDeletedAt    Field = "deleted_at"
)

type Claim struct {
	id           kernel.ID
	clientID     kernel.ID
	detailID     kernel.ID
	cause        string
	urgency      Urgency
	reportedDate time.Time
	updatedBy    kernel.ID
	createdAt    time.Time
	updatedAt    time.Time
	deletedAt    *time.Time

	isConstructed bool
}

func NewClaim(
	clientID, detailID kernel.ID,
	cause string,
	urgency Urgency,
	reportedDate time.Time,
	updatedBy kernel.ID,
) (*Claim, error) {
	now := time.Now().UTC()
	c := &Claim{createdAt: now, updatedAt: now, isConstructed: true}

	if err := errors.Join(
		c.setClientID(clientID),
		c.setDetailID(detailID),
		c.setCause(cause),
		c.setUrgency(urgency),
		c.setReportedDate(reportedDate),
		c.setUpdatedBy(updatedBy),
	); err != nil {
		return nil, err
	}
	return c, nil
}

type Snapshot struct {
	ID           kernel.ID
	ClientID     kernel.ID
	DetailID     kernel.ID
	Cause        string
	Urgency      Urgency
	ReportedDate time.Time
	UpdatedBy    kernel.ID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

func RestoreClaim(s Snapshot) (*Claim, error) {
	c := &Claim{
		cause:         s.Cause,
		reportedDate:  s.ReportedDate,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		deletedAt:     s.DeletedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(s.ID),
		c.setClientID(s.ClientID),
		c.setDetailID(s.DetailID),
		c.setUrgency(s.Urgency),
		c.setUpdatedBy(s.UpdatedBy),
	); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate ensures the claim was built through NewClaim or RestoreClaim.
func (c *Claim) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClaimIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by storage.
func (c *Claim) AssignID(id kernel.ID) error {
	if !c.id.IsZero() {
		return errs.NewObjectConflictError("claim_id", c.id, "already has an identifier")
	}
	return c.setID(id)
}

// ID returns the claim's identifier.
func (c *Claim) ID() kernel.ID {
	return c.id
}

// ClientID returns the tenant that owns the claim.
func (c *Claim) ClientID() kernel.ID {
	return c.clientID
}

// DetailID returns the order detail the claim is about.
func (c *Claim) DetailID() kernel.ID {
	return c.detailID
}

// Cause returns the reported reason.
func (c *Claim) Cause() string {
	return c.cause
}

// Urgency returns how fast the claim must be handled.
func (c *Claim) Urgency() Urgency {
	return c.urgency
}

// ReportedDate returns when the problem was reported.
func (c *Claim) ReportedDate() time.Time {
	return c.reportedDate
}

func (c *Claim) UpdatedBy() kernel.ID {
	return c.updatedBy
}

func (c *Claim) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Claim) UpdatedAt() time.Time {
	return c.updatedAt
}

// DeletedAt returns the soft-delete time, or nil while the claim is active.
func (c *Claim) DeletedAt() *time.Time {
	return c.deletedAt
}

// IsDeleted reports whether the claim was soft-deleted.
func (c *Claim) IsDeleted() bool {
	return c.deletedAt != nil
}

// EnsureActive fails with a conflict when the claim is deleted.
func (c *Claim) EnsureActive() error {
	if c.IsDeleted() {
		return errs.NewObjectConflictError("claim_id", c.id, "is already deleted")
	}
	return nil
}

// Patch is a partial update of a Claim. Moving a claim to another detail is
// allowed; the caller confirms the new detail belongs to the same tenant.
type Patch struct {
	DetailID     *kernel.ID
	Cause        *string
	Urgency      *Urgency
	ReportedDate *time.Time
}

func (c *Claim) ApplyPatch(patch Patch, updatedBy kernel.ID) ([]Field, error) {
	if err := c.EnsureActive(); err != nil {
		return nil, err
	}

	next := *c
	fields := make([]Field, 0, 5)
	var errList []error

	if patch.DetailID != nil {
		errList = append(errList, next.setDetailID(*patch.DetailID))
		fields = append(fields, FieldDetail)
	}
	if patch.Cause != nil {
		errList = append(errList, next.setCause(*patch.Cause))
		fields = append(fields, FieldCause)
	}
	if patch.Urgency != nil {
		errList = append(errList, next.setUrgency(*patch.Urgency))
		fields = append(fields, FieldUrgency)
	}
	if patch.ReportedDate != nil {
		errList = append(errList, next.setReportedDate(*patch.ReportedDate))
		fields = append(fields, FieldReportedDate)
	}
	errList = append(errList, next.setUpdatedBy(updatedBy))

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	next.updatedAt = time.Now().UTC()
	*c = next
	return append(fields, FieldUpdatedBy), nil
}

// Delete soft-deletes the claim. A second delete is a conflict.
func (c *Claim) Delete(updatedBy kernel.ID, now time.Time) error {
	if err := c.EnsureActive(); err != nil {
		return err
	}
	if err := c.setUpdatedBy(updatedBy); err != nil {
		return err
	}

	deletedAt := now.UTC()
	c.deletedAt = &deletedAt
	c.updatedAt = deletedAt
	return nil
}

func (c *Claim) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("claim_id", err)
	}
	c.id = id
	return nil
}

func (c *Claim) setClientID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("client_fk", err)
	}
	c.clientID = id
	return nil
}

func (c *Claim) setDetailID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldDetail), err)
	}
	c.detailID = id
	return nil
}

func (c *Claim) setCause(cause string) error {
	cause = strings.TrimSpace(cause)
	if cause == "" {
		return errs.NewValueIsRequiredError(string(FieldCause))
	}
	c.cause = cause
	return nil
}

func (c *Claim) setUrgency(u Urgency) error {
	if err := u.Validate(); err != nil {
		return err
	}
	c.urgency = u
	return nil
}

func (c *Claim) setReportedDate(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(string(FieldReportedDate))
	}
	c.reportedDate = t
	return nil
}

func (c *Claim) setUpdatedBy(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldUpdatedBy), err)
	}
	c.updatedBy = id
	return nil
}
