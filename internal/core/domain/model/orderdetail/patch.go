package orderdetail

import (
	"errors"
	"fmt"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/services"
	"ordersvc/internal/pkg/errs"
)

// Patch is a partial update of an OrderDetail. Nil fields are left untouched.
type Patch struct {
	ProfessionalID *kernel.ID
	StartDate      *time.Time
	FinishDate     *time.Time
	TotalSessions  *int
	Sessions       *int
	Coinsurance    *kernel.Amount
	Value          *kernel.Amount
	Cost           *kernel.Amount
	StartedAt      *time.Time
	Requirements   *string
}

// PatchResult describes what ApplyPatch changed.
type PatchResult struct {
	// Fields are the attributes to persist, always including FieldUpdatedBy.
	Fields []Field

	// ProfessionalAssigned is set when the patch assigned a professional to a
	// previously unassigned detail. The tenant relationship must be confirmed
	// before persisting.
	ProfessionalAssigned bool
}

// Has reports whether field is among the changed attributes.
func (r PatchResult) Has(field Field) bool {
	for _, f := range r.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// ApplyPatch merges patch over the detail.
//
// frequency is the parent order's weekly frequency, used when total_sessions is
// zero after the merge. The merge is all or nothing. Finalized details are a
// conflict; re-assigning or clearing the professional is a validation error.
// An explicit zero value or cost marks the amount for re-resolution, see
// NeedsValue and NeedsCost.
func (d *OrderDetail) ApplyPatch(patch Patch, frequency order.Frequency, updatedBy kernel.ID) (PatchResult, error) {
	if err := d.EnsureOpen(); err != nil {
		return PatchResult{}, err
	}

	next := *d
	result := PatchResult{Fields: make([]Field, 0, 8)}
	var errList []error

	if patch.ProfessionalID != nil {
		assigned, err := next.patchProfessional(*patch.ProfessionalID)
		errList = append(errList, err)
		if assigned {
			result.ProfessionalAssigned = true
			result.Fields = append(result.Fields, FieldProfessional)
		}
	}
	if patch.StartDate != nil {
		next.startDate = *patch.StartDate
		result.Fields = append(result.Fields, FieldStartDate)
	}
	if patch.FinishDate != nil {
		next.finishDate = *patch.FinishDate
		result.Fields = append(result.Fields, FieldFinishDate)
	}
	if patch.TotalSessions != nil {
		next.totalSessions = *patch.TotalSessions
		result.Fields = append(result.Fields, FieldTotalSessions)
	}
	if patch.Sessions != nil {
		next.sessions = *patch.Sessions
		result.Fields = append(result.Fields, FieldSessions)
	}
	if patch.Coinsurance != nil {
		errList = append(errList, next.setAmount(FieldCoinsurance, *patch.Coinsurance))
		result.Fields = append(result.Fields, FieldCoinsurance)
	}
	if patch.Value != nil {
		errList = append(errList, next.setAmount(FieldValue, *patch.Value))
		result.Fields = append(result.Fields, FieldValue)
	}
	if patch.Cost != nil {
		errList = append(errList, next.setAmount(FieldCost, *patch.Cost))
		result.Fields = append(result.Fields, FieldCost)
	}
	if patch.StartedAt != nil {
		startedAt := *patch.StartedAt
		next.startedAt = &startedAt
		result.Fields = append(result.Fields, FieldStartedAt)
	}
	if patch.Requirements != nil {
		requirements := *patch.Requirements
		next.requirements = &requirements
		result.Fields = append(result.Fields, FieldRequirements)
	}

	if next.totalSessions == 0 {
		derived := services.NewSessionCalculator().TotalSessions(frequency.Int(), next.startDate, next.finishDate)
		if derived != 0 {
			next.totalSessions = derived
			if !result.Has(FieldTotalSessions) {
				result.Fields = append(result.Fields, FieldTotalSessions)
			}
		}
	}

	errList = append(errList, next.setUpdatedBy(updatedBy), next.checkInvariants())
	if err := errors.Join(errList...); err != nil {
		return PatchResult{}, err
	}

	next.updatedAt = time.Now().UTC()
	*d = next
	result.Fields = append(result.Fields, FieldUpdatedBy)

	return result, nil
}

// patchProfessional applies the null-to-value rule. It reports whether the
// professional is newly assigned; setting the same professional again is a no-op.
func (d *OrderDetail) patchProfessional(id kernel.ID) (bool, error) {
	if d.professionalID != nil {
		if *d.professionalID == id {
			return false, nil
		}
		return false, errs.NewValueIsInvalidErrorWithCause(string(FieldProfessional),
			fmt.Errorf("detail is already assigned to professional %d", *d.professionalID))
	}
	if err := d.setProfessional(&id); err != nil {
		return false, err
	}
	return true, nil
}

// MarkResolved adds value and cost to the changed fields when they were resolved
// from the pricing authority after ApplyPatch.
func (r *PatchResult) MarkResolved(fields ...Field) {
	for _, f := range fields {
		if !r.Has(f) {
			r.Fields = append(r.Fields, f)
		}
	}
}
