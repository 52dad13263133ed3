package order

import (
	"errors"
	"time"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Field names a persisted attribute of an Order. The values match the column names
// so that repositories can persist exactly the attributes a patch touched.
type Field string

const (
	FieldCompany   Field = "company_fk"
	FieldPatient   Field = "patient_fk"
	FieldTreatment Field = "treatment_fk"
	FieldFrequency Field = "frequency"
	FieldDiagnosis Field = "diagnosis"
	FieldUpdatedBy Field = "updated_by"
	FieldDeletedAt Field = "deleted_at"
)

// Order is a prescribed treatment plan for a patient, issued by a company for a
// treatment at a weekly frequency. It is the aggregate root of the order domain.
//
// Order follows these invariants:
//   - Belongs to exactly one tenant (client) for its whole life
//   - References a company, a patient and a treatment by positive identifiers
//   - Frequency is within 1..7 sessions per week
//   - Once deleted (deletedAt set) no transition other than reading is allowed
//   - Is never physically removed
//
// The identifier is assigned by storage; a freshly created Order has a zero ID
// until the repository persists it.
type Order struct {
	id       kernel.ID
	clientID kernel.ID

	companyID   kernel.ID
	patientID   kernel.ID
	treatmentID kernel.ID

	frequency Frequency
	diagnosis *string

	updatedBy kernel.ID
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time

	isConstructed bool
}

// References groups the identifiers of the entities an order points to in other
// services. They are confirmed together by the coordinator authority.
type References struct {
	CompanyID   kernel.ID
	PatientID   kernel.ID
	TreatmentID kernel.ID
}

// NewOrder creates a new Order for the tenant clientID with validation.
//
// Example:
//
//	refs := order.References{CompanyID: 1, PatientID: 1, TreatmentID: 1}
//	o, err := order.NewOrder(clientID, refs, 2, nil, updatedBy)
//	if err != nil {
//	    // Handle validation error
//	}
//
// The order is created without an identifier and without a deletion mark.
func NewOrder(
	clientID kernel.ID,
	refs References,
	frequency int,
	diagnosis *string,
	updatedBy kernel.ID,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setClientID(clientID),
		o.setReferences(refs),
		o.setFrequency(frequency),
		o.setUpdatedBy(updatedBy),
	); err != nil {
		return nil, err
	}
	o.diagnosis = diagnosis

	return o, nil
}

// Snapshot is the complete persisted state of an Order.
type Snapshot struct {
	ID          kernel.ID
	ClientID    kernel.ID
	CompanyID   kernel.ID
	PatientID   kernel.ID
	TreatmentID kernel.ID
	Frequency   int
	Diagnosis   *string
	UpdatedBy   kernel.ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// RestoreOrder rebuilds an Order from storage. The identifier is required;
// the remaining invariants are checked the same way NewOrder checks them.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		deletedAt:     s.DeletedAt,
		diagnosis:     s.Diagnosis,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setClientID(s.ClientID),
		o.setReferences(References{CompanyID: s.CompanyID, PatientID: s.PatientID, TreatmentID: s.TreatmentID}),
		o.setFrequency(s.Frequency),
		o.setUpdatedBy(s.UpdatedBy),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by storage. It fails when the order
// already has one.
func (o *Order) AssignID(id kernel.ID) error {
	if !o.id.IsZero() {
		return errs.NewObjectConflictError("order_id", o.id, "already has an identifier")
	}
	return o.setID(id)
}

// ID returns the order's identifier. It is zero until storage assigns one.
func (o *Order) ID() kernel.ID {
	return o.id
}

// ClientID returns the tenant that owns the order.
func (o *Order) ClientID() kernel.ID {
	return o.clientID
}

// CompanyID returns the company the treatment is ordered from.
func (o *Order) CompanyID() kernel.ID {
	return o.companyID
}

// PatientID returns the patient receiving the treatment.
func (o *Order) PatientID() kernel.ID {
	return o.patientID
}

// TreatmentID returns the ordered treatment.
func (o *Order) TreatmentID() kernel.ID {
	return o.treatmentID
}

// Frequency returns the number of sessions per week.
func (o *Order) Frequency() Frequency {
	return o.frequency
}

// Diagnosis returns the free-text diagnosis, or nil when none was given.
func (o *Order) Diagnosis() *string {
	return o.diagnosis
}

// UpdatedBy returns the actor of the last write.
func (o *Order) UpdatedBy() kernel.ID {
	return o.updatedBy
}

// CreatedAt returns the creation time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last write in UTC.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeletedAt returns the soft-delete time.
// Returns nil while the order is active.
func (o *Order) DeletedAt() *time.Time {
	return o.deletedAt
}

// IsDeleted reports whether the order was soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deletedAt != nil
}

// References returns the company, patient and treatment triple checked by the coordinator.
func (o *Order) References() References {
	return References{CompanyID: o.companyID, PatientID: o.patientID, TreatmentID: o.treatmentID}
}

// BelongsTo reports whether the order is owned by the tenant clientID.
func (o *Order) BelongsTo(clientID kernel.ID) bool {
	return o.clientID == clientID
}

// EnsureActive returns a conflict error when the order is deleted.
func (o *Order) EnsureActive() error {
	if o.IsDeleted() {
		return errs.NewObjectConflictError("order_id", o.id, "is already deleted")
	}
	return nil
}

// Patch is a partial update of an Order. Nil fields are left untouched.
type Patch struct {
	CompanyID   *kernel.ID
	PatientID   *kernel.ID
	TreatmentID *kernel.ID
	Frequency   *int
	Diagnosis   *string
}

// IsEmpty reports whether the patch touches nothing.
func (p Patch) IsEmpty() bool {
	return p.CompanyID == nil && p.PatientID == nil && p.TreatmentID == nil &&
		p.Frequency == nil && p.Diagnosis == nil
}

// TouchesReferences reports whether the patch changes a field confirmed by the coordinator.
func (p Patch) TouchesReferences() bool {
	return p.CompanyID != nil || p.PatientID != nil || p.TreatmentID != nil
}

// ApplyPatch merges patch into the order and stamps updatedBy.
//
// The merge is all or nothing: when any patched value is invalid the order is
// left unchanged. The returned fields are the attributes to persist and always
// include FieldUpdatedBy.
func (o *Order) ApplyPatch(patch Patch, updatedBy kernel.ID) ([]Field, error) {
	if err := o.EnsureActive(); err != nil {
		return nil, err
	}

	next := *o
	fields := make([]Field, 0, 6)
	refs := next.References()

	if patch.CompanyID != nil {
		refs.CompanyID = *patch.CompanyID
		fields = append(fields, FieldCompany)
	}
	if patch.PatientID != nil {
		refs.PatientID = *patch.PatientID
		fields = append(fields, FieldPatient)
	}
	if patch.TreatmentID != nil {
		refs.TreatmentID = *patch.TreatmentID
		fields = append(fields, FieldTreatment)
	}

	var freqErr error
	if patch.Frequency != nil {
		freqErr = next.setFrequency(*patch.Frequency)
		fields = append(fields, FieldFrequency)
	}
	if patch.Diagnosis != nil {
		diagnosis := *patch.Diagnosis
		next.diagnosis = &diagnosis
		fields = append(fields, FieldDiagnosis)
	}

	if err := errors.Join(
		next.setReferences(refs),
		freqErr,
		next.setUpdatedBy(updatedBy),
	); err != nil {
		return nil, err
	}

	next.updatedAt = time.Now().UTC()
	*o = next

	return append(fields, FieldUpdatedBy), nil
}

// Delete soft-deletes the order at now.
//
// Deleting an already deleted order fails with a conflict error so that a
// repeated delete never silently succeeds twice.
func (o *Order) Delete(updatedBy kernel.ID, now time.Time) error {
	if err := o.EnsureActive(); err != nil {
		return err
	}
	if err := o.setUpdatedBy(updatedBy); err != nil {
		return err
	}

	deletedAt := now.UTC()
	o.deletedAt = &deletedAt
	o.updatedAt = deletedAt
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order_id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.ID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("client_fk", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setReferences(refs References) error {
	if err := errors.Join(
		validateRef("company_fk", refs.CompanyID),
		validateRef("patient_fk", refs.PatientID),
		validateRef("treatment_fk", refs.TreatmentID),
	); err != nil {
		return err
	}
	o.companyID = refs.CompanyID
	o.patientID = refs.PatientID
	o.treatmentID = refs.TreatmentID
	return nil
}

func (o *Order) setFrequency(frequency int) error {
	f, err := NewFrequency(frequency)
	if err != nil {
		return err
	}
	o.frequency = f
	return nil
}

func (o *Order) setUpdatedBy(updatedBy kernel.ID) error {
	if err := updatedBy.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("updated_by", err)
	}
	o.updatedBy = updatedBy
	return nil
}

func validateRef(name string, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}
