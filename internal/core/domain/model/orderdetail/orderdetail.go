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

const MaxTotalSessions = 31

var ErrOrderDetailIsNotConstructed = errors.New("OrderDetail must be created via NewOrderDetail constructor")

// Field names a persisted attribute of an OrderDetail; values match column names.
type Field string

const (
	FieldProfessional  Field = "professional_fk"
	FieldStartDate     Field = "start_date"
	FieldFinishDate    Field = "finish_date"
	FieldTotalSessions Field = "total_sessions"
	FieldSessions      Field = "sessions"
	FieldCoinsurance   Field = "coinsurance"
	FieldValue         Field = "value"
	FieldCost          Field = "cost"
	FieldStartedAt     Field = "started_at"
	FieldFinishedAt    Field = "finished_at"
	FieldRequirements  Field = "requirements"
	FieldUpdatedBy     Field = "updated_by"
)

// OrderDetail is a window of treatment sessions scheduled against an Order.
type OrderDetail struct {
	id       kernel.ID
	clientID kernel.ID
	orderID  kernel.ID

	professionalID *kernel.ID

	startDate     time.Time
	finishDate    time.Time
	totalSessions int
	sessions      int

	coinsurance kernel.Amount
	value       kernel.Amount
	cost        kernel.Amount

	startedAt    *time.Time
	finishedAt   *time.Time
	requirements *string

	updatedBy kernel.ID
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// Draft carries the caller-supplied attributes of a new detail. A zero
// TotalSessions is derived from the parent's frequency; a zero Value or Cost is
// left for the pricing authority.
type Draft struct {
	ProfessionalID *kernel.ID
	StartDate      time.Time
	FinishDate     time.Time
	TotalSessions  int
	Sessions       int
	Coinsurance    kernel.Amount
	Value          kernel.Amount
	Cost           kernel.Amount
	StartedAt      *time.Time
	Requirements   *string
}

// NewOrderDetail creates a detail under parent for the tenant that owns parent.
//
// The parent must be an active (not deleted) order. When draft.TotalSessions is
// zero it is derived with the SessionCalculator from the parent's frequency and
// the schedule window, before the session bound is checked.
func NewOrderDetail(parent *order.Order, draft Draft, updatedBy kernel.ID) (*OrderDetail, error) {
	if err := parent.Validate(); err != nil {
		return nil, err
	}
	if err := parent.EnsureActive(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d := &OrderDetail{
		clientID:      parent.ClientID(),
		orderID:       parent.ID(),
		startDate:     draft.StartDate,
		finishDate:    draft.FinishDate,
		startedAt:     draft.StartedAt,
		requirements:  draft.Requirements,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	total := draft.TotalSessions
	if total == 0 {
		total = services.NewSessionCalculator().TotalSessions(parent.Frequency().Int(), draft.StartDate, draft.FinishDate)
	}

	if err := errors.Join(
		d.setOrderID(parent.ID()),
		d.setProfessional(draft.ProfessionalID),
		d.setAmount(FieldCoinsurance, draft.Coinsurance),
		d.setAmount(FieldValue, draft.Value),
		d.setAmount(FieldCost, draft.Cost),
		d.setUpdatedBy(updatedBy),
	); err != nil {
		return nil, err
	}

	d.totalSessions = total
	d.sessions = draft.Sessions
	if err := d.checkInvariants(); err != nil {
		return nil, err
	}

	return d, nil
}

// Snapshot is the complete persisted state of an OrderDetail.
type Snapshot struct {
	ID             kernel.ID
	ClientID       kernel.ID
	OrderID        kernel.ID
	ProfessionalID *kernel.ID
	StartDate      time.Time
	FinishDate     time.Time
	TotalSessions  int
	Sessions       int
	Coinsurance    kernel.Amount
	Value          kernel.Amount
	Cost           kernel.Amount
	StartedAt      *time.Time
	FinishedAt     *time.Time
	Requirements   *string
	UpdatedBy      kernel.ID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RestoreOrderDetail rebuilds a detail from storage.
//
// Stored rows are trusted for the schedule window so that historical rows
// written before the window check existed can still be read; the numeric
// invariants are enforced.
func RestoreOrderDetail(s Snapshot) (*OrderDetail, error) {
	d := &OrderDetail{
		clientID:      s.ClientID,
		startDate:     s.StartDate,
		finishDate:    s.FinishDate,
		totalSessions: s.TotalSessions,
		sessions:      s.Sessions,
		startedAt:     s.StartedAt,
		finishedAt:    s.FinishedAt,
		requirements:  s.Requirements,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setOrderID(s.OrderID),
		d.setProfessional(s.ProfessionalID),
		d.setAmount(FieldCoinsurance, s.Coinsurance),
		d.setAmount(FieldValue, s.Value),
		d.setAmount(FieldCost, s.Cost),
		d.setUpdatedBy(s.UpdatedBy),
		checkSessions(s.TotalSessions, s.Sessions),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the detail was built through NewOrderDetail or RestoreOrderDetail.
func (d *OrderDetail) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrOrderDetailIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by storage.
func (d *OrderDetail) AssignID(id kernel.ID) error {
	if !d.id.IsZero() {
		return errs.NewObjectConflictError("detail_id", d.id, "already has an identifier")
	}
	return d.setID(id)
}

// ID returns the detail's identifier.
func (d *OrderDetail) ID() kernel.ID {
	return d.id
}

// ClientID returns the tenant that owns the detail.
func (d *OrderDetail) ClientID() kernel.ID {
	return d.clientID
}

// OrderID returns the parent order.
func (d *OrderDetail) OrderID() kernel.ID {
	return d.orderID
}

// ProfessionalID returns the assigned professional.
// Returns nil while the detail is pending acceptance.
func (d *OrderDetail) ProfessionalID() *kernel.ID {
	return d.professionalID
}

// StartDate returns the first day of the treatment window.
func (d *OrderDetail) StartDate() time.Time {
	return d.startDate
}

// FinishDate returns the last day of the treatment window.
func (d *OrderDetail) FinishDate() time.Time {
	return d.finishDate
}

// TotalSessions returns the number of sessions planned for the window.
func (d *OrderDetail) TotalSessions() int {
	return d.totalSessions
}

// Sessions returns the number of sessions already held.
func (d *OrderDetail) Sessions() int {
	return d.sessions
}

// Coinsurance returns the amount paid by the patient.
func (d *OrderDetail) Coinsurance() kernel.Amount {
	return d.coinsurance
}

// Value returns the unit price of the treatment.
func (d *OrderDetail) Value() kernel.Amount {
	return d.value
}

// Cost returns what the professional is paid per session.
func (d *OrderDetail) Cost() kernel.Amount {
	return d.cost
}

// StartedAt returns when the first session happened, if it did.
func (d *OrderDetail) StartedAt() *time.Time {
	return d.startedAt
}

// FinishedAt returns the finalization time.
// Returns nil while the detail is open.
func (d *OrderDetail) FinishedAt() *time.Time {
	return d.finishedAt
}

// Requirements returns special care notes for the professional.
func (d *OrderDetail) Requirements() *string {
	return d.requirements
}

// UpdatedBy returns the actor of the last write.
func (d *OrderDetail) UpdatedBy() kernel.ID {
	return d.updatedBy
}

// CreatedAt returns the creation time in UTC.
func (d *OrderDetail) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the time of the last write in UTC.
func (d *OrderDetail) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsFinalized reports whether the detail was finalized.
func (d *OrderDetail) IsFinalized() bool {
	return d.finishedAt != nil
}

// IsAssigned reports whether a professional accepted the detail.
func (d *OrderDetail) IsAssigned() bool {
	return d.professionalID != nil
}

// BelongsTo reports whether the detail is owned by the tenant clientID.
func (d *OrderDetail) BelongsTo(clientID kernel.ID) bool {
	return d.clientID == clientID
}

// NeedsValue reports whether the unit price must be resolved from the pricing authority.
func (d *OrderDetail) NeedsValue() bool {
	return d.value.IsZero()
}

// NeedsCost reports whether the professional cost must be resolved. A cost is
// only resolvable once a professional is known.
func (d *OrderDetail) NeedsCost() bool {
	return d.cost.IsZero() && d.professionalID != nil
}

// ResolveValue sets the unit price obtained from the pricing authority. It never
// overwrites a non-zero price.
func (d *OrderDetail) ResolveValue(value kernel.Amount) error {
	if !d.NeedsValue() {
		return nil
	}
	return d.setAmount(FieldValue, value)
}

// ResolveCost sets the professional cost obtained from the pricing authority. It
// never overwrites a non-zero cost.
func (d *OrderDetail) ResolveCost(cost kernel.Amount) error {
	if !d.NeedsCost() {
		return nil
	}
	return d.setAmount(FieldCost, cost)
}

// EnsureOpen returns a conflict error when the detail is finalized.
func (d *OrderDetail) EnsureOpen() error {
	if d.IsFinalized() {
		return errs.NewObjectConflictError("detail_id", d.id, "is already finalized")
	}
	return nil
}

// Finalize closes the detail at now. It is terminal: a second call fails with a
// conflict error.
func (d *OrderDetail) Finalize(updatedBy kernel.ID, now time.Time) error {
	if err := d.EnsureOpen(); err != nil {
		return err
	}
	if err := d.setUpdatedBy(updatedBy); err != nil {
		return err
	}

	finishedAt := now.UTC()
	d.finishedAt = &finishedAt
	d.updatedAt = finishedAt
	return nil
}

// EnsureAcceptable fails with not found when the detail is already taken or
// finalized. Acceptance addresses only open, unassigned details.
func (d *OrderDetail) EnsureAcceptable() error {
	if d.IsAssigned() || d.IsFinalized() {
		return errs.NewObjectNotFoundErrorWithCause("detail_id", d.id, errors.New("already taken or finalized"))
	}
	return nil
}

// Accept assigns the detail to professionalID.
func (d *OrderDetail) Accept(professionalID kernel.ID) error {
	if err := d.EnsureAcceptable(); err != nil {
		return err
	}
	if err := professionalID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldProfessional), err)
	}

	d.professionalID = professionalID.Ptr()
	d.updatedAt = time.Now().UTC()
	return nil
}

// EnsureSessionAddable checks that professionalID may consume one more session.
// A detail that is not assigned to professionalID or is finalized is not found;
// a detail whose sessions reached total_sessions fails validation.
func (d *OrderDetail) EnsureSessionAddable(professionalID kernel.ID) error {
	if d.professionalID == nil || *d.professionalID != professionalID || d.IsFinalized() {
		return errs.NewObjectNotFoundErrorWithCause("detail_id", d.id,
			fmt.Errorf("no open detail for professional %d", professionalID))
	}
	if d.sessions >= d.totalSessions {
		return errs.NewValueIsOutOfRangeError(string(FieldSessions), d.sessions+1, 0, d.totalSessions)
	}
	return nil
}

// AddSession consumes one session on behalf of professionalID.
func (d *OrderDetail) AddSession(professionalID kernel.ID) error {
	if err := d.EnsureSessionAddable(professionalID); err != nil {
		return err
	}
	d.sessions++
	d.updatedAt = time.Now().UTC()
	return nil
}

func (d *OrderDetail) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("detail_id", err)
	}
	d.id = id
	return nil
}

func (d *OrderDetail) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order_fk", err)
	}
	d.orderID = id
	return nil
}

func (d *OrderDetail) setProfessional(id *kernel.ID) error {
	if id == nil {
		d.professionalID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldProfessional), err)
	}
	d.professionalID = id.Ptr()
	return nil
}

func (d *OrderDetail) setAmount(field Field, a kernel.Amount) error {
	checked, err := kernel.NewAmount(string(field), a.Float64())
	if err != nil {
		return err
	}

	switch field {
	case FieldCoinsurance:
		d.coinsurance = checked
	case FieldValue:
		d.value = checked
	case FieldCost:
		d.cost = checked
	default:
		return errs.NewValueIsInvalidError(string(field))
	}
	return nil
}

func (d *OrderDetail) setUpdatedBy(updatedBy kernel.ID) error {
	if err := updatedBy.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldUpdatedBy), err)
	}
	d.updatedBy = updatedBy
	return nil
}

func (d *OrderDetail) checkInvariants() error {
	return errors.Join(
		checkWindow(d.startDate, d.finishDate),
		checkSessions(d.totalSessions, d.sessions),
	)
}

func checkWindow(start, finish time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError(string(FieldStartDate))
	}
	if finish.IsZero() {
		return errs.NewValueIsRequiredError(string(FieldFinishDate))
	}
	if finish.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause(string(FieldFinishDate),
			fmt.Errorf("%s is before start_date %s", finish.Format(time.DateOnly), start.Format(time.DateOnly)))
	}
	return nil
}

func checkSessions(total, sessions int) error {
	if total < 0 || total > MaxTotalSessions {
		return errs.NewValueIsOutOfRangeError(string(FieldTotalSessions), total, 0, MaxTotalSessions)
	}
	if sessions < 0 || sessions > total {
		return errs.NewValueIsOutOfRangeError(string(FieldSessions), sessions, 0, total)
	}
	return nil
}
