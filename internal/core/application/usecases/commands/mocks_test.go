package commands_test

import (
	"context"
	"time"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/orderdetail"
	"ordersvc/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, clientID, orderID kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, clientID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, fields []order.Field) error {
	args := m.Called(ctx, o, fields)
	return args.Error(0)
}

type MockOrderDetailRepository struct{ mock.Mock }

func (m *MockOrderDetailRepository) Add(ctx context.Context, d *orderdetail.OrderDetail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockOrderDetailRepository) Get(
	ctx context.Context, clientID, detailID kernel.ID,
) (*orderdetail.OrderDetail, error) {
	args := m.Called(ctx, clientID, detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderdetail.OrderDetail), args.Error(1)
}

func (m *MockOrderDetailRepository) GetUnscoped(ctx context.Context, detailID kernel.ID) (*orderdetail.OrderDetail, error) {
	args := m.Called(ctx, detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderdetail.OrderDetail), args.Error(1)
}

func (m *MockOrderDetailRepository) Update(
	ctx context.Context, d *orderdetail.OrderDetail, fields []orderdetail.Field,
) error {
	args := m.Called(ctx, d, fields)
	return args.Error(0)
}

func (m *MockOrderDetailRepository) Accept(ctx context.Context, detailID, professionalID kernel.ID) error {
	args := m.Called(ctx, detailID, professionalID)
	return args.Error(0)
}

func (m *MockOrderDetailRepository) IncrementSessions(ctx context.Context, detailID, professionalID kernel.ID) (bool, error) {
	args := m.Called(ctx, detailID, professionalID)
	return args.Bool(0), args.Error(1)
}

type MockClaimRepository struct{ mock.Mock }

func (m *MockClaimRepository) Add(ctx context.Context, c *claim.Claim) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClaimRepository) Get(ctx context.Context, clientID, claimID kernel.ID) (*claim.Claim, error) {
	args := m.Called(ctx, clientID, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*claim.Claim), args.Error(1)
}

func (m *MockClaimRepository) Update(ctx context.Context, c *claim.Claim, fields []claim.Field) error {
	args := m.Called(ctx, c, fields)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrderDetailRepository() ports.OrderDetailRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderDetailRepository)
}

func (m *MockUoW) ClaimRepository() ports.ClaimRepository {
	args := m.Called()
	return args.Get(0).(ports.ClaimRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockValidator struct{ mock.Mock }

func (m *MockValidator) ValidateCoordinator(ctx context.Context, cc kernel.ClientContext, refs order.References) error {
	args := m.Called(ctx, cc, refs)
	return args.Error(0)
}

func (m *MockValidator) ValidateProfessionalRelationship(ctx context.Context, clientID, professionalID kernel.ID) error {
	args := m.Called(ctx, clientID, professionalID)
	return args.Error(0)
}

func (m *MockValidator) ResolvePricing(
	ctx context.Context, cc kernel.ClientContext, refs order.References, d *orderdetail.OrderDetail,
) ([]orderdetail.Field, error) {
	args := m.Called(ctx, cc, refs, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderdetail.Field), args.Error(1)
}

// fixture wires a unit of work whose repository accessors always answer.
type fixture struct {
	orders  *MockOrderRepository
	details *MockOrderDetailRepository
	claims  *MockClaimRepository
	uow     *MockUoW
	factory *MockUoWFactory
	valid   *MockValidator
}

func newFixture() fixture {
	f := fixture{
		orders:  new(MockOrderRepository),
		details: new(MockOrderDetailRepository),
		claims:  new(MockClaimRepository),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
		valid:   new(MockValidator),
	}
	f.factory.On("Create").Return(f.uow).Maybe()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("OrderDetailRepository").Return(f.details).Maybe()
	f.uow.On("ClaimRepository").Return(f.claims).Maybe()
	return f
}

func (f fixture) assertExpectations(t mock.TestingT) {
	f.orders.AssertExpectations(t)
	f.details.AssertExpectations(t)
	f.claims.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.valid.AssertExpectations(t)
}

const (
	tenantID  kernel.ID = 10
	actorID   kernel.ID = 7
	orderID   kernel.ID = 100
	detailID  kernel.ID = 200
	claimID   kernel.ID = 300
	proID     kernel.ID = 42
	otherPro  kernel.ID = 43
	companyID kernel.ID = 1
)

var (
	testCC   = kernel.MustNewClientContext(int64(tenantID), "actor")
	testRefs = order.References{CompanyID: companyID, PatientID: 2, TreatmentID: 3}
	day      = 24 * time.Hour
)

func storedOrder(deleted bool) *order.Order {
	var deletedAt *time.Time
	if deleted {
		now := time.Now().UTC()
		deletedAt = &now
	}
	o, err := order.RestoreOrder(order.Snapshot{
		ID:          orderID,
		ClientID:    tenantID,
		CompanyID:   testRefs.CompanyID,
		PatientID:   testRefs.PatientID,
		TreatmentID: testRefs.TreatmentID,
		Frequency:   2,
		UpdatedBy:   actorID,
		DeletedAt:   deletedAt,
	})
	if err != nil {
		panic(err)
	}
	return o
}

func storedDetail(mutate func(*orderdetail.Snapshot)) *orderdetail.OrderDetail {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := orderdetail.Snapshot{
		ID:            detailID,
		ClientID:      tenantID,
		OrderID:       orderID,
		StartDate:     start,
		FinishDate:    start.Add(14 * day),
		TotalSessions: 4,
		Value:         50,
		UpdatedBy:     actorID,
	}
	if mutate != nil {
		mutate(&s)
	}
	d, err := orderdetail.RestoreOrderDetail(s)
	if err != nil {
		panic(err)
	}
	return d
}

func storedClaim(deleted bool) *claim.Claim {
	var deletedAt *time.Time
	if deleted {
		now := time.Now().UTC()
		deletedAt = &now
	}
	c, err := claim.RestoreClaim(claim.Snapshot{
		ID:           claimID,
		ClientID:     tenantID,
		DetailID:     detailID,
		Cause:        "patient absent",
		Urgency:      claim.Medium,
		ReportedDate: time.Now().UTC(),
		UpdatedBy:    actorID,
		DeletedAt:    deletedAt,
	})
	if err != nil {
		panic(err)
	}
	return c
}
