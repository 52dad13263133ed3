package queries_test

import (
	"context"
	"testing"
	"time"

	"ordersvc/internal/adapters/out/postgres/claimrepo"
	"ordersvc/internal/adapters/out/postgres/orderdetailrepo"
	"ordersvc/internal/adapters/out/postgres/orderrepo"
	"ordersvc/internal/adapters/out/postgres/testdb"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/orderdetail"
	"ordersvc/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockRelationshipValidator struct {
	mock.Mock
}

func (m *MockRelationshipValidator) ValidateProfessionalRelationship(
	ctx context.Context, clientID, professionalID kernel.ID,
) error {
	args := m.Called(ctx, clientID, professionalID)
	return args.Error(0)
}

const (
	tenant      kernel.ID = 10
	otherTenant kernel.ID = 11
	proID       kernel.ID = 42
)

// QueryHandlersTestSuite seeds one dataset and runs every read model against it:
//
//	tenant 10: liveOrder (company 1) with open, assigned and finalized details
//	           deletedOrder (company 2), orphanOrder (company 1, no details)
//	           one live and one deleted claim on the open detail
//	tenant 11: foreignOrder (company 1) with one open detail
type QueryHandlersTestSuite struct {
	suite.Suite
	db *gorm.DB

	liveOrder, deletedOrder, orphanOrder, foreignOrder *order.Order

	openDetail, assignedDetail, finalizedDetail, foreignDetail *orderdetail.OrderDetail

	liveClaim, deletedClaim *claim.Claim
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.db = testdb.SQLite(suite.T())
	ctx := suite.T().Context()
	orders := orderrepo.NewGormOrderRepository(suite.db, testdb.NopTracker{})
	details := orderdetailrepo.NewGormOrderDetailRepository(suite.db, testdb.NopTracker{})
	claims := claimrepo.NewGormClaimRepository(suite.db, testdb.NopTracker{})

	suite.liveOrder = suite.addOrder(orders, tenant, 1)
	suite.deletedOrder = suite.addOrder(orders, tenant, 2)
	suite.orphanOrder = suite.addOrder(orders, tenant, 1)
	suite.foreignOrder = suite.addOrder(orders, otherTenant, 1)

	suite.Require().NoError(suite.deletedOrder.Delete(7, time.Now()))
	suite.Require().NoError(orders.Update(ctx, suite.deletedOrder,
		[]order.Field{order.FieldDeletedAt, order.FieldUpdatedBy}))

	suite.openDetail = suite.addDetail(details, suite.liveOrder)
	suite.assignedDetail = suite.addDetail(details, suite.liveOrder)
	suite.finalizedDetail = suite.addDetail(details, suite.liveOrder)
	suite.foreignDetail = suite.addDetail(details, suite.foreignOrder)

	suite.Require().NoError(details.Accept(ctx, suite.assignedDetail.ID(), proID))
	suite.Require().NoError(suite.finalizedDetail.Finalize(7, time.Now()))
	suite.Require().NoError(details.Update(ctx, suite.finalizedDetail,
		[]orderdetail.Field{orderdetail.FieldFinishedAt, orderdetail.FieldUpdatedBy}))

	suite.liveClaim = suite.addClaim(claims, suite.openDetail)
	suite.deletedClaim = suite.addClaim(claims, suite.openDetail)
	suite.Require().NoError(suite.deletedClaim.Delete(7, time.Now()))
	suite.Require().NoError(claims.Update(ctx, suite.deletedClaim,
		[]claim.Field{claim.FieldDeletedAt, claim.FieldUpdatedBy}))
}

func (suite *QueryHandlersTestSuite) addOrder(repo *orderrepo.GormOrderRepository, client, company kernel.ID) *order.Order {
	o, err := order.NewOrder(client, order.References{CompanyID: company, PatientID: 2, TreatmentID: 3}, 2, nil, 7)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(suite.T().Context(), o))
	return o
}

func (suite *QueryHandlersTestSuite) addDetail(
	repo *orderdetailrepo.GormOrderDetailRepository, parent *order.Order,
) *orderdetail.OrderDetail {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d, err := orderdetail.NewOrderDetail(parent, orderdetail.Draft{
		StartDate:  start,
		FinishDate: start.AddDate(0, 0, 14),
		Value:      50,
	}, 7)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(suite.T().Context(), d))
	return d
}

func (suite *QueryHandlersTestSuite) addClaim(repo *claimrepo.GormClaimRepository, d *orderdetail.OrderDetail) *claim.Claim {
	c, err := claim.NewClaim(d.ClientID(), d.ID(), "late arrival", claim.Medium, time.Now().UTC(), 7)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(suite.T().Context(), c))
	return c
}

func (suite *QueryHandlersTestSuite) cc(client kernel.ID) kernel.ClientContext {
	return kernel.MustNewClientContext(client.Int64(), "actor")
}

func (suite *QueryHandlersTestSuite) page(limit, offset int) queries.Page {
	p, err := queries.NewPage(limit, offset)
	suite.Require().NoError(err)
	return p
}

func orderIDs(orders []queries.OrderResponse) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}
	return ids
}

func detailIDs(details []queries.OrderDetailResponse) []int64 {
	ids := make([]int64, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.DetailID)
	}
	return ids
}

func (suite *QueryHandlersTestSuite) TestFindOrder() {
	handler := queries.NewFindOrderQueryHandler(suite.db)

	query, err := queries.NewFindOrderQuery(suite.cc(tenant), suite.liveOrder.ID())
	suite.Require().NoError(err)
	resp, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal(suite.liveOrder.ID().Int64(), resp.OrderID)
	suite.Equal(int64(1), resp.CompanyID)
	suite.Equal(2, resp.Frequency)

	query, err = queries.NewFindOrderQuery(suite.cc(otherTenant), suite.liveOrder.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	query, err = queries.NewFindOrderQuery(suite.cc(tenant), suite.deletedOrder.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestFindOrders() {
	handler := queries.NewFindOrdersQueryHandler(suite.db)
	run := func(cc kernel.ClientContext, criteria queries.OrderCriteria, page queries.Page) []int64 {
		query, err := queries.NewFindOrdersQuery(cc, criteria, page)
		suite.Require().NoError(err)
		orders, err := handler.Handle(suite.T().Context(), query)
		suite.Require().NoError(err)
		return orderIDs(orders)
	}

	live, deleted, orphan := suite.liveOrder.ID().Int64(), suite.deletedOrder.ID().Int64(), suite.orphanOrder.ID().Int64()

	suite.Equal([]int64{live, orphan}, run(suite.cc(tenant), queries.OrderCriteria{}, queries.FirstPage()))
	suite.Equal([]int64{live, deleted, orphan},
		run(suite.cc(tenant), queries.OrderCriteria{IncludeDeleted: true}, queries.FirstPage()))
	suite.Equal([]int64{deleted},
		run(suite.cc(tenant), queries.OrderCriteria{CompanyID: kernel.ID(2).Ptr(), IncludeDeleted: true}, queries.FirstPage()))
	suite.Equal([]int64{deleted},
		run(suite.cc(tenant), queries.OrderCriteria{IncludeDeleted: true}, suite.page(1, 1)))

	suite.Equal([]int64{suite.foreignOrder.ID().Int64()},
		run(suite.cc(otherTenant), queries.OrderCriteria{CompanyID: kernel.ID(1).Ptr()}, queries.FirstPage()))
}

func (suite *QueryHandlersTestSuite) TestFindOrphanedOrders() {
	handler := queries.NewFindOrphanedOrdersQueryHandler(suite.db)
	cutoff := time.Now().Add(time.Minute)

	query, err := queries.NewFindOrphanedOrdersQuery(suite.cc(tenant), cutoff, queries.FirstPage())
	suite.Require().NoError(err)
	orders, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal([]int64{suite.orphanOrder.ID().Int64()}, orderIDs(orders))

	query, err = queries.NewFindAllOrphanedOrdersQuery(cutoff, queries.FirstPage())
	suite.Require().NoError(err)
	orders, err = handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal([]int64{suite.orphanOrder.ID().Int64()}, orderIDs(orders))

	query, err = queries.NewFindAllOrphanedOrdersQuery(time.Now().Add(-time.Hour), queries.FirstPage())
	suite.Require().NoError(err)
	orders, err = handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *QueryHandlersTestSuite) TestFindOrderDetail() {
	handler := queries.NewFindOrderDetailQueryHandler(suite.db)

	query, err := queries.NewFindOrderDetailQuery(suite.cc(tenant), suite.finalizedDetail.ID())
	suite.Require().NoError(err)
	resp, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.NotNil(resp.FinishedAt)
	suite.Equal(4, resp.TotalSessions)
	suite.InDelta(50.0, resp.Value, 0.001)

	query, err = queries.NewFindOrderDetailQuery(suite.cc(otherTenant), suite.openDetail.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestFindOrderDetails() {
	handler := queries.NewFindOrderDetailsQueryHandler(suite.db)

	query, err := queries.NewFindOrderDetailsQuery(suite.cc(tenant), queries.OrderDetailCriteria{}, queries.FirstPage())
	suite.Require().NoError(err)
	details, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal([]int64{suite.openDetail.ID().Int64(), suite.assignedDetail.ID().Int64()}, detailIDs(details))

	query, err = queries.NewFindOrderDetailsQuery(suite.cc(tenant),
		queries.OrderDetailCriteria{ProfessionalID: proID.Ptr()}, queries.FirstPage())
	suite.Require().NoError(err)
	details, err = handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal([]int64{suite.assignedDetail.ID().Int64()}, detailIDs(details))
}

func (suite *QueryHandlersTestSuite) TestCountDetailsByCompany() {
	handler := queries.NewCountDetailsByCompanyQueryHandler(suite.db)

	query, err := queries.NewCountDetailsByCompanyQuery(1)
	suite.Require().NoError(err)
	total, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)

	query, err = queries.NewCountDetailsByCompanyQuery(2)
	suite.Require().NoError(err)
	total, err = handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Zero(total)
}

func (suite *QueryHandlersTestSuite) TestProfessionalDetails() {
	listQuery, err := queries.NewGetProfessionalDetailsQuery(proID, queries.FirstPage())
	suite.Require().NoError(err)
	details, err := queries.NewGetProfessionalDetailsQueryHandler(suite.db).Handle(suite.T().Context(), listQuery)
	suite.Require().NoError(err)
	suite.Equal([]int64{suite.assignedDetail.ID().Int64()}, detailIDs(details))

	handler := queries.NewGetProfessionalDetailQueryHandler(suite.db)
	query, err := queries.NewGetProfessionalDetailQuery(suite.assignedDetail.ID(), proID)
	suite.Require().NoError(err)
	resp, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Require().NotNil(resp.ProfessionalID)
	suite.Equal(proID.Int64(), *resp.ProfessionalID)

	query, err = queries.NewGetProfessionalDetailQuery(suite.assignedDetail.ID(), proID+1)
	suite.Require().NoError(err)
	_, err = handler.Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestFindPendingOrderDetails() {
	validator := &MockRelationshipValidator{}
	handler := queries.NewFindPendingOrderDetailsQueryHandler(suite.db, validator)
	ctx := suite.T().Context()

	validator.On("ValidateProfessionalRelationship", ctx, tenant, proID).Return(nil).Once()
	query, err := queries.NewFindPendingOrderDetailsQuery(tenant, proID, queries.FirstPage())
	suite.Require().NoError(err)
	details, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal([]int64{suite.openDetail.ID().Int64()}, detailIDs(details))

	rejected := errs.NewValueIsInvalidError("professional_id")
	validator.On("ValidateProfessionalRelationship", ctx, otherTenant, proID).Return(rejected).Once()
	query, err = queries.NewFindPendingOrderDetailsQuery(otherTenant, proID, queries.FirstPage())
	suite.Require().NoError(err)
	details, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Nil(details)

	validator.AssertExpectations(suite.T())
}

func (suite *QueryHandlersTestSuite) TestClaims() {
	one := queries.NewFindClaimQueryHandler(suite.db)
	query, err := queries.NewFindClaimQuery(suite.cc(tenant), suite.liveClaim.ID())
	suite.Require().NoError(err)
	resp, err := one.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal("medium", resp.Urgency)
	suite.Equal(suite.openDetail.ID().Int64(), resp.DetailID)

	query, err = queries.NewFindClaimQuery(suite.cc(tenant), suite.deletedClaim.ID())
	suite.Require().NoError(err)
	_, err = one.Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	all := queries.NewFindClaimsQueryHandler(suite.db)
	listQuery, err := queries.NewFindClaimsQuery(suite.cc(tenant),
		queries.ClaimCriteria{DetailID: suite.openDetail.ID().Ptr()}, queries.FirstPage())
	suite.Require().NoError(err)
	claims, err := all.Handle(suite.T().Context(), listQuery)
	suite.Require().NoError(err)
	suite.Len(claims, 1)

	listQuery, err = queries.NewFindClaimsQuery(suite.cc(tenant),
		queries.ClaimCriteria{IncludeDeleted: true}, queries.FirstPage())
	suite.Require().NoError(err)
	claims, err = all.Handle(suite.T().Context(), listQuery)
	suite.Require().NoError(err)
	suite.Len(claims, 2)

	listQuery, err = queries.NewFindClaimsQuery(suite.cc(otherTenant),
		queries.ClaimCriteria{IncludeDeleted: true}, queries.FirstPage())
	suite.Require().NoError(err)
	claims, err = all.Handle(suite.T().Context(), listQuery)
	suite.Require().NoError(err)
	suite.Empty(claims)
}

func TestQueryHandlersSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
