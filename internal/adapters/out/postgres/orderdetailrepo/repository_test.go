package orderdetailrepo_test

import (
	"testing"
	"time"

	"ordersvc/internal/adapters/out/postgres/orderdetailrepo"
	"ordersvc/internal/adapters/out/postgres/orderrepo"
	"ordersvc/internal/adapters/out/postgres/testdb"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/domain/model/orderdetail"
	"ordersvc/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const tenant kernel.ID = 10

func seedDetail(t *testing.T, db *gorm.DB, total int, professional *kernel.ID) *orderdetail.OrderDetail {
	t.Helper()
	ctx := t.Context()

	parent, err := order.NewOrder(tenant, order.References{CompanyID: 1, PatientID: 2, TreatmentID: 3}, 2, nil, 7)
	require.NoError(t, err)
	require.NoError(t, orderrepo.NewGormOrderRepository(db, testdb.NopTracker{}).Add(ctx, parent))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d, err := orderdetail.NewOrderDetail(parent, orderdetail.Draft{
		ProfessionalID: professional,
		StartDate:      start,
		FinishDate:     start.AddDate(0, 0, 14),
		TotalSessions:  total,
		Value:          50,
	}, 7)
	require.NoError(t, err)
	require.NoError(t, orderdetailrepo.NewGormOrderDetailRepository(db, testdb.NopTracker{}).Add(ctx, d))
	return d
}

func TestGormOrderDetailRepository_RoundTrip(t *testing.T) {
	db := testdb.SQLite(t)
	repo := orderdetailrepo.NewGormOrderDetailRepository(db, testdb.NopTracker{})
	d := seedDetail(t, db, 0, nil)

	found, err := repo.Get(t.Context(), tenant, d.ID())
	require.NoError(t, err)
	assert.Equal(t, d.OrderID(), found.OrderID())
	assert.Equal(t, 4, found.TotalSessions())
	assert.Equal(t, kernel.Amount(50), found.Value())
	assert.Nil(t, found.ProfessionalID())
	assert.True(t, d.StartDate().Equal(found.StartDate()))

	_, err = repo.Get(t.Context(), tenant+1, d.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	unscoped, err := repo.GetUnscoped(t.Context(), d.ID())
	require.NoError(t, err)
	assert.Equal(t, tenant, unscoped.ClientID())
}

func TestGormOrderDetailRepository_AcceptHasOneWinner(t *testing.T) {
	db := testdb.SQLite(t)
	repo := orderdetailrepo.NewGormOrderDetailRepository(db, testdb.NopTracker{})
	d := seedDetail(t, db, 0, nil)

	require.NoError(t, repo.Accept(t.Context(), d.ID(), 42))

	err := repo.Accept(t.Context(), d.ID(), 43)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "already taken or finalized")

	stored, err := repo.GetUnscoped(t.Context(), d.ID())
	require.NoError(t, err)
	require.NotNil(t, stored.ProfessionalID())
	assert.Equal(t, kernel.ID(42), *stored.ProfessionalID())
}

func TestGormOrderDetailRepository_IncrementSessionsStopsAtTotal(t *testing.T) {
	db := testdb.SQLite(t)
	repo := orderdetailrepo.NewGormOrderDetailRepository(db, testdb.NopTracker{})
	professional := kernel.ID(42)
	d := seedDetail(t, db, 2, &professional)

	for range 2 {
		updated, err := repo.IncrementSessions(t.Context(), d.ID(), professional)
		require.NoError(t, err)
		assert.True(t, updated)
	}

	updated, err := repo.IncrementSessions(t.Context(), d.ID(), professional)
	require.NoError(t, err)
	assert.False(t, updated)

	updated, err = repo.IncrementSessions(t.Context(), d.ID(), 43)
	require.NoError(t, err)
	assert.False(t, updated)

	stored, err := repo.GetUnscoped(t.Context(), d.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Sessions())
}

func TestGormOrderDetailRepository_UpdateAfterFinalizeIsConflict(t *testing.T) {
	db := testdb.SQLite(t)
	repo := orderdetailrepo.NewGormOrderDetailRepository(db, testdb.NopTracker{})
	d := seedDetail(t, db, 0, nil)

	stale, err := repo.Get(t.Context(), tenant, d.ID())
	require.NoError(t, err)

	require.NoError(t, d.Finalize(7, time.Now()))
	require.NoError(t, repo.Update(t.Context(), d,
		[]orderdetail.Field{orderdetail.FieldFinishedAt, orderdetail.FieldUpdatedBy}))

	requirements := "wheelchair access"
	result, err := stale.ApplyPatch(orderdetail.Patch{Requirements: &requirements}, order.Frequency(2), 7)
	require.NoError(t, err)

	err = repo.Update(t.Context(), stale, result.Fields)
	require.ErrorIs(t, err, errs.ErrObjectConflict)
}

func TestGormOrderDetailRepository_UpdateDoesNotReassignAcceptedDetail(t *testing.T) {
	db := testdb.SQLite(t)
	repo := orderdetailrepo.NewGormOrderDetailRepository(db, testdb.NopTracker{})
	d := seedDetail(t, db, 0, nil)

	stale, err := repo.Get(t.Context(), tenant, d.ID())
	require.NoError(t, err)
	require.Nil(t, stale.ProfessionalID())

	require.NoError(t, repo.Accept(t.Context(), d.ID(), 42))

	professional := kernel.ID(43)
	result, err := stale.ApplyPatch(orderdetail.Patch{ProfessionalID: &professional}, order.Frequency(2), 7)
	require.NoError(t, err)
	require.True(t, result.ProfessionalAssigned)

	err = repo.Update(t.Context(), stale, result.Fields)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "already taken or finalized")

	stored, err := repo.GetUnscoped(t.Context(), d.ID())
	require.NoError(t, err)
	require.NotNil(t, stored.ProfessionalID())
	assert.Equal(t, kernel.ID(42), *stored.ProfessionalID())
}
