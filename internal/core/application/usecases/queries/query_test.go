package queries_test

import (
	"testing"
	"time"

	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	page, err := queries.NewPage(0, 0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultLimit, page.Limit())
	assert.Equal(t, 0, page.Offset())

	page, err = queries.NewPage(25, 50)
	require.NoError(t, err)
	assert.Equal(t, 25, page.Limit())
	assert.Equal(t, 50, page.Offset())

	_, err = queries.NewPage(queries.MaxLimit+1, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewPage(-1, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewPage(10, -5)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.FindOrderQuery{}.Validate(), queries.ErrFindOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.FindOrdersQuery{}.Validate(), queries.ErrFindOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.FindOrphanedOrdersQuery{}.Validate(), queries.ErrFindOrphanedOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.FindOrderDetailQuery{}.Validate(), queries.ErrFindOrderDetailQueryIsNotConstructed)
	assert.ErrorIs(t, queries.FindOrderDetailsQuery{}.Validate(), queries.ErrFindOrderDetailsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.CountDetailsByCompanyQuery{}.Validate(),
		queries.ErrCountDetailsByCompanyQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetProfessionalDetailsQuery{}.Validate(),
		queries.ErrGetProfessionalDetailsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetProfessionalDetailQuery{}.Validate(),
		queries.ErrGetProfessionalDetailQueryIsNotConstructed)
	assert.ErrorIs(t, queries.FindPendingOrderDetailsQuery{}.Validate(),
		queries.ErrFindPendingOrderDetailsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.FindClaimQuery{}.Validate(), queries.ErrFindClaimQueryIsNotConstructed)
	assert.ErrorIs(t, queries.FindClaimsQuery{}.Validate(), queries.ErrFindClaimsQueryIsNotConstructed)
}

func TestQueryConstructors_RejectInvalidInput(t *testing.T) {
	cc := kernel.MustNewClientContext(10, "actor")

	_, err := queries.NewFindOrderQuery(kernel.ClientContext{}, 1)
	require.ErrorIs(t, err, kernel.ErrClientContextIsNotConstructed)

	_, err = queries.NewFindOrderQuery(cc, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	bad := kernel.ID(-3)
	_, err = queries.NewFindOrdersQuery(cc, queries.OrderCriteria{CompanyID: &bad}, queries.FirstPage())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewFindAllOrphanedOrdersQuery(time.Time{}, queries.FirstPage())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetProfessionalDetailQuery(1, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewFindPendingOrderDetailsQuery(0, 42, queries.FirstPage())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewCountDetailsByCompanyQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
