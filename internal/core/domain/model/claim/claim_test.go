package claim_test

import (
	"testing"
	"time"

	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reported = time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

func newClaim(t *testing.T) *claim.Claim {
	t.Helper()
	c, err := claim.NewClaim(1, 2, "missed session", claim.High, reported, 3)
	require.NoError(t, err)
	require.NoError(t, c.AssignID(4))
	return c
}

func TestNewClaim(t *testing.T) {
	c := newClaim(t)

	require.NoError(t, c.Validate())
	assert.Equal(t, kernel.ID(4), c.ID())
	assert.Equal(t, kernel.ID(1), c.ClientID())
	assert.Equal(t, kernel.ID(2), c.DetailID())
	assert.Equal(t, "missed session", c.Cause())
	assert.Equal(t, claim.High, c.Urgency())
	assert.Equal(t, reported, c.ReportedDate())
	assert.False(t, c.IsDeleted())

	_, err := claim.NewClaim(1, 0, "  ", "urgent", time.Time{}, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detail_fk")
	assert.Contains(t, err.Error(), "cause")
	assert.Contains(t, err.Error(), "urgency")
	assert.Contains(t, err.Error(), "reported_date")
}

func TestParseUrgency(t *testing.T) {
	u, err := claim.ParseUrgency(" Critical ")
	require.NoError(t, err)
	assert.Equal(t, claim.Critical, u)

	_, err = claim.ParseUrgency("urgent")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestClaim_ApplyPatch(t *testing.T) {
	c := newClaim(t)
	urgency := claim.Low
	cause := "late arrival"

	fields, err := c.ApplyPatch(claim.Patch{Cause: &cause, Urgency: &urgency}, 9)

	require.NoError(t, err)
	assert.Equal(t, []claim.Field{claim.FieldCause, claim.FieldUrgency, claim.FieldUpdatedBy}, fields)
	assert.Equal(t, "late arrival", c.Cause())
	assert.Equal(t, claim.Low, c.Urgency())

	bad := claim.Urgency("x")
	_, err = c.ApplyPatch(claim.Patch{Urgency: &bad}, 9)
	require.Error(t, err)
	assert.Equal(t, claim.Low, c.Urgency())
}

func TestClaim_Delete(t *testing.T) {
	c := newClaim(t)
	now := time.Now()

	require.NoError(t, c.Delete(5, now))
	assert.True(t, c.IsDeleted())

	assert.ErrorIs(t, c.Delete(5, now), errs.ErrObjectConflict)

	cause := "x"
	_, err := c.ApplyPatch(claim.Patch{Cause: &cause}, 5)
	assert.ErrorIs(t, err, errs.ErrObjectConflict)
}

func TestRestoreClaim(t *testing.T) {
	c, err := claim.RestoreClaim(claim.Snapshot{
		ID: 1, ClientID: 2, DetailID: 3, Cause: "c", Urgency: claim.Medium, ReportedDate: reported, UpdatedBy: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, claim.Medium, c.Urgency())

	var zero claim.Claim
	assert.ErrorIs(t, zero.Validate(), claim.ErrClaimIsNotConstructed)
}
