package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"ordersvc/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("frequency")

		assert.Equal(t, "frequency", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: frequency", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("not between 1 and 7")
		err := errs.NewValueIsInvalidErrorWithCause("frequency", cause)

		assert.Equal(t, "frequency", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: frequency (cause: not between 1 and 7)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("frequency", 150, 1, 7)

		assert.Equal(t, "frequency", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 7, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is frequency, min value is 1, max value is 7", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("total_sessions", -5, 0, 100, cause)

		assert.Equal(t, "total_sessions", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is total_sessions, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("requirements", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("start_date")

		assert.Equal(t, "start_date", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: start_date", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("start_date", cause)

		assert.Equal(t, "start_date", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: start_date (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrObjectConflict)
		require.Error(t, errs.ErrUpstreamUnavailable)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "object is in conflicting state", errs.ErrObjectConflict.Error())
		assert.Equal(t, "upstream is unavailable", errs.ErrUpstreamUnavailable.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("frequency")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("frequency", 150, 1, 7)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("start_date")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		conflictErr := errs.NewObjectConflictError("detail", 7, "is already finalized")
		require.ErrorIs(t, conflictErr, errs.ErrObjectConflict)

		upstreamErr := errs.NewUpstreamUnavailableErrorWithCause("community.find.professional", errors.New("timeout"))
		require.ErrorIs(t, upstreamErr, errs.ErrUpstreamUnavailable)
	})
}

func TestObjectConflictError(t *testing.T) {
	t.Run("NewObjectConflictError", func(t *testing.T) {
		err := errs.NewObjectConflictError("order", 12, "is already deleted")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, 12, err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object is in conflicting state: order 12 is already deleted", err.Error())
		assert.Equal(t, errs.ErrObjectConflict, err.Unwrap())
	})

	t.Run("NewObjectConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("no rows affected")
		err := errs.NewObjectConflictErrorWithCause("detail", 3, "is already finalized", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object is in conflicting state: detail 3 is already finalized (cause: no rows affected)",
			err.Error())
	})
}

func TestUpstreamErrors(t *testing.T) {
	t.Run("NewUpstreamUnavailableError", func(t *testing.T) {
		err := errs.NewUpstreamUnavailableError("coordinator.validate.coordinator")

		assert.Equal(t, "coordinator.validate.coordinator", err.Topic)
		assert.Equal(t, "upstream is unavailable: coordinator.validate.coordinator", err.Error())
		assert.Equal(t, errs.ErrUpstreamUnavailable, err.Unwrap())
	})

	t.Run("NewUpstreamRejectedError sanitizes message", func(t *testing.T) {
		err := errs.NewUpstreamRejectedError("community.find.professional", 404, "relation\nnot found")

		assert.Equal(t, 404, err.Status)
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "relation not found")
		require.ErrorIs(t, err, errs.ErrUpstreamRejectedCall)
	})
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		kind     errs.Kind
		expected int
	}{
		{"nil", nil, "", 200},
		{"required", errs.NewValueIsRequiredError("start_date"), errs.KindValidation, 400},
		{"invalid", errs.NewValueIsInvalidError("frequency"), errs.KindValidation, 400},
		{"out of range", errs.NewValueIsOutOfRangeError("sessions", 5, 0, 4), errs.KindValidation, 400},
		{"not found", errs.NewObjectNotFoundError("order", 1), errs.KindNotFound, 404},
		{"conflict", errs.NewObjectConflictError("order", 1, "is already deleted"), errs.KindConflict, 409},
		{"upstream", errs.NewUpstreamUnavailableError("x"), errs.KindUpstreamUnavailable, 503},
		{"rejected", errs.NewUpstreamRejectedError("x", 400, "no"), errs.KindValidation, 400},
		{"rejected not found", errs.NewUpstreamRejectedError("x", 404, "no"), errs.KindNotFound, 404},
		{"wrapped", fmt.Errorf("create order: %w", errs.NewObjectNotFoundError("order", 1)), errs.KindNotFound, 404},
		{"unknown", errors.New("connection reset"), errs.KindInternal, 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, errs.KindOf(tc.err))
			assert.Equal(t, tc.expected, errs.StatusOf(tc.err))
		})
	}
}

func TestKindFromStatus(t *testing.T) {
	assert.Equal(t, errs.KindValidation, errs.KindFromStatus(400))
	assert.Equal(t, errs.KindNotFound, errs.KindFromStatus(404))
	assert.Equal(t, errs.KindConflict, errs.KindFromStatus(409))
	assert.Equal(t, errs.KindUpstreamUnavailable, errs.KindFromStatus(503))
	assert.Equal(t, errs.KindInternal, errs.KindFromStatus(500))
}
