package guard_test

import (
	"errors"
	"sync"
	"testing"

	"ordersvc/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When / Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded mirrors how commands embed the guard.
func TestConstructorGuardEmbedded(t *testing.T) {
	errNotConstructed := errors.New("AcceptCommand must be created via NewAcceptCommand")

	type acceptCommand struct {
		detailID int64
		guard    guard.ConstructorGuard
	}

	newAcceptCommand := func(detailID int64) (acceptCommand, error) {
		if detailID <= 0 {
			return acceptCommand{}, errors.New("detailID must be positive")
		}
		return acceptCommand{detailID: detailID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed", func(t *testing.T) {
		cmd, err := newAcceptCommand(10)
		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
		assert.Equal(t, int64(10), cmd.detailID)
	})

	t.Run("literal_bypasses_constructor", func(t *testing.T) {
		cmd := acceptCommand{detailID: 10}
		assert.ErrorIs(t, cmd.guard.Validate(errNotConstructed), errNotConstructed)
	})

	t.Run("constructor_rejects_invalid_input", func(t *testing.T) {
		_, err := newAcceptCommand(0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
