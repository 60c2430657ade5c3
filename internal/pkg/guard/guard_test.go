package guard_test

import (
	"errors"
	"testing"
	"time"

	"visadesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command must be created via its constructor")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		c := g

		require.NoError(t, c.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errWindowNotConstructed := errors.New("travelWindow must be created via newTravelWindow")

	type travelWindow struct {
		from  time.Time
		to    time.Time
		guard guard.ConstructorGuard
	}

	newTravelWindow := func(from, to time.Time) (travelWindow, error) {
		if to.Before(from) {
			return travelWindow{}, errors.New("window ends before it starts")
		}
		return travelWindow{from: from, to: to, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(w travelWindow) error {
		return w.guard.Validate(errWindowNotConstructed)
	}

	t.Run("constructor_output_validates", func(t *testing.T) {
		now := time.Date(2026, 10, 18, 1, 1, 0, 0, time.UTC)
		w, err := newTravelWindow(now, now.Add(48*time.Hour))

		require.NoError(t, err)
		require.NoError(t, validate(w))
	})

	t.Run("rejected_input_yields_zero_value", func(t *testing.T) {
		now := time.Date(2026, 10, 18, 1, 1, 0, 0, time.UTC)
		w, err := newTravelWindow(now, now.Add(-time.Hour))

		require.Error(t, err)
		assert.Equal(t, errWindowNotConstructed, validate(w))
	})
}
