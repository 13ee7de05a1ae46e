package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/campuslib/circulation-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	errService := errors.New("service error")
	ok := func() error { return nil }
	fail := func() error { return errService }

	t.Run("stays closed on successes", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, 50*time.Millisecond, 0.3, 2)
		for i := 0; i < 50; i++ {
			require.NoError(t, cb.Call(ok))
		}
	})

	t.Run("opens after failure percentile and fails fast", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, time.Minute, 0.3, 2)
		for i := 0; i < 3; i++ {
			require.ErrorIs(t, cb.Call(fail), errService)
		}
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)
	})

	t.Run("recovers through half-open", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, 20*time.Millisecond, 0.3, 2)
		for i := 0; i < 3; i++ {
			require.ErrorIs(t, cb.Call(fail), errService)
		}
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)

		time.Sleep(30 * time.Millisecond)
		// half-open now, successes close it again
		for i := 0; i < 5; i++ {
			require.NoError(t, cb.Call(ok))
		}
		require.NoError(t, cb.Call(ok))
	})

	t.Run("half-open failure reopens", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, 20*time.Millisecond, 0.3, 2)
		for i := 0; i < 3; i++ {
			require.ErrorIs(t, cb.Call(fail), errService)
		}
		time.Sleep(30 * time.Millisecond)
		require.ErrorIs(t, cb.Call(fail), errService)
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)
	})
}
