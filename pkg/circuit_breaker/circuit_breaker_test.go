package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/booklendiverse/booklend-service/pkg/circuit_breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	errService := errors.New("service error")
	failingService := func() error {
		return errService
	}

	cb := circuit_breaker.New(10, 100*time.Millisecond, 0.30, 5)

	// healthy traffic keeps the breaker closed
	for i := 0; i < 80; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// enough failures trip it open
	sawOpen := false
	for i := 0; i < 40; i++ {
		if err := cb.Call(failingService); errors.Is(err, circuit_breaker.ErrOpenCB) {
			sawOpen = true
		}
	}
	require.True(t, sawOpen)
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	// after the timeout it probes half-open and recovers on successes
	time.Sleep(150 * time.Millisecond)
	for i := 0; i < 15; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// a failure while recovering snaps it back open
	sawOpen = false
	for i := 0; i < 40; i++ {
		if err := cb.Call(failingService); errors.Is(err, circuit_breaker.ErrOpenCB) {
			sawOpen = true
		}
	}
	require.True(t, sawOpen)
}
