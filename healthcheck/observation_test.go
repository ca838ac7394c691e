package healthprobe

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestObservationRunSucceedsWithoutRetry(t *testing.T) {
	calls := 0
	obs := Observation{
		Name:    "test",
		Timeout: time.Second,
		Check: func(ctx context.Context) error {
			calls++
			return nil
		},
	}
	require.NoError(t, obs.run(context.Background()))
	require.Equal(t, 1, calls)
}

func TestObservationRunRetriesThenFails(t *testing.T) {
	calls := 0
	obs := Observation{
		Name:       "test",
		Timeout:    time.Second,
		Retries:    2,
		RetryDelay: time.Millisecond,
		Check: func(ctx context.Context) error {
			calls++
			return errors.New("down")
		},
	}
	err := obs.run(context.Background())
	require.Error(t, err)
	require.Equal(t, 3, calls)
}

func TestMonitorReportsStatusTransition(t *testing.T) {
	var mu sync.Mutex
	var transitions []bool

	healthy := true
	obs := Observation{
		Name:     "test",
		Interval: 5 * time.Millisecond,
		Timeout:  time.Second,
		Check: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			if healthy {
				return nil
			}
			return errors.New("down")
		},
	}

	m := NewMonitor([]Observation{obs}, func(name string, isHealthy bool) {
		mu.Lock()
		transitions = append(transitions, isHealthy)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	time.Sleep(10 * time.Millisecond)
	mu.Lock()
	healthy = false
	mu.Unlock()

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.Contains(t, transitions, false)
}
