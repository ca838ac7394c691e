// Package healthprobe implements periodic liveness checks for the Bell's
// external dependencies (the Solana RPC endpoint, the USD oracle),
// modeled on the well-known lnd "Observation" shape: a named check
// function run on a fixed interval with bounded retries before the
// dependency is reported unhealthy.
package healthprobe

import (
	"context"
	"time"

	"github.com/jito-foundation/bell/belllog"
)

var log = belllog.NewSubsystemLogger("HLTH")

// CheckFunc is one liveness probe against an external dependency.
type CheckFunc func(ctx context.Context) error

// Observation is a single named, periodic, retried health check.
type Observation struct {
	Name       string
	Check      CheckFunc
	Interval   time.Duration
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

// run executes Check once plus up to Retries retries (Retries+1 attempts in
// all), waiting RetryDelay between attempts, and returns the last error (or
// nil on any success).
func (o Observation) run(ctx context.Context) error {
	var lastErr error
	for attempt := 0; attempt <= o.Retries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, o.Timeout)
		lastErr = o.Check(attemptCtx)
		cancel()
		if lastErr == nil {
			return nil
		}
		if attempt < o.Retries {
			select {
			case <-time.After(o.RetryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}

// Monitor runs a set of Observations on their own tickers until ctx is
// canceled, reporting each transition between healthy and unhealthy via
// onStatus.
type Monitor struct {
	observations []Observation
	onStatus     func(name string, healthy bool)
}

// NewMonitor builds a Monitor for observations, invoking onStatus whenever
// a check's health status changes.
func NewMonitor(observations []Observation, onStatus func(name string, healthy bool)) *Monitor {
	return &Monitor{observations: observations, onStatus: onStatus}
}

// Start launches one goroutine per observation; it returns immediately.
// Every launched goroutine exits once ctx is canceled.
func (m *Monitor) Start(ctx context.Context) {
	for _, obs := range m.observations {
		go m.loop(ctx, obs)
	}
}

func (m *Monitor) loop(ctx context.Context, obs Observation) {
	ticker := time.NewTicker(obs.Interval)
	defer ticker.Stop()

	wasHealthy := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := obs.run(ctx)
			healthy := err == nil
			if healthy != wasHealthy {
				if !healthy {
					log.Warnf("%s became unhealthy: %v", obs.Name, err)
				} else {
					log.Infof("%s recovered", obs.Name)
				}
				m.onStatus(obs.Name, healthy)
			}
			wasHealthy = healthy
		}
	}
}
