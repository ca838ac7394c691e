// Package metrics owns the Bell's epoch-aligned counters: transactions
// seen, and notification outcomes per sink call. A rollover emits exactly one
// datapoint carrying the previous generation's counters (P4) and resets to
// a fresh, zeroed generation.
package metrics

import "sync"

// Rollup is one epoch generation's accumulated counters.
type Rollup struct {
	Epoch        uint64
	TxCount      uint64
	SuccessCount uint64
	FailCount    uint64
}

// Tracker owns the current epoch-rollup generation. It is intended to be
// driven exclusively by the stream consumer goroutine; Snapshot is safe to
// call concurrently (e.g. from the Prometheus scrape handler).
type Tracker struct {
	mu      sync.Mutex
	current Rollup
}

// NewTracker starts a fresh tracker at startEpoch, typically initialized
// from an RPC-reported current epoch at startup.
func NewTracker(startEpoch uint64) *Tracker {
	return &Tracker{current: Rollup{Epoch: startEpoch}}
}

// IncTx increments the transaction-seen counter. Per Scenario 4, this
// happens on arrival of a transaction update regardless of its execution
// status or decode outcome.
func (t *Tracker) IncTx() {
	t.mu.Lock()
	t.current.TxCount++
	t.mu.Unlock()
}

// IncSuccess increments the notification-success counter.
func (t *Tracker) IncSuccess() {
	t.mu.Lock()
	t.current.SuccessCount++
	t.mu.Unlock()
}

// IncFail increments the notification-failure counter.
func (t *Tracker) IncFail() {
	t.mu.Lock()
	t.current.FailCount++
	t.mu.Unlock()
}

// Snapshot returns a copy of the current generation's counters.
func (t *Tracker) Snapshot() Rollup {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Observe computes the epoch for slot and, if it differs from the current
// generation's epoch, returns the previous generation (for datapoint
// emission) and resets to a fresh zeroed generation at the new epoch.
// rolledOver is false (and previous is the zero Rollup) when slot still
// belongs to the current epoch.
func (t *Tracker) Observe(slot, slotsPerEpoch uint64) (rolledOver bool, previous Rollup) {
	if slotsPerEpoch == 0 {
		return false, Rollup{}
	}
	epoch := slot / slotsPerEpoch

	t.mu.Lock()
	defer t.mu.Unlock()

	if epoch == t.current.Epoch {
		return false, Rollup{}
	}

	previous = t.current
	t.current = Rollup{Epoch: epoch}
	return true, previous
}
