// Package sinks implements the Bell's external notification adapters:
// Telegram, Discord, two distinct Slack webhooks, and a social/Twitter
// poster. Every sink shares the same contract: dispatch one rendered
// message, report whether it was actually sent, skipped (missing
// credentials or a required field), or failed.
package sinks

import (
	"context"
	"net/http"
	"time"
)

// defaultTimeout is the mandated 30-second default for every outbound
// sink HTTP call.
const defaultTimeout = 30 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}

// Message is the sink-agnostic payload the evaluator renders and hands to
// every destination.
type Message struct {
	Description string
	// Amount and Unit are nil/empty when the action being notified has
	// no natural amount (e.g. a simple event rule).
	Amount      *float64
	Unit        string
	Signature   string
	ExplorerURL string
}

// Outcome distinguishes an actually-dispatched call from one that was a
// silent no-op, so the dispatcher's success/fail counters only ever count
// real attempts.
type Outcome int

const (
	// OutcomeSent means the sink attempted delivery and the upstream
	// service accepted it (2xx).
	OutcomeSent Outcome = iota
	// OutcomeSkipped means the sink is unconfigured (no credentials) or
	// the message was missing a field this sink requires. Counts as
	// neither success nor failure.
	OutcomeSkipped
	// OutcomeFailed means the sink attempted delivery and the upstream
	// service rejected it, or the request could not be sent at all.
	OutcomeFailed
)

// Sink is implemented by every destination adapter.
type Sink interface {
	Send(ctx context.Context, msg Message) (Outcome, error)
}
