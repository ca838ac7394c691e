// Package geyser implements the Bell's upstream streaming subscription:
// a gRPC client against a Geyser-style transaction/slot feed. No .proto
// file ships with this repository's reference material, so the wire
// contract is expressed directly as Go structs behind a small interface,
// letting a generated client be substituted later without touching the
// consumer in package bell.
package geyser

import (
	"context"
)

// Commitment is the finality level a subscription requests.
type Commitment int

const (
	CommitmentProcessed Commitment = iota
	CommitmentConfirmed
	CommitmentFinalized
)

// SubscribeRequest names which accounts/programs to filter transactions by
// and at which commitment level.
type SubscribeRequest struct {
	ProgramIDs []string
	Commitment Commitment
}

// SlotUpdate reports the current chain tip as seen by the upstream feed.
type SlotUpdate struct {
	Slot       uint64
	Commitment Commitment
}

// TransactionUpdate is one committed transaction as delivered by the
// upstream feed, already demultiplexed to a single transaction per update.
type TransactionUpdate struct {
	Slot        uint64
	Signature   [64]byte
	Success     bool
	AccountKeys []string

	OuterInstructions []CompiledInstruction
	InnerInstructions []CompiledInstruction
	LogMessages       []string
}

// CompiledInstruction mirrors txparser/ixdecode's wire shape; geyser owns
// the transport, not the decoding.
type CompiledInstruction struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

// Update is the sum type delivered on a subscription's channel: exactly one
// of Slot or Transaction is non-nil.
type Update struct {
	Slot        *SlotUpdate
	Transaction *TransactionUpdate
}

// Stream is a live subscription. Updates is closed when the stream ends:
// when the upstream finishes cleanly (Err then returns nil), fails, or the
// context passed to Subscribe is canceled (Err then reports the cause).
// Close does not by itself end delivery on Updates.
type Stream interface {
	Updates() <-chan Update
	Err() error
	Close() error
}

// Client opens subscriptions against an upstream Geyser-style endpoint.
type Client interface {
	Subscribe(ctx context.Context, req SubscribeRequest) (Stream, error)
	Close() error
}
