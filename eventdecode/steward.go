package eventdecode

import (
	"encoding/binary"

	"github.com/mr-tron/base58"
)

// Event is implemented by every decoded Steward event variant.
type Event interface {
	isEvent()
}

// RebalanceKind is the direction of a validator rebalance.
type RebalanceKind uint8

const (
	RebalanceNone RebalanceKind = iota
	RebalanceIncrease
	RebalanceDecrease
)

// DecreaseBreakdown is the decomposition of a decrease-direction rebalance,
// carried even when Kind is Increase or None (all-zero in that case).
type DecreaseBreakdown struct {
	Scoring      uint64
	Instant      uint64
	StakeDeposit uint64
	Total        uint64
}

// Rebalance is the only event variant with a synthesizable amount, used by
// the evaluator's event-threshold ladder.
type Rebalance struct {
	Vote             string
	Epoch            uint64
	Kind             RebalanceKind
	IncreaseLamports uint64
	Decrease         DecreaseBreakdown
}

func (Rebalance) isEvent() {}

// StateTransition records the Steward state-machine's epoch/slot and
// before/after state tags.
type StateTransition struct {
	Epoch    uint64
	Slot     uint64
	Previous uint8
	New      uint8
}

func (StateTransition) isEvent() {}

// The remaining variants are decoded for forward compatibility (so adding
// evaluation rules for them later requires no parser change) but are never
// evaluated today; each just retains its raw body.
type (
	DirectedRebalance        struct{ Body []byte }
	AutoAddValidator         struct{ Body []byte }
	AutoRemoveValidator      struct{ Body []byte }
	EpochMaintenance         struct{ Body []byte }
	DecreaseComponents       struct{ Body []byte }
	ScoreComponents          struct{ Body []byte }
	InstantUnstakeComponents struct{ Body []byte }
)

func (DirectedRebalance) isEvent()        {}
func (AutoAddValidator) isEvent()         {}
func (AutoRemoveValidator) isEvent()      {}
func (EpochMaintenance) isEvent()         {}
func (DecreaseComponents) isEvent()       {}
func (ScoreComponents) isEvent()          {}
func (InstantUnstakeComponents) isEvent() {}

// decodeRebalance parses vote(32) || epoch(u64) || kind(u8) ||
// increase_lamports(u64) || decrease{scoring,instant,stake_deposit,total
// (u64 each)}.
func decodeRebalance(body []byte) (Event, bool) {
	const wantLen = 32 + 8 + 1 + 8 + 8*4
	if len(body) < wantLen {
		return nil, false
	}
	vote := base58.Encode(body[0:32])
	epoch := binary.LittleEndian.Uint64(body[32:40])
	kind := RebalanceKind(body[40])
	increase := binary.LittleEndian.Uint64(body[41:49])
	decrease := DecreaseBreakdown{
		Scoring:      binary.LittleEndian.Uint64(body[49:57]),
		Instant:      binary.LittleEndian.Uint64(body[57:65]),
		StakeDeposit: binary.LittleEndian.Uint64(body[65:73]),
		Total:        binary.LittleEndian.Uint64(body[73:81]),
	}
	return Rebalance{
		Vote:             vote,
		Epoch:            epoch,
		Kind:             kind,
		IncreaseLamports: increase,
		Decrease:         decrease,
	}, true
}

// decodeStateTransition parses epoch(u64) || slot(u64) || previous(u8) ||
// new(u8).
func decodeStateTransition(body []byte) (Event, bool) {
	const wantLen = 8 + 8 + 1 + 1
	if len(body) < wantLen {
		return nil, false
	}
	return StateTransition{
		Epoch:    binary.LittleEndian.Uint64(body[0:8]),
		Slot:     binary.LittleEndian.Uint64(body[8:16]),
		Previous: body[16],
		New:      body[17],
	}, true
}
