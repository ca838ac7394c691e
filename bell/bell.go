// Package bell implements the Bell's stream-consumer supervisor: a single
// subscription against the upstream feed, serialized per-transaction
// evaluation, and epoch-aligned metrics rollup. Its lifecycle shape
// (atomic started/shutdown flags, a sync.WaitGroup, and a quit channel
// closed by Stop) is modeled directly on this repository's teacher's
// rpcServer and ChainNotifier patterns.
package bell

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/jito-foundation/bell/belllog"
	"github.com/jito-foundation/bell/berr"
	"github.com/jito-foundation/bell/config"
	"github.com/jito-foundation/bell/evaluator"
	"github.com/jito-foundation/bell/geyser"
	"github.com/jito-foundation/bell/ixdecode"
	"github.com/jito-foundation/bell/metrics"
	"github.com/jito-foundation/bell/txparser"
)

var log = belllog.NewSubsystemLogger("BELL")

// Bell owns the subscription, the evaluator, and the epoch-rollup tracker
// for the lifetime of one run.
type Bell struct {
	started  int32
	shutdown int32

	geyser        geyser.Client
	evaluator     *evaluator.Evaluator
	tracker       *metrics.Tracker
	exporter      *metrics.Exporter
	slotsPerEpoch uint64
	programIDs    []string

	wg   sync.WaitGroup
	quit chan struct{}
}

// New builds a Bell. slotsPerEpoch must be queried from the RPC client at
// startup (getEpochInfo) and passed in; it is treated as fixed for the
// lifetime of the process.
func New(
	client geyser.Client,
	eval *evaluator.Evaluator,
	tracker *metrics.Tracker,
	exporter *metrics.Exporter,
	slotsPerEpoch uint64,
	programIDs []string,
) *Bell {
	return &Bell{
		geyser:        client,
		evaluator:     eval,
		tracker:       tracker,
		exporter:      exporter,
		slotsPerEpoch: slotsPerEpoch,
		programIDs:    programIDs,
		quit:          make(chan struct{}),
	}
}

// Start opens the upstream subscription and launches the consumer loop.
// Calling Start more than once is a no-op.
func (b *Bell) Start(ctx context.Context) error {
	if atomic.AddInt32(&b.started, 1) != 1 {
		return nil
	}

	stream, err := b.geyser.Subscribe(ctx, geyser.SubscribeRequest{
		ProgramIDs: b.programIDs,
		Commitment: geyser.CommitmentConfirmed,
	})
	if err != nil {
		return berr.New(berr.Subscription, err)
	}

	b.wg.Add(1)
	go b.consume(ctx, stream)
	return nil
}

// Stop signals the consumer loop to exit and waits for it to finish.
// Calling Stop more than once is a no-op.
func (b *Bell) Stop() error {
	if atomic.AddInt32(&b.shutdown, 1) != 1 {
		return nil
	}
	close(b.quit)
	b.wg.Wait()
	return nil
}

// consume is the sole owner of epoch-rollup state; it runs until the quit
// channel is closed or the upstream stream ends.
func (b *Bell) consume(ctx context.Context, stream geyser.Stream) {
	defer b.wg.Done()
	defer stream.Close()

	for {
		select {
		case <-b.quit:
			return

		case update, ok := <-stream.Updates():
			if !ok {
				if err := stream.Err(); err != nil {
					log.Errorf("upstream stream ended: %v", err)
				} else {
					log.Infof("upstream stream closed cleanly")
				}
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bell) handleUpdate(ctx context.Context, update geyser.Update) {
	if update.Slot != nil {
		b.observeSlot(update.Slot.Slot)
		return
	}
	if update.Transaction != nil {
		b.handleTransaction(ctx, update.Transaction)
	}
}

// observeSlot drives the epoch-boundary detection: a rollover emits one
// structured log line carrying the previous generation's counters, and the
// tracker resets for the new epoch (P4). The Prometheus exporter is not
// touched here; its counters are cumulative and never reset.
func (b *Bell) observeSlot(slot uint64) {
	rolledOver, previous := b.tracker.Observe(slot, b.slotsPerEpoch)
	if !rolledOver {
		return
	}
	log.Infof("epoch %d rollup: tx=%d success=%d fail=%d",
		previous.Epoch, previous.TxCount, previous.SuccessCount, previous.FailCount)
}

// handleTransaction counts the arrival unconditionally (Scenario 4), then
// parses and evaluates it. A decode or evaluation failure never blocks the
// next transaction.
func (b *Bell) handleTransaction(ctx context.Context, tx *geyser.TransactionUpdate) {
	b.tracker.IncTx()
	if b.exporter != nil {
		b.exporter.ObserveTx(b.tracker.Snapshot().Epoch)
	}

	parsed := txparser.Parse(toRawTransaction(tx))
	b.evaluator.EvaluateTransaction(ctx, parsed)
}

func toRawTransaction(tx *geyser.TransactionUpdate) txparser.RawTransaction {
	var sig [64]byte
	copy(sig[:], tx.Signature[:])

	return txparser.RawTransaction{
		Signature:         sig,
		Success:           tx.Success,
		AccountTable:      ixdecode.AccountTable(tx.AccountKeys),
		OuterInstructions: toCompiledInstructions(tx.OuterInstructions),
		InnerInstructions: toCompiledInstructions(tx.InnerInstructions),
		LogMessages:       tx.LogMessages,
	}
}

func toCompiledInstructions(in []geyser.CompiledInstruction) []ixdecode.CompiledInstruction {
	out := make([]ixdecode.CompiledInstruction, len(in))
	for i, ci := range in {
		out[i] = ixdecode.CompiledInstruction{
			ProgramIndex: ci.ProgramIDIndex,
			Accounts:     ci.Accounts,
			Data:         ci.Data,
		}
	}
	return out
}

// ProgramIDs returns the non-empty program ids of the programs present in
// cfg, which is what this Bell subscribes to. Their order is not defined.
func ProgramIDs(cfg *config.Config) []string {
	ids := make([]string, 0, len(cfg.Programs))
	for _, prog := range cfg.Programs {
		if prog.ProgramID != "" {
			ids = append(ids, prog.ProgramID)
		}
	}
	return ids
}
