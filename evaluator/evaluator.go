// Package evaluator implements the Bell's threshold evaluator and
// notification dispatcher: for each decoded instruction or event, locate
// its configuration leaf, resolve an amount to a comparable unit, pick the
// single highest threshold it satisfies, render the message template, and
// dispatch to the enumerated destinations.
package evaluator

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/jito-foundation/bell/config"
	"github.com/jito-foundation/bell/ixdecode"
	"github.com/jito-foundation/bell/metrics"
	"github.com/jito-foundation/bell/oracle"
	"github.com/jito-foundation/bell/sinks"
	"github.com/jito-foundation/bell/solrpc"
	"github.com/jito-foundation/bell/txparser"
)

// chainName is the chain identifier passed to the USD price oracle.
const chainName = "solana"

// Evaluator owns the configuration, auxiliary clients, sinks, and the
// shared epoch-rollup tracker it updates as it dispatches notifications.
type Evaluator struct {
	cfg      *config.Config
	solrpc   *solrpc.Client
	oracle   *oracle.Client
	sinks    map[config.Destination]sinks.Sink
	tracker  *metrics.Tracker
	exporter *metrics.Exporter

	mu       sync.Mutex
	limiters map[config.Destination]*rate.Limiter
}

// New builds an Evaluator.
func New(
	cfg *config.Config,
	solrpcClient *solrpc.Client,
	oracleClient *oracle.Client,
	sinkSet map[config.Destination]sinks.Sink,
	tracker *metrics.Tracker,
	exporter *metrics.Exporter,
) *Evaluator {
	return &Evaluator{
		cfg:      cfg,
		solrpc:   solrpcClient,
		oracle:   oracleClient,
		sinks:    sinkSet,
		tracker:  tracker,
		exporter: exporter,
		limiters: make(map[config.Destination]*rate.Limiter),
	}
}

// EvaluateTransaction evaluates every decoded instruction and event from
// one parsed transaction, dispatching notifications as matched. Per-action
// dispatch failures are logged and swallowed; they never abort evaluation
// of the remaining instructions/events in this transaction.
func (e *Evaluator) EvaluateTransaction(ctx context.Context, parsed *txparser.Parsed) {
	for i, ix := range parsed.Instructions {
		if err := e.evaluateInstruction(ctx, parsed, i, ix); err != nil {
			log.Warnf("%s: %v", parsed.Signature, err)
		}
	}
	for _, ev := range parsed.Events {
		if err := e.evaluateEvent(ctx, parsed.Signature, ev); err != nil {
			log.Warnf("%s: %v", parsed.Signature, err)
		}
	}
}

func (e *Evaluator) evaluateInstruction(ctx context.Context, parsed *txparser.Parsed, index int, ix ixdecode.Instruction) error {
	switch v := ix.(type) {
	case ixdecode.DepositStake:
		return e.evalDepositStake(ctx, parsed, index, v)
	case ixdecode.DepositSol:
		// Threshold comparison happens on the raw lamport amount (lib.rs
		// compares *amount >= threshold.value with no divisor); only the
		// rendered/display amount is scaled to SOL.
		return e.evalLstAmount(ctx, config.ProgramSplStakePool, "deposit_sol", v.PoolMint, float64(v.Amount), float64(v.Amount)/1e9, "SOL", parsed.Signature, true)
	case ixdecode.WithdrawSol:
		return e.evalLstAmount(ctx, config.ProgramSplStakePool, "withdraw_sol", v.PoolMint, float64(v.Amount), float64(v.Amount)/1e9, "SOL", parsed.Signature, true)
	case ixdecode.WithdrawStake:
		return e.evalLstAmount(ctx, config.ProgramSplStakePool, "withdraw_stake", v.PoolMint, float64(v.MinimumOut), float64(v.MinimumOut)/1e9, "SOL", parsed.Signature, true)
	case ixdecode.IncreaseValidatorStake:
		return e.evalStakePoolAmount(ctx, "increase_validator_stake", v.Pool, float64(v.Amount)/1e9, "SOL", parsed.Signature, false)
	case ixdecode.DecreaseValidatorStakeWithReserve:
		return e.evalStakePoolAmount(ctx, "decrease_validator_stake_with_reserve", v.Pool, float64(v.Amount)/1e9, "SOL", parsed.Signature, false)
	case ixdecode.MintTo:
		return e.evalVaultMintTo(ctx, v, parsed.Signature)
	case ixdecode.EnqueueWithdrawal:
		return e.evalVaultEnqueueWithdrawal(ctx, v, parsed.Signature)
	default:
		// Token2022MintTo is only ever consumed as a correlating
		// side-effect of DepositStake, never evaluated directly.
		// CopyDirectedStakeTargets is decoded but never evaluated.
		return nil
	}
}

func atomicIncr(p *int32) {
	atomic.AddInt32(p, 1)
}
