package evaluator

import (
	"context"

	"github.com/jito-foundation/bell/config"
	"github.com/jito-foundation/bell/eventdecode"
)

// evaluateEvent dispatches a decoded Steward event against its configured
// event rule, if any. rebalance uses the threshold-ladder shape (EventRule
// with Thresholds populated); state_transition uses the simple always-fire
// shape. Every other event variant is ignored, whatever its configuration.
func (e *Evaluator) evaluateEvent(ctx context.Context, signature string, ev eventdecode.Event) error {
	switch v := ev.(type) {
	case eventdecode.Rebalance:
		return e.evalRebalance(ctx, signature, v)
	case eventdecode.StateTransition:
		return e.evalAlwaysFire(ctx, "state_transition", signature)
	default:
		return nil
	}
}

// evalRebalance synthesizes an amount from a Rebalance event: the
// increase-direction lamport amount when Kind is Increase, otherwise the
// decrease breakdown's total, scaled to SOL.
func (e *Evaluator) evalRebalance(ctx context.Context, signature string, reb eventdecode.Rebalance) error {
	rule, ok := e.eventRule("rebalance")
	if !ok || !rule.HasThresholds() {
		return nil
	}

	var raw uint64
	if reb.Kind == eventdecode.RebalanceIncrease {
		raw = reb.IncreaseLamports
	} else {
		raw = reb.Decrease.Total
	}
	amount := float64(raw) / 1e9

	th := pickThreshold(rule.Thresholds, amount, true)
	if th == nil {
		return nil
	}

	amt := amount
	return e.dispatch(ctx, action{
		description:  th.Notification.Description,
		amount:       &amt,
		unit:         "SOL",
		signature:    signature,
		destinations: th.Notification.Destinations,
	})
}

// evalAlwaysFire dispatches a configured no-threshold event rule
// unconditionally.
func (e *Evaluator) evalAlwaysFire(ctx context.Context, variant, signature string) error {
	rule, ok := e.eventRule(variant)
	if !ok || rule.HasThresholds() {
		return nil
	}

	return e.dispatch(ctx, action{
		description:  rule.Description,
		signature:    signature,
		destinations: rule.Destinations,
	})
}

func (e *Evaluator) eventRule(variant string) (config.EventRule, bool) {
	prog, ok := e.cfg.Programs[config.ProgramJitoSteward]
	if !ok {
		return config.EventRule{}, false
	}
	rule, ok := prog.Events[variant]
	return rule, ok
}
