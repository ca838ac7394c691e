package evaluator

import (
	"context"

	"github.com/jito-foundation/bell/config"
	"github.com/jito-foundation/bell/ixdecode"
	"github.com/jito-foundation/bell/txparser"
)

// wrappedSolMint is used only as a USD-pricing key for instructions whose
// raw amount is denominated in SOL rather than a receipt token.
const wrappedSolMint = "So11111111111111111111111111111111111111112"

// evalDepositStake implements the deposit_stake correlation rule: a
// DepositStake only produces a notification when the same transaction also
// carries a Token-2022 MintTo whose mint/destination/owner match
// DepositStake's resolved pool-mint/dest-user-pool/withdraw-authority
// accounts. The minted amount, not any DepositStake field, is the evaluated
// quantity.
func (e *Evaluator) evalDepositStake(ctx context.Context, parsed *txparser.Parsed, index int, dep ixdecode.DepositStake) error {
	var mint ixdecode.Token2022MintTo
	found := false
	for _, other := range parsed.Instructions {
		m, ok := other.(ixdecode.Token2022MintTo)
		if !ok {
			continue
		}
		if m.Mint == dep.PoolMint && m.Destination == dep.DestUserPool && m.Owner == dep.WithdrawAuthority {
			mint = m
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	// deposit_stake's correlated mint amount is compared and displayed
	// unscaled: unit conversion is not applied on this path.
	raw := float64(mint.Amount)
	return e.evalLstAmount(ctx, config.ProgramSplStakePool, "deposit_stake", dep.PoolMint, raw, raw, "SOL", parsed.Signature, true)
}

// evalLstAmount evaluates a raw SOL-denominated stake-pool instruction
// (deposit_stake/deposit_sol/withdraw_sol/withdraw_stake) against the
// "lsts" leaf keyed by the instruction's pool-mint address. compareAmount is
// always the raw base-unit quantity the threshold was configured against;
// displayAmount is what gets rendered into the notification and priced
// against the USD oracle, which may be a decimal-scaled view of the same
// quantity.
func (e *Evaluator) evalLstAmount(ctx context.Context, program config.ProgramKind, variant, mint string, compareAmount, displayAmount float64, unit, signature string, inclusive bool) error {
	alerts, ok := e.alertsFor(program, variant, func(rule config.InstructionRule) (config.Alerts, bool) {
		a, ok := rule.Lsts[mint]
		return a, ok
	})
	if !ok {
		return nil
	}
	return e.evalAgainstAlerts(ctx, alerts, compareAmount, displayAmount, unit, signature, mint, inclusive)
}

// evalStakePoolAmount evaluates increase_validator_stake and
// decrease_validator_stake_with_reserve against the "stake_pools" leaf
// keyed by the stake pool address. Both variants use the exclusive (>)
// comparison (B3).
func (e *Evaluator) evalStakePoolAmount(ctx context.Context, variant, pool string, amount float64, unit, signature string, inclusive bool) error {
	alerts, ok := e.alertsFor(config.ProgramSplStakePool, variant, func(rule config.InstructionRule) (config.Alerts, bool) {
		a, ok := rule.StakePools[pool]
		return a, ok
	})
	if !ok {
		return nil
	}
	return e.evalAgainstAlerts(ctx, alerts, amount, amount, unit, signature, wrappedSolMint, inclusive)
}

// alertsFor resolves the configured instruction rule for program/variant
// and runs pick against it.
func (e *Evaluator) alertsFor(program config.ProgramKind, variant string, pick func(config.InstructionRule) (config.Alerts, bool)) (config.Alerts, bool) {
	prog, ok := e.cfg.Programs[program]
	if !ok {
		return config.Alerts{}, false
	}
	rule, ok := prog.Instructions[variant]
	if !ok {
		return config.Alerts{}, false
	}
	return pick(rule)
}

// evalAgainstAlerts walks both independent ladders (raw and USD) and
// dispatches whichever rungs match. compareAmount is the raw base-unit
// quantity thresholds are configured against; displayAmount is what gets
// rendered into the notification and priced against the USD oracle.
// usdPricingKey names the mint/address the USD oracle is queried against.
func (e *Evaluator) evalAgainstAlerts(ctx context.Context, alerts config.Alerts, compareAmount, displayAmount float64, unit, signature, usdPricingKey string, inclusive bool) error {
	var lastErr error

	if th := pickThreshold(alerts.Thresholds, compareAmount, inclusive); th != nil {
		amt := displayAmount
		if err := e.dispatch(ctx, action{
			description:  th.Notification.Description,
			amount:       &amt,
			unit:         unit,
			signature:    signature,
			destinations: th.Notification.Destinations,
		}); err != nil {
			lastErr = err
		}
	}

	if len(alerts.UsdThresholds) > 0 && e.oracle != nil {
		price, err := e.oracle.Price(ctx, chainName, usdPricingKey)
		if err == nil {
			usd := displayAmount * price
			if th := pickUsdThreshold(alerts.UsdThresholds, usd); th != nil {
				if err := e.dispatch(ctx, action{
					description:  th.Notification.Description,
					amount:       &usd,
					unit:         "USD",
					signature:    signature,
					destinations: th.Notification.Destinations,
				}); err != nil {
					lastErr = err
				}
			}
		} else {
			log.Warnf("usd price lookup failed for %s: %v", usdPricingKey, err)
		}
	}

	return lastErr
}
