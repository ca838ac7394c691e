package evaluator

import (
	"context"

	"github.com/jito-foundation/bell/berr"
	"github.com/jito-foundation/bell/config"
	"github.com/jito-foundation/bell/ixdecode"
	"github.com/jito-foundation/bell/solrpc"
)

// evalVaultMintTo evaluates a Jito Vault MintTo against the "vrts" leaf
// keyed by the vrt-mint address, which this instruction already carries
// positionally.
func (e *Evaluator) evalVaultMintTo(ctx context.Context, mintTo ixdecode.MintTo, signature string) error {
	return e.evalVrtAmount(ctx, "mint_to", mintTo.VrtMint, mintTo.MinAmountOut, signature)
}

// evalVaultEnqueueWithdrawal evaluates a Jito Vault EnqueueWithdrawal. This
// variant carries only the vault address; its vrt-mint must be resolved
// with an RPC vault-account lookup, which propagates its error rather than
// falling back to a default (unlike the mint-decimals and symbol lookups).
func (e *Evaluator) evalVaultEnqueueWithdrawal(ctx context.Context, enqueue ixdecode.EnqueueWithdrawal, signature string) error {
	if e.solrpc == nil {
		return berr.Newf(berr.Rpc, "no rpc client configured to resolve vault %s", enqueue.Vault)
	}
	vrtMint, err := e.solrpc.VrtMint(ctx, enqueue.Vault)
	if err != nil {
		return err
	}
	return e.evalVrtAmount(ctx, "enqueue_withdrawal", vrtMint, enqueue.Amount, signature)
}

// evalVrtAmount shares the decimals-scaling, symbol-resolution, and
// dual-ladder dispatch logic between the two vault instruction variants.
func (e *Evaluator) evalVrtAmount(ctx context.Context, variant, vrtMint string, rawAmount uint64, signature string) error {
	alerts, ok := e.alertsFor(config.ProgramJitoVault, variant, func(rule config.InstructionRule) (config.Alerts, bool) {
		a, ok := rule.Vrts[vrtMint]
		return a, ok
	})
	if !ok {
		return nil
	}

	decimals := uint8(solrpc.DefaultDecimals)
	symbol := solrpc.DefaultSymbol
	if e.solrpc != nil {
		decimals = e.solrpc.Decimals(ctx, vrtMint)
		symbol = e.solrpc.Symbol(ctx, vrtMint)
	}

	amount := float64(rawAmount) / pow10(decimals)
	return e.evalAgainstAlerts(ctx, alerts, amount, amount, symbol, signature, vrtMint, true)
}

func pow10(n uint8) float64 {
	v := 1.0
	for i := uint8(0); i < n; i++ {
		v *= 10
	}
	return v
}
