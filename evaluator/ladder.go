package evaluator

import (
	"sort"

	"github.com/jito-foundation/bell/config"
)

// pickThreshold walks thresholds sorted descending by value and returns
// the first rung the amount satisfies (P2): the unique max{value: value <=
// amount} under the inclusive (>=) comparison, or max{value: value <
// amount} under the exclusive (>) comparison used by the two
// validator-stake variants (B3). Returns nil if no rung is satisfied.
func pickThreshold(thresholds []config.Threshold, amount float64, inclusive bool) *config.Threshold {
	sorted := make([]config.Threshold, len(thresholds))
	copy(sorted, thresholds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })

	for i := range sorted {
		th := sorted[i]
		if inclusive {
			if amount >= th.Value {
				return &th
			}
		} else if amount > th.Value {
			return &th
		}
	}
	return nil
}

// pickUsdThreshold is the USD-ladder equivalent of pickThreshold. The USD
// ladder has no documented exclusive variant; it always uses >=.
func pickUsdThreshold(thresholds []config.UsdThreshold, amountUsd float64) *config.UsdThreshold {
	sorted := make([]config.UsdThreshold, len(thresholds))
	copy(sorted, thresholds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })

	for i := range sorted {
		th := sorted[i]
		if amountUsd >= float64(th.Value) {
			return &th
		}
	}
	return nil
}
