package report

import "sort"

// rankSellers orders accumulators by descending profit and resolves each
// seller's bonus. The sort is stable: profit ties keep their first-seen
// indexing order. A failed or non-finite bonus is coerced to zero since
// profit, the ranking key, is already final.
//
// An empty seller set short-circuits to nil so the bonus contract is never
// invoked with total == 0.
func rankSellers(accs []*accumulator, bonus BonusStrategy) []*accumulator {
	if len(accs) == 0 {
		return nil
	}
	ranked := make([]*accumulator, len(accs))
	copy(ranked, accs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].profit > ranked[j].profit
	})

	total := len(ranked)
	for i, acc := range ranked {
		value, err := bonus.ComputeBonus(i, total, acc.stats())
		if err != nil || !isFinite(value) {
			value = 0
		}
		acc.bonus = value
	}
	return ranked
}
