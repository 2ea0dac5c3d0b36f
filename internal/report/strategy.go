package report

// RevenueStrategy prices a single purchased line item. Implementations must
// return a finite, non-negative amount; an error or out-of-contract result
// aborts the analysis with a ComputationError naming the SKU.
type RevenueStrategy interface {
	ComputeRevenue(item PurchaseItem, product Product) (float64, error)
}

// BonusStrategy resolves a seller's bonus from its profit rank. rank is
// zero-based and total is always positive. A failed or non-finite result is
// coerced to a zero bonus rather than failing the analysis.
type BonusStrategy interface {
	ComputeBonus(rank, total int, seller SellerStats) (float64, error)
}

// RevenueFunc adapts an ordinary function to a RevenueStrategy.
type RevenueFunc func(item PurchaseItem, product Product) (float64, error)

// ComputeRevenue implements RevenueStrategy.
func (f RevenueFunc) ComputeRevenue(item PurchaseItem, product Product) (float64, error) {
	return f(item, product)
}

// BonusFunc adapts an ordinary function to a BonusStrategy.
type BonusFunc func(rank, total int, seller SellerStats) (float64, error)

// ComputeBonus implements BonusStrategy.
func (f BonusFunc) ComputeBonus(rank, total int, seller SellerStats) (float64, error) {
	return f(rank, total, seller)
}

// Strategies bundles the pluggable policies consumed by Analyze. Both fields
// are mandatory.
type Strategies struct {
	Revenue RevenueStrategy
	Bonus   BonusStrategy
}
