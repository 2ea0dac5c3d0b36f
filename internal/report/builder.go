package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// defaultTopProducts caps the per-seller best-seller list.
const defaultTopProducts = 10

// buildReports freezes the ranked accumulators into the normalized output
// records, ranked order preserved.
func buildReports(ranked []*accumulator, products map[string]Product, limit int) []SellerReport {
	if limit <= 0 {
		limit = defaultTopProducts
	}
	reports := make([]SellerReport, 0, len(ranked))
	for _, acc := range ranked {
		top := make([]TopProduct, 0, len(acc.productOrder))
		for _, sku := range acc.productOrder {
			entry := TopProduct{SKU: sku, Quantity: acc.productsSold[sku]}
			// The product may have vanished from the index since aggregation;
			// report the SKU without a name rather than failing the analysis.
			if p, ok := products[sku]; ok {
				entry.ProductName = p.Name
			}
			top = append(top, entry)
		}
		sort.SliceStable(top, func(i, j int) bool {
			return top[i].Quantity > top[j].Quantity
		})
		if len(top) > limit {
			top = top[:limit]
		}
		reports = append(reports, SellerReport{
			SellerID:    acc.id,
			Name:        acc.name,
			Revenue:     round2(acc.revenue),
			Profit:      round2(acc.profit),
			SalesCount:  acc.salesCount,
			TopProducts: top,
			Bonus:       round2(acc.bonus),
		})
	}
	return reports
}

// round2 rounds half away from zero to exactly two decimal places.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
