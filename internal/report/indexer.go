package report

import "strings"

// buildIndexes prepares the lookup structures for the aggregation pass: one
// zeroed accumulator per seller plus a product index keyed by SKU.
//
// Duplicate ids resolve last-writer-wins: a later entry replaces the earlier
// accumulator in place, so the seller keeps its first-seen position in the
// ranking order while carrying the values of the last occurrence.
func buildIndexes(sellers []Seller, products []Product) ([]*accumulator, map[string]*accumulator, map[string]Product, error) {
	accs := make([]*accumulator, 0, len(sellers))
	sellerIdx := make(map[string]*accumulator, len(sellers))
	for i, s := range sellers {
		if strings.TrimSpace(s.ID) == "" {
			return nil, nil, nil, validationf("seller at position %d has no id", i)
		}
		fresh := accumulator{
			id:           s.ID,
			name:         strings.TrimSpace(s.FirstName + " " + s.LastName),
			productsSold: map[string]float64{},
		}
		if existing, ok := sellerIdx[s.ID]; ok {
			*existing = fresh
			continue
		}
		acc := &fresh
		sellerIdx[s.ID] = acc
		accs = append(accs, acc)
	}

	productIdx := make(map[string]Product, len(products))
	for i, p := range products {
		if strings.TrimSpace(p.SKU) == "" {
			return nil, nil, nil, validationf("product at position %d has no sku", i)
		}
		productIdx[p.SKU] = p
	}
	return accs, sellerIdx, productIdx, nil
}
