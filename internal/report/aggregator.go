package report

import "math"

// aggregate folds every purchase record, in input order, into the per-seller
// accumulators. It owns the accumulators exclusively for the duration of the
// pass; the first validation or reference failure aborts the whole analysis.
func aggregate(records []PurchaseRecord, sellers map[string]*accumulator, products map[string]Product, revenue RevenueStrategy) error {
	for i, rec := range records {
		acc, ok := sellers[rec.SellerID]
		if !ok {
			return &NotFoundError{Kind: "seller", ID: rec.SellerID}
		}
		if len(rec.Items) == 0 {
			return validationf("purchase record %d for seller %s has no items", i, rec.SellerID)
		}

		// One sale per receipt, regardless of how many lines it carries.
		acc.salesCount++

		for j, item := range rec.Items {
			if err := validateItem(i, j, item); err != nil {
				return err
			}
			product, ok := products[item.SKU]
			if !ok {
				return &NotFoundError{Kind: "product", ID: item.SKU}
			}
			if !isFinite(product.PurchasePrice) || product.PurchasePrice <= 0 {
				return validationf("product %s has invalid purchase_price", product.SKU)
			}

			rev, err := revenue.ComputeRevenue(item, product)
			if err != nil {
				return &ComputationError{SKU: item.SKU, Err: err}
			}
			if !isFinite(rev) || rev < 0 {
				return &ComputationError{SKU: item.SKU}
			}

			cost := product.PurchasePrice * item.Quantity
			acc.revenue += rev
			acc.profit += rev - cost
			if _, seen := acc.productsSold[item.SKU]; !seen {
				acc.productOrder = append(acc.productOrder, item.SKU)
			}
			acc.productsSold[item.SKU] += item.Quantity
		}
	}
	return nil
}

func validateItem(recordPos, itemPos int, item PurchaseItem) error {
	if item.SKU == "" {
		return validationf("record %d item %d has no sku", recordPos, itemPos)
	}
	if !isFinite(item.Quantity) || item.Quantity <= 0 {
		return validationf("record %d item %s has invalid quantity", recordPos, item.SKU)
	}
	if !isFinite(item.SalePrice) || item.SalePrice <= 0 {
		return validationf("record %d item %s has invalid sale_price", recordPos, item.SKU)
	}
	if !isFinite(item.Discount) || item.Discount < 0 || item.Discount > 100 {
		return validationf("record %d item %s has discount outside [0,100]", recordPos, item.SKU)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
