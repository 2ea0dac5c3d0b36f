// Package report computes per-seller sales performance reports from raw
// transactional data: revenue, profit, a ranked bonus allocation and a
// top-sellers product list. Revenue and bonus formulas are injected as
// strategies; everything else is a single synchronous pass over the dataset.
package report

// Options tunes behaviour that business policy leaves open.
type Options struct {
	// RequireData rejects empty sellers/products/purchase_records with a
	// ValidationError instead of yielding an empty report.
	RequireData bool
	// TopProducts caps the per-seller best-seller list. Zero means 10.
	TopProducts int
}

// Analyze validates the dataset, folds every purchase record into per-seller
// totals using the supplied strategies and returns the finished reports
// ranked best profit first. Every failure is fatal to the whole call: no
// partial report is ever returned.
func Analyze(data Dataset, strategies Strategies, opts Options) ([]SellerReport, error) {
	if strategies.Revenue == nil {
		return nil, &ConfigurationError{Message: "revenue strategy is required"}
	}
	if strategies.Bonus == nil {
		return nil, &ConfigurationError{Message: "bonus strategy is required"}
	}
	if opts.RequireData && (len(data.Sellers) == 0 || len(data.Products) == 0 || len(data.PurchaseRecords) == 0) {
		return nil, &ValidationError{Message: "dataset must contain sellers, products and purchase records"}
	}

	accs, sellerIdx, productIdx, err := buildIndexes(data.Sellers, data.Products)
	if err != nil {
		return nil, err
	}
	if err := aggregate(data.PurchaseRecords, sellerIdx, productIdx, strategies.Revenue); err != nil {
		return nil, err
	}
	ranked := rankSellers(accs, strategies.Bonus)
	return buildReports(ranked, productIdx, opts.TopProducts), nil
}
