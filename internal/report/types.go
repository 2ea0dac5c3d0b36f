package report

// Seller is an immutable source record for one selling party.
type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Product is a catalog entry. PurchasePrice is the cost basis used to derive
// profit.
type Product struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
}

// PurchaseItem is one purchased line within a receipt. Discount is a
// percentage in [0,100]; absent means no discount.
type PurchaseItem struct {
	SKU       string  `json:"sku"`
	Quantity  float64 `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount,omitempty"`
}

// PurchaseRecord is a single receipt attributed to one seller.
type PurchaseRecord struct {
	SellerID string         `json:"seller_id"`
	Items    []PurchaseItem `json:"items"`
}

// Dataset is the complete in-memory snapshot analysed in one pass.
type Dataset struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}

// TopProduct is one entry of a seller's best-seller list. ProductName is
// omitted when the SKU is no longer present in the product index.
type TopProduct struct {
	SKU         string  `json:"sku"`
	Quantity    float64 `json:"quantity"`
	ProductName string  `json:"product_name,omitempty"`
}

// SellerReport is the finished, immutable per-seller output. Revenue, Profit
// and Bonus carry exactly two decimal places.
type SellerReport struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	TopProducts []TopProduct `json:"top_products"`
	Bonus       float64      `json:"bonus"`
}

// SellerStats is the aggregate view a BonusStrategy receives for one seller.
type SellerStats struct {
	SellerID   string
	Name       string
	Revenue    float64
	Profit     float64
	SalesCount int
}

// accumulator holds the running totals for one seller. It is created during
// indexing, mutated exclusively by the aggregation pass and frozen into a
// SellerReport afterwards.
type accumulator struct {
	id         string
	name       string
	revenue    float64
	profit     float64
	salesCount int
	bonus      float64
	// productsSold tracks cumulative quantity per SKU; productOrder records
	// first-sold order so quantity ties in the top list stay deterministic.
	productsSold map[string]float64
	productOrder []string
}

func (a *accumulator) stats() SellerStats {
	return SellerStats{
		SellerID:   a.id,
		Name:       a.name,
		Revenue:    a.revenue,
		Profit:     a.profit,
		SalesCount: a.salesCount,
	}
}
