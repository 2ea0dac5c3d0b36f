// Package strategy ships the reference revenue and bonus policies. They are
// ordinary report.RevenueStrategy / report.BonusStrategy implementations;
// callers with different business rules supply their own.
package strategy

import (
	"errors"
	"math"

	"github.com/noah-isme/sales-report/internal/report"
)

var (
	// ErrInvalidSalePrice rejects a non-positive or non-finite sale price.
	ErrInvalidSalePrice = errors.New("sale price must be a positive finite number")
	// ErrInvalidQuantity rejects a non-positive or non-finite quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive finite number")
	// ErrRevenueNotFinite signals the computed amount left the float range.
	ErrRevenueNotFinite = errors.New("computed revenue is not a finite amount")
)

// DiscountRevenue prices a line item as sale price times quantity, reduced
// by the item's discount percentage. A non-finite discount counts as zero.
type DiscountRevenue struct{}

// ComputeRevenue implements report.RevenueStrategy.
func (DiscountRevenue) ComputeRevenue(item report.PurchaseItem, _ report.Product) (float64, error) {
	if math.IsNaN(item.SalePrice) || math.IsInf(item.SalePrice, 0) || item.SalePrice <= 0 {
		return 0, ErrInvalidSalePrice
	}
	if math.IsNaN(item.Quantity) || math.IsInf(item.Quantity, 0) || item.Quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	discount := item.Discount
	if math.IsNaN(discount) || math.IsInf(discount, 0) {
		discount = 0
	}
	revenue := item.SalePrice * item.Quantity * (1 - discount/100)
	if math.IsNaN(revenue) || math.IsInf(revenue, 0) || revenue < 0 {
		return 0, ErrRevenueNotFinite
	}
	return revenue, nil
}
