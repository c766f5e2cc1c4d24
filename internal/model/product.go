// Package model defines the core domain models used throughout the application.
package model

import "github.com/shopspring/decimal"

// Product represents a single catalog entry from the shop.
type Product struct {
	ID            string
	Title         string
	Handle        string
	SizeType      string   // Variant option label, e.g. "Taglia", "option", "Default Title"
	Sizes         []string // Raw size tokens in catalog order
	Description   string
	CurrentPrice  decimal.Decimal
	OriginalPrice decimal.Decimal // Compare-at price; zero when the product was never discounted
}

var hundred = decimal.NewFromInt(100)

// HasDiscount reports whether the product is currently discounted. A discount
// exists iff the original price is present and strictly greater than the
// current price.
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice.IsPositive() && p.OriginalPrice.GreaterThan(p.CurrentPrice)
}

// DiscountAmount returns the absolute discount, or zero when there is none.
func (p *Product) DiscountAmount() decimal.Decimal {
	if !p.HasDiscount() {
		return decimal.Zero
	}
	return p.OriginalPrice.Sub(p.CurrentPrice)
}

// DiscountPercent returns the discount as a percentage of the original price,
// rounded to one decimal place. Zero when there is no discount.
func (p *Product) DiscountPercent() decimal.Decimal {
	if !p.HasDiscount() {
		return decimal.Zero
	}
	return p.DiscountAmount().Div(p.OriginalPrice).Mul(hundred).Round(1)
}
