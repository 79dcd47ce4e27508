// Package checkout holds the order arithmetic: line merging, shipping and
// coupon discounts. Everything is integer currency, no floats.
package checkout

import (
	"slices"

	"bcspace_server/structs"
)

// MergeLines folds lines with the same product and configuration into one,
// summing quantities. The first occurrence keeps its id and position.
// Prices are intentionally dropped: the merged line must be repriced, since
// tiered rules make the unit price quantity-dependent.
func MergeLines(lines []structs.CartLine) []structs.CartLine {
	merged := make([]structs.CartLine, 0, len(lines))

	for _, line := range lines {
		found := false
		for i := range merged {
			if merged[i].SameConfiguration(&line) {
				merged[i].Quantity += line.Quantity
				found = true
				break
			}
		}
		if !found {
			line.UnitPrice = 0
			line.LinePrice = 0
			merged = append(merged, line)
		}
	}

	return merged
}

// ItemsSubtotal sums the line prices of already-priced lines.
func ItemsSubtotal(lines []structs.CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.LinePrice
	}
	return total
}

// Shipping returns the shipping cost to charge: the requested cost, waived
// entirely once the items subtotal reaches the free-shipping threshold.
func Shipping(subtotal, requested, freeThreshold int64) int64 {
	if subtotal >= freeThreshold {
		return 0
	}
	if requested < 0 {
		return 0
	}
	return requested
}

// scopedSubtotal sums line prices of the lines a coupon applies to. An
// empty scope covers every line.
func scopedSubtotal(lines []structs.CartLine, scope []string) int64 {
	if len(scope) == 0 {
		return ItemsSubtotal(lines)
	}

	var total int64
	for _, line := range lines {
		if slices.Contains(scope, line.ProductID) {
			total += line.LinePrice
		}
	}
	return total
}

// Discount computes the coupon's item deduction against priced lines.
// Percentage discounts round to the nearest currency unit; both percentage
// and fixed discounts are clamped to the scoped item subtotal. A
// free-shipping coupon discounts no items at all: it zeroes the shipping
// component instead (see ComputeTotals).
func Discount(coupon *structs.CouponResult, lines []structs.CartLine) int64 {
	if coupon == nil || !coupon.Valid {
		return 0
	}

	eligible := scopedSubtotal(lines, coupon.Scope)

	switch coupon.Type {
	case structs.CouponPercentage:
		return min((eligible*coupon.Value+50)/100, eligible)
	case structs.CouponFixedAmount:
		return min(coupon.Value, eligible)
	default:
		return 0
	}
}

// Totals is the complete money breakdown of an order.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Discount int64 `json:"discount"`
	Total    int64 `json:"total"`
}

// ComputeTotals assembles the order total from priced lines, the requested
// shipping cost and an optional validated coupon. A free-shipping coupon
// zeroes the shipping component outright, independent of the threshold.
// The grand total never goes below zero.
func ComputeTotals(lines []structs.CartLine, requestedShipping, freeThreshold int64, coupon *structs.CouponResult) Totals {
	subtotal := ItemsSubtotal(lines)
	shipping := Shipping(subtotal, requestedShipping, freeThreshold)
	if coupon != nil && coupon.Valid && coupon.Type == structs.CouponFreeShipping {
		shipping = 0
	}
	discount := Discount(coupon, lines)

	total := subtotal + shipping - discount
	if total < 0 {
		total = 0
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}

// MeetsMinSpend reports whether the scoped item subtotal reaches the
// coupon's minimum spend requirement.
func MeetsMinSpend(coupon *structs.CouponResult, lines []structs.CartLine) bool {
	if coupon == nil || coupon.MinSpend <= 0 {
		return true
	}
	return scopedSubtotal(lines, coupon.Scope) >= coupon.MinSpend
}
