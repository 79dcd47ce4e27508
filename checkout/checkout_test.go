package checkout

import (
	"testing"

	"bcspace_server/structs"

	"github.com/stretchr/testify/assert"
)

func line(id, product string, config map[string]string, qty int, linePrice int64) structs.CartLine {
	return structs.CartLine{
		ID:        id,
		ProductID: product,
		Config:    config,
		Quantity:  qty,
		LinePrice: linePrice,
	}
}

func TestMergeLinesCombinesIdenticalConfigurations(t *testing.T) {
	lines := []structs.CartLine{
		line("a", "keychain", map[string]string{"sides": "single"}, 2, 198),
		line("b", "sticker", nil, 1, 30),
		line("c", "keychain", map[string]string{"sides": "single"}, 3, 297),
	}

	merged := MergeLines(lines)

	assert.Len(t, merged, 2)
	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, 5, merged[0].Quantity)
	// Merged lines must be repriced: quantity changes can cross tier cliffs.
	assert.Equal(t, int64(0), merged[0].LinePrice)
}

func TestMergeLinesKeepsDistinctConfigurationsApart(t *testing.T) {
	lines := []structs.CartLine{
		line("a", "keychain", map[string]string{"sides": "single"}, 1, 99),
		line("b", "keychain", map[string]string{"sides": "double"}, 1, 150),
	}

	merged := MergeLines(lines)
	assert.Len(t, merged, 2)
}

func TestMergeLinesIdempotent(t *testing.T) {
	lines := []structs.CartLine{
		line("a", "keychain", map[string]string{"sides": "single"}, 2, 0),
		line("b", "sticker", nil, 1, 0),
	}

	once := MergeLines(lines)
	twice := MergeLines(once)
	assert.Equal(t, once, twice)
}

func TestShippingChargedBelowThreshold(t *testing.T) {
	assert.Equal(t, int64(60), Shipping(500, 60, 599))
}

func TestShippingFreeAtThreshold(t *testing.T) {
	assert.Equal(t, int64(0), Shipping(599, 60, 599))
	assert.Equal(t, int64(0), Shipping(1000, 60, 599))
}

func TestComputeTotalsWithoutCoupon(t *testing.T) {
	lines := []structs.CartLine{line("a", "charm", nil, 1, 500)}

	totals := ComputeTotals(lines, 60, 599, nil)

	assert.Equal(t, int64(500), totals.Subtotal)
	assert.Equal(t, int64(60), totals.Shipping)
	assert.Equal(t, int64(0), totals.Discount)
	assert.Equal(t, int64(560), totals.Total)
}

func TestComputeTotalsPercentageCouponIgnoresShipping(t *testing.T) {
	lines := []structs.CartLine{line("a", "charm", nil, 1, 500)}
	coupon := &structs.CouponResult{Valid: true, Type: structs.CouponPercentage, Value: 10}

	totals := ComputeTotals(lines, 60, 599, coupon)

	// 10% comes off the items only, never the shipping charge.
	assert.Equal(t, int64(50), totals.Discount)
	assert.Equal(t, int64(510), totals.Total)
}

func TestFixedAmountCouponClampedToEligibleItems(t *testing.T) {
	lines := []structs.CartLine{line("a", "sticker", nil, 1, 30)}
	coupon := &structs.CouponResult{Valid: true, Type: structs.CouponFixedAmount, Value: 100}

	totals := ComputeTotals(lines, 60, 599, coupon)

	assert.Equal(t, int64(30), totals.Discount)
	assert.Equal(t, int64(60), totals.Total)
}

func TestScopedCouponOnlyDiscountsMatchingLines(t *testing.T) {
	lines := []structs.CartLine{
		line("a", "keychain", nil, 1, 200),
		line("b", "sticker", nil, 1, 300),
	}
	coupon := &structs.CouponResult{
		Valid: true,
		Type:  structs.CouponPercentage,
		Value: 50,
		Scope: []string{"keychain"},
	}

	totals := ComputeTotals(lines, 0, 599, coupon)

	assert.Equal(t, int64(100), totals.Discount)
	assert.Equal(t, int64(400), totals.Total)
}

func TestFreeShippingCouponZeroesShippingNotDiscount(t *testing.T) {
	lines := []structs.CartLine{line("a", "charm", nil, 1, 500)}
	coupon := &structs.CouponResult{Valid: true, Type: structs.CouponFreeShipping}

	totals := ComputeTotals(lines, 60, 599, coupon)

	// The coupon waives the charge itself; nothing comes off the items.
	assert.Equal(t, int64(0), totals.Shipping)
	assert.Equal(t, int64(0), totals.Discount)
	assert.Equal(t, int64(500), totals.Total)

	// Above the threshold shipping was already free.
	totals = ComputeTotals([]structs.CartLine{line("a", "charm", nil, 2, 1000)}, 60, 599, coupon)
	assert.Equal(t, int64(0), totals.Shipping)
	assert.Equal(t, int64(0), totals.Discount)
	assert.Equal(t, int64(1000), totals.Total)
}

func TestPercentageDiscountRoundsToNearestUnit(t *testing.T) {
	lines := []structs.CartLine{line("a", "charm", nil, 1, 505)}
	coupon := &structs.CouponResult{Valid: true, Type: structs.CouponPercentage, Value: 10}

	// 10% of 505 is 50.5, which rounds up.
	assert.Equal(t, int64(51), Discount(coupon, lines))

	// 10% of 504 is 50.4, which rounds down.
	assert.Equal(t, int64(50), Discount(coupon, []structs.CartLine{line("a", "charm", nil, 1, 504)}))
}

func TestPercentageDiscountClampedToEligibleItems(t *testing.T) {
	lines := []structs.CartLine{line("a", "charm", nil, 1, 500)}
	coupon := &structs.CouponResult{Valid: true, Type: structs.CouponPercentage, Value: 150}

	// A mis-entered value over 100% must never discount more than the
	// items themselves are worth.
	assert.Equal(t, int64(500), Discount(coupon, lines))
}

func TestInvalidCouponDiscountsNothing(t *testing.T) {
	lines := []structs.CartLine{line("a", "charm", nil, 1, 500)}
	coupon := &structs.CouponResult{Valid: false, Type: structs.CouponPercentage, Value: 10}

	assert.Equal(t, int64(0), Discount(coupon, lines))
}

func TestTotalNeverNegative(t *testing.T) {
	lines := []structs.CartLine{line("a", "sticker", nil, 1, 10)}
	coupon := &structs.CouponResult{Valid: true, Type: structs.CouponFixedAmount, Value: 10_000}

	totals := ComputeTotals(lines, 0, 599, coupon)
	assert.GreaterOrEqual(t, totals.Total, int64(0))
}

func TestMeetsMinSpend(t *testing.T) {
	lines := []structs.CartLine{line("a", "charm", nil, 1, 500)}

	assert.True(t, MeetsMinSpend(&structs.CouponResult{MinSpend: 500}, lines))
	assert.False(t, MeetsMinSpend(&structs.CouponResult{MinSpend: 501}, lines))
	assert.True(t, MeetsMinSpend(nil, lines))
}
