package tables

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SUMMER10", NormalizeCode("  summer10 "))
	assert.Equal(t, "SUMMER10", NormalizeCode("SUMMER10"))
}

func TestCouponUsable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	coupon := &Coupon{IsActive: true}
	ok, _ := coupon.Usable(now)
	assert.True(t, ok)

	coupon.IsActive = false
	ok, reason := coupon.Usable(now)
	assert.False(t, ok)
	assert.Contains(t, reason, "not active")

	coupon = &Coupon{IsActive: true, ValidFrom: &future}
	ok, reason = coupon.Usable(now)
	assert.False(t, ok)
	assert.Contains(t, reason, "not yet valid")

	coupon = &Coupon{IsActive: true, ValidUntil: &past}
	ok, reason = coupon.Usable(now)
	assert.False(t, ok)
	assert.Contains(t, reason, "expired")
}

func TestCouponUsageLimit(t *testing.T) {
	limit := 5

	coupon := &Coupon{IsActive: true, UsageLimit: &limit, UsedCount: 4}
	ok, _ := coupon.Usable(time.Now())
	assert.True(t, ok)

	coupon.UsedCount = 5
	ok, reason := coupon.Usable(time.Now())
	assert.False(t, ok)
	assert.Contains(t, reason, "usage limit")

	// No limit set means unlimited redemptions.
	coupon = &Coupon{IsActive: true, UsedCount: 100000}
	ok, _ = coupon.Usable(time.Now())
	assert.True(t, ok)
}
