package services

import (
	"testing"

	"bcspace_server/structs"
	"bcspace_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCouponTermsPercentageBounds(t *testing.T) {
	assert.NoError(t, validateCouponTerms(&tables.Coupon{Type: structs.CouponPercentage, Value: 1}))
	assert.NoError(t, validateCouponTerms(&tables.Coupon{Type: structs.CouponPercentage, Value: 100}))

	assert.Error(t, validateCouponTerms(&tables.Coupon{Type: structs.CouponPercentage, Value: 0}))
	assert.Error(t, validateCouponTerms(&tables.Coupon{Type: structs.CouponPercentage, Value: 150}))
}

func TestValidateCouponTermsFixedAmountMustBePositive(t *testing.T) {
	assert.NoError(t, validateCouponTerms(&tables.Coupon{Type: structs.CouponFixedAmount, Value: 50}))
	assert.Error(t, validateCouponTerms(&tables.Coupon{Type: structs.CouponFixedAmount, Value: 0}))
	assert.Error(t, validateCouponTerms(&tables.Coupon{Type: structs.CouponFixedAmount, Value: -10}))
}

func TestValidateCouponTermsFreeShippingZeroesValue(t *testing.T) {
	coupon := &tables.Coupon{Type: structs.CouponFreeShipping, Value: 60}
	require.NoError(t, validateCouponTerms(coupon))
	assert.Equal(t, int64(0), coupon.Value)
}

func TestValidateCouponTermsRejectsUnknownType(t *testing.T) {
	assert.Error(t, validateCouponTerms(&tables.Coupon{Type: "bogo", Value: 1}))
}
