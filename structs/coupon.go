package structs

// CouponType enumerates the supported discount mechanics.
type CouponType string

const (
	CouponPercentage   CouponType = "percentage"
	CouponFixedAmount  CouponType = "fixed_amount"
	CouponFreeShipping CouponType = "free_shipping"
)

// CouponValidateRequest is the public coupon validation payload.
type CouponValidateRequest struct {
	Code string `json:"code" validate:"required,min=1,max=32"`
}

// CouponResult is the outcome of validating a coupon code. When Valid is
// false, Reason carries a specific user-correctable explanation and the
// coupon fields are zero.
type CouponResult struct {
	Valid    bool       `json:"valid"`
	Reason   string     `json:"reason,omitempty"`
	Code     string     `json:"code,omitempty"`
	Type     CouponType `json:"type,omitempty"`
	Value    int64      `json:"value,omitempty"`
	MinSpend int64      `json:"min_spend,omitempty"`
	// Scope is the list of product slugs the coupon targets; empty means
	// the whole cart.
	Scope []string `json:"scope,omitempty"`
}
