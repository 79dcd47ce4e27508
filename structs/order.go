package structs

// OrderRequest is the checkout payload submitted by the storefront.
// Shipping cost is not part of it: the server derives it from the
// shipping method and the subtotal.
type OrderRequest struct {
	Customer   Customer   `json:"customer" validate:"required"`
	Lines      []CartLine `json:"lines" validate:"required,min=1,dive"`
	CouponCode string     `json:"coupon_code,omitempty"`
}

// StockRejection is one entry of the per-line rejection list returned when
// the authoritative stock validation refuses an order.
type StockRejection struct {
	LineID      string `json:"line_id"`
	ProductName string `json:"product_name"`
	Reason      string `json:"reason"`
}

// MaxStockRequest asks for the purchasable ceiling of one configuration,
// given the lines the shopper already holds.
type MaxStockRequest struct {
	Config map[string]string `json:"config"`
	Cart   []CartLine        `json:"cart,omitempty"`
}
