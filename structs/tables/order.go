package tables

import (
	"bcspace_server/structs"
	"slices"
	"time"

	"github.com/google/uuid"
)

type Order struct {
	tableName   struct{}  `bun:"table:orders,alias:o"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderNumber string    `bun:"order_number,notnull,unique" json:"order_number"`

	// Customer data, flattened from the checkout payload.
	Name           string                 `bun:"name,notnull" json:"name"`
	Email          string                 `bun:"email,notnull" json:"email"`
	Phone          string                 `bun:"phone,notnull" json:"phone"`
	ShippingMethod structs.ShippingMethod `bun:"shipping_method,notnull" json:"shipping_method"`
	Address        string                 `bun:"address" json:"address,omitempty"`
	NeedProof      bool                   `bun:"need_proof,notnull,default:true" json:"need_proof"`

	// Items are the cart lines frozen at submission: configuration values,
	// resolved file URLs and computed prices are never re-derived.
	Items []structs.CartLine `bun:"items,type:jsonb" json:"items"`

	ShippingCost   int64  `bun:"shipping_cost,notnull,default:0" json:"shipping_cost"`
	CouponCode     string `bun:"coupon_code" json:"coupon_code,omitempty"`
	DiscountAmount int64  `bun:"discount_amount,notnull,default:0" json:"discount_amount"`
	TotalAmount    int64  `bun:"total_amount,notnull" json:"total_amount"`

	EstimatedDate string `bun:"estimated_date" json:"estimated_date,omitempty"` // YYYY-MM-DD

	Status    OrderStatus `bun:"status,notnull,default:'pending'" json:"status"`
	CreatedAt time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time   `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt *time.Time  `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the value is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidStatusTransition reports whether an order may move from current to
// next. The chain is strictly linear (pending → paid → shipped →
// completed) with no skip-back; cancellation is only possible before the
// order ships.
func ValidStatusTransition(current, next OrderStatus) bool {
	transitions := map[OrderStatus][]OrderStatus{
		OrderStatusPending:   {OrderStatusPaid, OrderStatusCancelled},
		OrderStatusPaid:      {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:   {OrderStatusCompleted},
		OrderStatusCompleted: {},
		OrderStatusCancelled: {},
	}

	allowed, exists := transitions[current]
	if !exists {
		return false
	}
	return slices.Contains(allowed, next)
}
