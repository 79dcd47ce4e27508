package tables

import (
	"strings"
	"time"

	"bcspace_server/structs"

	"github.com/google/uuid"
)

type Coupon struct {
	tableName struct{}  `bun:"table:coupons,alias:c"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Code      string    `bun:"code,notnull,unique" json:"code"` // stored uppercase

	Type  structs.CouponType `bun:"type,notnull" json:"type"`
	Value int64              `bun:"value,notnull" json:"value"` // percent (1-100) or fixed amount

	MinSpend int64 `bun:"min_spend,notnull,default:0" json:"min_spend"`

	// Scope restricts the coupon to the listed product slugs. Empty means
	// the whole order qualifies.
	Scope []string `bun:"scope,type:jsonb" json:"scope,omitempty"`

	ValidFrom  *time.Time `bun:"valid_from,nullzero" json:"valid_from,omitempty"`
	ValidUntil *time.Time `bun:"valid_until,nullzero" json:"valid_until,omitempty"`

	UsageLimit *int `bun:"usage_limit,nullzero" json:"usage_limit,omitempty"`
	UsedCount  int  `bun:"used_count,notnull,default:0" json:"used_count"`

	IsActive  bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// NormalizeCode folds a user-entered code to the stored form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Usable reports whether the coupon can still be redeemed at the given
// moment, ignoring spend and scope checks.
func (c *Coupon) Usable(now time.Time) (bool, string) {
	if !c.IsActive {
		return false, "coupon is not active"
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return false, "coupon is not yet valid"
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return false, "coupon has expired"
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return false, "coupon usage limit reached"
	}
	return true, ""
}
