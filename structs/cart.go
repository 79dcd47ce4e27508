package structs

// CartLine is one line of the client-held cart. Prices are always
// recomputed server-side from the product's pricing rule; values sent by
// the client are display hints only.
type CartLine struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"product_id" validate:"required"` // product slug
	ProductName string            `json:"product_name,omitempty"`
	Config      map[string]string `json:"config"`
	Quantity    int               `json:"quantity" validate:"required,min=1"`
	UnitPrice   int64             `json:"unit_price,omitempty"`
	LinePrice   int64             `json:"line_price,omitempty"`
}

// SameConfiguration reports whether two lines are the same logical line:
// identical product and identical configuration, ignoring identity id,
// quantity, prices and display name.
func (l *CartLine) SameConfiguration(other *CartLine) bool {
	if l.ProductID != other.ProductID {
		return false
	}
	if len(l.Config) != len(other.Config) {
		return false
	}
	for k, v := range l.Config {
		if other.Config[k] != v {
			return false
		}
	}
	return true
}

// ShippingMethod enumerates the supported delivery options.
type ShippingMethod string

const (
	ShippingStore  ShippingMethod = "store"  // convenience store pickup
	ShippingPost   ShippingMethod = "post"   // postal delivery
	ShippingPickup ShippingMethod = "pickup" // in-person pickup
	ShippingFriend ShippingMethod = "friend" // hand-off via a friend
)

// Customer carries the contact and delivery details captured at checkout.
type Customer struct {
	Name           string         `json:"name" validate:"required,min=1,max=100"`
	Phone          string         `json:"phone" validate:"required,min=8,max=20"`
	Email          string         `json:"email" validate:"required,email"`
	ShippingMethod ShippingMethod `json:"shipping_method" validate:"required,oneof=store post pickup friend"`
	StoreName      string         `json:"store_name,omitempty"`
	City           string         `json:"city,omitempty"`
	District       string         `json:"district,omitempty"`
	Address        string         `json:"address,omitempty"`
	PickupLocation string         `json:"pickup_location,omitempty"`
	PickupDate     string         `json:"pickup_date,omitempty"`
	PickupTime     string         `json:"pickup_time,omitempty"`
	FriendName     string         `json:"friend_name,omitempty"`
	NeedProof      bool           `json:"need_proof"`
}
