package structs

import "encoding/json"

// NotifyItem is one order line as the webhook reads it. The webhook walks
// the item's JSON keys and renders everything outside its reserved set
// (productName, quantity, price, image) as a customization option, so the
// resolved option labels are flattened next to the fixed fields rather
// than nested under a key of their own.
type NotifyItem struct {
	ProductName string
	Quantity    int
	Price       int64
	Options     map[string]string
}

func (i NotifyItem) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(i.Options)+3)
	for label, value := range i.Options {
		flat[label] = value
	}
	flat["productName"] = i.ProductName
	flat["quantity"] = i.Quantity
	flat["price"] = i.Price
	return json.Marshal(flat)
}

// NotifyCustomer is the customer block the webhook's templates read.
type NotifyCustomer struct {
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone,omitempty"`
	ShippingMethod ShippingMethod `json:"shippingMethod,omitempty"`
	Address        string         `json:"address,omitempty"`
}

// OrderNotification is the order-shaped webhook payload. The webhook
// dispatches a transactional email to the customer and a chat card to the
// vendor; its response is ignored.
type OrderNotification struct {
	OrderID       string         `json:"orderId"`
	Customer      NotifyCustomer `json:"customer"`
	Items         []NotifyItem   `json:"items"`
	TotalAmount   int64          `json:"totalAmount"`
	EstimatedDate string         `json:"estimatedDate,omitempty"`
}

// SystemAlert is the discriminated low-stock alert payload.
type SystemAlert struct {
	Type    string `json:"type"` // always "system_alert"
	Message string `json:"message"`
}

// WebhookResponse is what the notification webhook answers with. The
// caller never blocks on it for correctness.
type WebhookResponse struct {
	Status  string `json:"status"` // "success" or "error"
	Message string `json:"message,omitempty"`
}
