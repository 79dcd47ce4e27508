package structs

// QuoteRequest is a custom-quote intake from the storefront: a free-form
// request with optional uploaded reference images.
type QuoteRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Phone       string   `json:"phone" validate:"required,min=8,max=20"`
	Email       string   `json:"email" validate:"required,email"`
	Description string   `json:"description" validate:"required,max=2000"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	Budget      int64    `json:"budget,omitempty" validate:"gte=0"`
	ImageURLs   []string `json:"image_urls,omitempty" validate:"dive,url"`
}
