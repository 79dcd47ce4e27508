package tables

import (
	"time"

	"github.com/google/uuid"
)

// CustomQuote is a free-form request for work outside the catalog. It
// carries no pricing; the vendor follows up by email.
type CustomQuote struct {
	tableName   struct{}  `bun:"table:custom_quotes,alias:q"`
	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Email       string    `bun:"email,notnull" json:"email"`
	Phone       string    `bun:"phone" json:"phone,omitempty"`
	Description string    `bun:"description,notnull" json:"description"`
	Quantity    int       `bun:"quantity,notnull,default:1" json:"quantity"`
	Budget      *int64    `bun:"budget,nullzero" json:"budget,omitempty"`
	ImageURLs   []string  `bun:"image_urls,type:jsonb" json:"image_urls,omitempty"`
	Status      string    `bun:"status,notnull,default:'new'" json:"status"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
