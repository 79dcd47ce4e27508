package tables

import (
	"bcspace_server/structs"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	tableName struct{}  `bun:"table:products,alias:p"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"` // stable public identifier
	Name      string    `bun:"name,notnull" json:"name"`

	// Prices in integer currency units (TWD has no fractional unit).
	Price     int64  `bun:"price,notnull" json:"price"`
	SalePrice *int64 `bun:"sale_price,nullzero" json:"sale_price,omitempty"`

	Description         string `bun:"description" json:"description"`
	DetailedDescription string `bun:"detailed_description" json:"detailed_description,omitempty"`
	PriceDescription    string `bun:"price_description" json:"price_description,omitempty"`
	ImageURL            string `bun:"image_url" json:"image_url,omitempty"`

	// ConfigSchema is the ordered customization field list; PricingRule is
	// the tagged pricing variant. Both are stored as jsonb.
	ConfigSchema []structs.ConfigField `bun:"config_schema,type:jsonb" json:"config_schema"`
	PricingRule  structs.PricingRule   `bun:"pricing_rule,type:jsonb" json:"pricing_rule"`

	IsActive  bool      `bun:"is_active,notnull" json:"is_active"`
	SortOrder int       `bun:"sort_order,notnull,default:0" json:"sort_order"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// BasePrice is the price the pricing engine starts from: the sale price
// when one is set, the regular price otherwise.
func (p *Product) BasePrice() int64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// FieldByName returns the config field with the given name, or nil.
func (p *Product) FieldByName(name string) *structs.ConfigField {
	for i := range p.ConfigSchema {
		if p.ConfigSchema[i].Name == name {
			return &p.ConfigSchema[i]
		}
	}
	return nil
}
