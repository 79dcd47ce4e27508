package tables

import (
	"bcspace_server/structs"
	"time"

	"github.com/google/uuid"
)

// Material is a shared raw material consumed by product recipes.
// current_stock may only go negative transiently inside a transaction that
// is about to be rolled back; a committed order never leaves it negative.
type Material struct {
	tableName    struct{}  `bun:"table:materials,alias:m"`
	ID           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name         string    `bun:"name,notnull" json:"name"`
	CurrentStock int       `bun:"current_stock,notnull,default:0" json:"current_stock"`
	SafetyStock  int       `bun:"safety_stock,notnull,default:0" json:"safety_stock"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// LowStock reports whether the material is at or below its alert threshold.
func (m *Material) LowStock() bool {
	return m.CurrentStock <= m.SafetyStock
}

// Recipe links a product configuration to raw-material consumption: one
// unit of a matching configuration consumes QuantityPerUnit of the
// material. A nil MatchCondition matches every configuration. A product
// with no recipe rows has unconstrained stock.
type Recipe struct {
	tableName      struct{}           `bun:"table:product_recipes,alias:r"`
	ID              uuid.UUID          `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID       uuid.UUID          `bun:"product_id,notnull,type:uuid" json:"product_id"`
	MaterialID      uuid.UUID          `bun:"material_id,notnull,type:uuid" json:"material_id"`
	QuantityPerUnit int                `bun:"quantity_per_unit,notnull,default:1" json:"quantity_per_unit"`
	MatchCondition  *structs.Condition `bun:"match_condition,type:jsonb,nullzero" json:"match_condition,omitempty"`
}
