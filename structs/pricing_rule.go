package structs

import "fmt"

// RuleKind discriminates the closed set of pricing models.
type RuleKind string

const (
	RuleKindTiered   RuleKind = "tiered"
	RuleKindAdditive RuleKind = "additive"
	RuleKindFlat     RuleKind = "flat"
)

// PricePoints holds the retail and bulk unit prices for one siding mode.
type PricePoints struct {
	Retail int64 `json:"retail"`
	Bulk   int64 `json:"bulk"`
}

// TierTable maps the two siding modes to their price points.
type TierTable struct {
	Single PricePoints `json:"single"`
	Double PricePoints `json:"double"`
}

// PricingRule is a tagged variant stored as jsonb on the product row.
// Exactly one kind is active; the fields of the other kinds stay zero.
// All amounts are integer currency units.
type PricingRule struct {
	Kind RuleKind `json:"kind"`

	// tiered: two price points per siding mode, whole-line bulk repricing
	// once quantity reaches BulkThreshold.
	Tiers         *TierTable `json:"tiers,omitempty"`
	SidingField   string     `json:"siding_field,omitempty"`
	BulkThreshold int        `json:"bulk_threshold,omitempty"`

	// additive: base price plus per-field option modifiers.
	Base      int64                       `json:"base,omitempty"`
	Modifiers map[string]map[string]int64 `json:"modifiers,omitempty"`

	// flat: configuration-insensitive per-unit price.
	PerUnit int64 `json:"per_unit,omitempty"`
}

// DefaultBulkThreshold is the quantity breakpoint at which tiered rules
// reprice the entire line at the bulk rate.
const DefaultBulkThreshold = 50

// Validate checks the rule invariants: a known kind, the fields that kind
// requires, and non-negative integer amounts.
func (r *PricingRule) Validate() error {
	switch r.Kind {
	case RuleKindTiered:
		if r.Tiers == nil {
			return fmt.Errorf("tiered rule: tiers are required")
		}
		for _, pp := range []PricePoints{r.Tiers.Single, r.Tiers.Double} {
			if pp.Retail < 0 || pp.Bulk < 0 {
				return fmt.Errorf("tiered rule: negative price point")
			}
		}
		if r.BulkThreshold < 0 {
			return fmt.Errorf("tiered rule: negative bulk threshold")
		}
	case RuleKindAdditive:
		if r.Base < 0 {
			return fmt.Errorf("additive rule: negative base price")
		}
		for field, opts := range r.Modifiers {
			for value, amount := range opts {
				if amount < 0 {
					return fmt.Errorf("additive rule: negative modifier %s=%s", field, value)
				}
			}
		}
	case RuleKindFlat:
		if r.PerUnit < 0 {
			return fmt.Errorf("flat rule: negative per-unit price")
		}
	default:
		return fmt.Errorf("unknown pricing rule kind %q", r.Kind)
	}
	return nil
}
