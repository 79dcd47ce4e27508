// Package pricing computes authoritative line prices from a product's
// pricing rule. It is pure: callers load the product and pass its rule in,
// so every price shown or charged comes from the same arithmetic.
package pricing

import (
	"bcspace_server/structs"
)

// Unit returns the per-unit price of one cart line. fallback is the
// product's base price, used when the rule leaves its own base amount
// unset. For tiered rules the unit price depends on the line quantity:
// reaching the bulk threshold reprices the whole line at the bulk rate.
func Unit(rule *structs.PricingRule, fallback int64, config map[string]string, quantity int) int64 {
	switch rule.Kind {
	case structs.RuleKindTiered:
		return tieredUnit(rule, config, quantity)
	case structs.RuleKindAdditive:
		return additiveUnit(rule, fallback, config)
	default:
		// flat, and any rule an older client row may carry
		if rule.PerUnit > 0 {
			return rule.PerUnit
		}
		return fallback
	}
}

// Line returns the full line price: unit price times quantity.
func Line(rule *structs.PricingRule, fallback int64, config map[string]string, quantity int) int64 {
	if quantity <= 0 {
		return 0
	}
	return Unit(rule, fallback, config, quantity) * int64(quantity)
}

func tieredUnit(rule *structs.PricingRule, config map[string]string, quantity int) int64 {
	if rule.Tiers == nil {
		return 0
	}

	points := rule.Tiers.Single
	if config[rule.SidingField] == "double" {
		points = rule.Tiers.Double
	}

	threshold := rule.BulkThreshold
	if threshold <= 0 {
		threshold = structs.DefaultBulkThreshold
	}

	// The cliff is deliberate: at the threshold every unit in the line is
	// repriced, so the line total can drop when quantity goes up.
	if quantity >= threshold {
		return points.Bulk
	}
	return points.Retail
}

func additiveUnit(rule *structs.PricingRule, fallback int64, config map[string]string) int64 {
	base := rule.Base
	if base <= 0 {
		base = fallback
	}

	total := base
	for field, value := range config {
		opts, ok := rule.Modifiers[field]
		if !ok {
			continue // unknown field contributes nothing
		}
		total += opts[value] // unknown value contributes zero
	}
	return total
}
