package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingRuleValidateTiered(t *testing.T) {
	rule := &PricingRule{
		Kind: RuleKindTiered,
		Tiers: &TierTable{
			Single: PricePoints{Retail: 99, Bulk: 50},
			Double: PricePoints{Retail: 150, Bulk: 70},
		},
		SidingField: "sides",
	}
	assert.NoError(t, rule.Validate())

	rule.Tiers = nil
	assert.Error(t, rule.Validate())
}

func TestPricingRuleValidateRejectsNegativePrices(t *testing.T) {
	rule := &PricingRule{
		Kind: RuleKindTiered,
		Tiers: &TierTable{
			Single: PricePoints{Retail: -1, Bulk: 50},
		},
	}
	assert.Error(t, rule.Validate())

	additive := &PricingRule{
		Kind:      RuleKindAdditive,
		Base:      100,
		Modifiers: map[string]map[string]int64{"size": {"large": -10}},
	}
	assert.Error(t, additive.Validate())

	flat := &PricingRule{Kind: RuleKindFlat, PerUnit: -5}
	assert.Error(t, flat.Validate())
}

func TestPricingRuleValidateUnknownKind(t *testing.T) {
	rule := &PricingRule{Kind: "auction"}
	assert.Error(t, rule.Validate())
}

func TestPricingRuleValidateAdditive(t *testing.T) {
	rule := &PricingRule{
		Kind: RuleKindAdditive,
		Base: 500,
		Modifiers: map[string]map[string]int64{
			"packaging": {"gift_box": 90},
		},
	}
	assert.NoError(t, rule.Validate())
}
