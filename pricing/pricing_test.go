package pricing

import (
	"testing"

	"bcspace_server/structs"

	"github.com/stretchr/testify/assert"
)

func keychainRule() *structs.PricingRule {
	return &structs.PricingRule{
		Kind: structs.RuleKindTiered,
		Tiers: &structs.TierTable{
			Single: structs.PricePoints{Retail: 99, Bulk: 50},
			Double: structs.PricePoints{Retail: 150, Bulk: 70},
		},
		SidingField: "sides",
	}
}

func TestTieredRetailBelowThreshold(t *testing.T) {
	rule := keychainRule()
	config := map[string]string{"sides": "single"}

	assert.Equal(t, int64(99), Unit(rule, 0, config, 49))
	assert.Equal(t, int64(4851), Line(rule, 0, config, 49))
}

func TestTieredBulkCliffRepricesWholeLine(t *testing.T) {
	rule := keychainRule()
	config := map[string]string{"sides": "single"}

	// One more unit crosses the threshold and the line total drops.
	assert.Equal(t, int64(50), Unit(rule, 0, config, 50))
	assert.Equal(t, int64(2500), Line(rule, 0, config, 50))
	assert.Less(t, Line(rule, 0, config, 50), Line(rule, 0, config, 49))
}

func TestTieredDoubleSided(t *testing.T) {
	rule := keychainRule()
	config := map[string]string{"sides": "double"}

	assert.Equal(t, int64(150), Unit(rule, 0, config, 1))
	assert.Equal(t, int64(70), Unit(rule, 0, config, 120))
}

func TestTieredMissingSidingFieldFallsBackToSingle(t *testing.T) {
	rule := keychainRule()

	assert.Equal(t, int64(99), Unit(rule, 0, map[string]string{}, 1))
}

func TestTieredCustomThreshold(t *testing.T) {
	rule := keychainRule()
	rule.BulkThreshold = 10
	config := map[string]string{"sides": "single"}

	assert.Equal(t, int64(99), Unit(rule, 0, config, 9))
	assert.Equal(t, int64(50), Unit(rule, 0, config, 10))
}

func TestAdditiveSumsModifiers(t *testing.T) {
	rule := &structs.PricingRule{
		Kind: structs.RuleKindAdditive,
		Base: 500,
		Modifiers: map[string]map[string]int64{
			"size":     {"large": 60},
			"gift_box": {"yes": 30},
		},
	}
	config := map[string]string{"size": "large", "gift_box": "yes"}

	assert.Equal(t, int64(590), Unit(rule, 0, config, 1))
	assert.Equal(t, int64(1770), Line(rule, 0, config, 3))
}

func TestAdditiveUnknownSelectionsContributeZero(t *testing.T) {
	rule := &structs.PricingRule{
		Kind: structs.RuleKindAdditive,
		Base: 500,
		Modifiers: map[string]map[string]int64{
			"size": {"large": 60},
		},
	}

	// Unknown field and unmapped value both add nothing.
	config := map[string]string{"size": "medium", "engraving": "yes"}
	assert.Equal(t, int64(500), Unit(rule, 0, config, 1))
}

func TestAdditiveFallsBackToProductBasePrice(t *testing.T) {
	rule := &structs.PricingRule{
		Kind:      structs.RuleKindAdditive,
		Modifiers: map[string]map[string]int64{"size": {"large": 60}},
	}

	assert.Equal(t, int64(360), Unit(rule, 300, map[string]string{"size": "large"}, 1))
}

func TestFlatIgnoresConfiguration(t *testing.T) {
	rule := &structs.PricingRule{Kind: structs.RuleKindFlat, PerUnit: 120}

	a := Unit(rule, 0, map[string]string{"color": "red"}, 1)
	b := Unit(rule, 0, map[string]string{"color": "blue"}, 99)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(120), a)
}

func TestFlatFallsBackToProductBasePrice(t *testing.T) {
	rule := &structs.PricingRule{Kind: structs.RuleKindFlat}

	assert.Equal(t, int64(250), Unit(rule, 250, nil, 1))
}

func TestLineZeroQuantity(t *testing.T) {
	rule := &structs.PricingRule{Kind: structs.RuleKindFlat, PerUnit: 120}

	assert.Equal(t, int64(0), Line(rule, 0, nil, 0))
}
