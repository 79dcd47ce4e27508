package stock

import (
	"testing"

	"bcspace_server/structs"
	"bcspace_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	acrylic = uuid.New()
	chain   = uuid.New()
)

func charmRecipes() []tables.Recipe {
	return []tables.Recipe{
		{MaterialID: acrylic, QuantityPerUnit: 1},
		{MaterialID: chain, QuantityPerUnit: 1, MatchCondition: &structs.Condition{Field: "strap", Equals: "chain"}},
	}
}

func TestDemandRespectsMatchConditions(t *testing.T) {
	demand := Demand(charmRecipes(), map[string]string{"strap": "chain"}, 3)

	assert.Equal(t, 3, demand[acrylic])
	assert.Equal(t, 3, demand[chain])

	demand = Demand(charmRecipes(), map[string]string{"strap": "rope"}, 3)
	assert.Equal(t, 3, demand[acrylic])
	assert.NotContains(t, demand, chain)
}

func TestDemandStacksRecipesForSameMaterial(t *testing.T) {
	recipes := []tables.Recipe{
		{MaterialID: acrylic, QuantityPerUnit: 1},
		{MaterialID: acrylic, QuantityPerUnit: 2, MatchCondition: &structs.Condition{Field: "size", Equals: "large"}},
	}

	demand := Demand(recipes, map[string]string{"size": "large"}, 2)
	assert.Equal(t, 6, demand[acrylic])
}

func TestDemandZeroQuantity(t *testing.T) {
	assert.Empty(t, Demand(charmRecipes(), nil, 0))
}

func TestMaxPurchasableFloorDivision(t *testing.T) {
	available := map[uuid.UUID]int{acrylic: 7}
	perUnit := map[uuid.UUID]int{acrylic: 2}

	assert.Equal(t, 3, MaxPurchasable(available, perUnit))
}

func TestMaxPurchasableBoundByScarcestMaterial(t *testing.T) {
	available := map[uuid.UUID]int{acrylic: 10, chain: 2}
	perUnit := map[uuid.UUID]int{acrylic: 1, chain: 1}

	assert.Equal(t, 2, MaxPurchasable(available, perUnit))
}

func TestMaxPurchasableUnlimitedWithoutRecipes(t *testing.T) {
	assert.Equal(t, Unlimited, MaxPurchasable(map[uuid.UUID]int{}, map[uuid.UUID]int{}))
}

func TestMaxPurchasableNeverNegative(t *testing.T) {
	available := map[uuid.UUID]int{acrylic: -3}
	perUnit := map[uuid.UUID]int{acrylic: 1}

	assert.Equal(t, 0, MaxPurchasable(available, perUnit))
}

func TestMaxPurchasableAfterCartReservation(t *testing.T) {
	// Material stock 4, one per unit, shopper already holds 2 in the cart:
	// only 2 more can be added.
	available := map[uuid.UUID]int{acrylic: 4}
	recipes := map[string][]tables.Recipe{
		"charm": {{MaterialID: acrylic, QuantityPerUnit: 1}},
	}
	cart := []structs.CartLine{{ProductID: "charm", Quantity: 2}}

	Reserve(available, CartDemand(recipes, cart))

	perUnit := Demand(recipes["charm"], nil, 1)
	assert.Equal(t, 2, MaxPurchasable(available, perUnit))
}

func TestCoveredReportsShortMaterial(t *testing.T) {
	available := map[uuid.UUID]int{acrylic: 5, chain: 1}
	demand := map[uuid.UUID]int{acrylic: 3, chain: 2}

	ok, short := Covered(available, demand)
	assert.False(t, ok)
	assert.Equal(t, chain, short)

	ok, short = Covered(available, map[uuid.UUID]int{acrylic: 5})
	assert.True(t, ok)
	assert.Equal(t, uuid.Nil, short)
}

func TestCartDemandAggregatesAcrossLines(t *testing.T) {
	recipes := map[string][]tables.Recipe{
		"charm":    {{MaterialID: acrylic, QuantityPerUnit: 1}},
		"keychain": {{MaterialID: acrylic, QuantityPerUnit: 2}},
	}
	cart := []structs.CartLine{
		{ProductID: "charm", Quantity: 3},
		{ProductID: "keychain", Quantity: 2},
		{ProductID: "sticker", Quantity: 5}, // no recipes, no demand
	}

	demand := CartDemand(recipes, cart)
	assert.Equal(t, 7, demand[acrylic])
	assert.Len(t, demand, 1)
}
