// Package stock allocates shared raw materials to cart configurations.
// Products do not own stock; recipes translate a configuration into
// material demand and availability is judged per material.
package stock

import (
	"bcspace_server/structs"
	"bcspace_server/structs/tables"

	"github.com/google/uuid"
)

// Unlimited marks a configuration with no recipe rows: nothing constrains
// how many can be ordered.
const Unlimited = -1

// Demand returns the per-material consumption of quantity units of the
// given configuration. Only recipes whose match condition accepts the
// configuration contribute; several matching recipes for the same material
// stack.
func Demand(recipes []tables.Recipe, config map[string]string, quantity int) map[uuid.UUID]int {
	demand := make(map[uuid.UUID]int)
	if quantity <= 0 {
		return demand
	}

	for _, recipe := range recipes {
		if !recipe.MatchCondition.Matches(config) {
			continue
		}
		demand[recipe.MaterialID] += recipe.QuantityPerUnit * quantity
	}

	return demand
}

// MaxPurchasable returns how many additional units the available stock can
// cover, given the per-unit demand of one configuration. Returns Unlimited
// when the configuration consumes nothing. The result is floored at zero:
// stock already below demand never yields a negative ceiling.
func MaxPurchasable(available map[uuid.UUID]int, perUnit map[uuid.UUID]int) int {
	if len(perUnit) == 0 {
		return Unlimited
	}

	limit := Unlimited
	for materialID, need := range perUnit {
		if need <= 0 {
			continue
		}
		units := available[materialID] / need
		if units < 0 {
			units = 0
		}
		if limit == Unlimited || units < limit {
			limit = units
		}
	}

	if limit == Unlimited {
		return Unlimited
	}
	return limit
}

// Reserve subtracts a demand from an availability map in place. Values may
// go negative; callers use that to detect shortfalls.
func Reserve(available map[uuid.UUID]int, demand map[uuid.UUID]int) {
	for materialID, need := range demand {
		available[materialID] -= need
	}
}

// Covered reports whether availability satisfies a demand, and names the
// first short material when it does not.
func Covered(available map[uuid.UUID]int, demand map[uuid.UUID]int) (bool, uuid.UUID) {
	for materialID, need := range demand {
		if available[materialID] < need {
			return false, materialID
		}
	}
	return true, uuid.Nil
}

// CartDemand aggregates the material demand of a whole cart. recipesByProduct
// maps a product slug to its recipe rows.
func CartDemand(recipesByProduct map[string][]tables.Recipe, lines []structs.CartLine) map[uuid.UUID]int {
	total := make(map[uuid.UUID]int)
	for _, line := range lines {
		for materialID, need := range Demand(recipesByProduct[line.ProductID], line.Config, line.Quantity) {
			total[materialID] += need
		}
	}
	return total
}
