package checkout

import (
	"time"

	"bcspace_server/structs"
)

// EstimatedLeadDays returns the production lead time for an order based on
// its total unit count. The ladder reflects batch production capacity.
func EstimatedLeadDays(totalUnits int) int {
	switch {
	case totalUnits > 50:
		return 21
	case totalUnits > 25:
		return 14
	case totalUnits > 10:
		return 10
	case totalUnits > 5:
		return 5
	default:
		return 3
	}
}

// TotalUnits sums the quantities of all lines.
func TotalUnits(lines []structs.CartLine) int {
	var total int
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}

// EstimatedShipDate returns the projected ship date for an order placed at
// the given moment, formatted YYYY-MM-DD.
func EstimatedShipDate(now time.Time, lines []structs.CartLine) string {
	days := EstimatedLeadDays(TotalUnits(lines))
	return now.AddDate(0, 0, days).Format("2006-01-02")
}
