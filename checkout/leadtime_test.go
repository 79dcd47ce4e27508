package checkout

import (
	"testing"
	"time"

	"bcspace_server/structs"

	"github.com/stretchr/testify/assert"
)

func TestEstimatedLeadDaysLadder(t *testing.T) {
	cases := []struct {
		units int
		days  int
	}{
		{1, 3},
		{5, 3},
		{6, 5},
		{10, 5},
		{11, 10},
		{25, 10},
		{26, 14},
		{50, 14},
		{51, 21},
		{200, 21},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.days, EstimatedLeadDays(tc.units), "units=%d", tc.units)
	}
}

func TestEstimatedShipDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	lines := []structs.CartLine{
		{ProductID: "charm", Quantity: 4},
		{ProductID: "sticker", Quantity: 3},
	}

	// 7 units -> 5 days
	assert.Equal(t, "2025-03-15", EstimatedShipDate(now, lines))
}
