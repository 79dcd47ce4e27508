package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	number := GenerateOrderNumber()

	assert.True(t, strings.HasPrefix(number, "ORD-"))
	assert.Equal(t, strings.ToUpper(number), number)

	// base36 millisecond timestamp plus two random characters
	suffix := strings.TrimPrefix(number, "ORD-")
	assert.GreaterOrEqual(t, len(suffix), 10)
}

func TestGenerateOrderNumberUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for range 200 {
		number := GenerateOrderNumber()
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
}
