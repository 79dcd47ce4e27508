package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusChainIsLinear(t *testing.T) {
	assert.True(t, ValidStatusTransition(OrderStatusPending, OrderStatusPaid))
	assert.True(t, ValidStatusTransition(OrderStatusPaid, OrderStatusShipped))
	assert.True(t, ValidStatusTransition(OrderStatusShipped, OrderStatusCompleted))

	// No skipping ahead or moving backwards.
	assert.False(t, ValidStatusTransition(OrderStatusPending, OrderStatusShipped))
	assert.False(t, ValidStatusTransition(OrderStatusPaid, OrderStatusCompleted))
	assert.False(t, ValidStatusTransition(OrderStatusShipped, OrderStatusPaid))
	assert.False(t, ValidStatusTransition(OrderStatusPaid, OrderStatusPending))
}

func TestCancellationOnlyBeforeShipping(t *testing.T) {
	assert.True(t, ValidStatusTransition(OrderStatusPending, OrderStatusCancelled))
	assert.True(t, ValidStatusTransition(OrderStatusPaid, OrderStatusCancelled))

	assert.False(t, ValidStatusTransition(OrderStatusShipped, OrderStatusCancelled))
	assert.False(t, ValidStatusTransition(OrderStatusCompleted, OrderStatusCancelled))
}

func TestTerminalStatusesAllowNothing(t *testing.T) {
	for _, next := range []OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted} {
		assert.False(t, ValidStatusTransition(OrderStatusCompleted, next))
		assert.False(t, ValidStatusTransition(OrderStatusCancelled, next))
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatus("pending").Valid())
	assert.True(t, OrderStatus("cancelled").Valid())
	assert.False(t, OrderStatus("refunded").Valid())
	assert.False(t, OrderStatus("").Valid())
}
