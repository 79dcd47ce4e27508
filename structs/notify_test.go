package structs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNotificationMarshalsWebhookFieldNames(t *testing.T) {
	n := OrderNotification{
		OrderID: "ORD-ABC123XY",
		Customer: NotifyCustomer{
			Name:  "Mei Lin",
			Email: "mei@example.com",
		},
		Items: []NotifyItem{
			{
				ProductName: "Acrylic Keychain",
				Quantity:    2,
				Price:       198,
				Options:     map[string]string{"Sides": "Double"},
			},
		},
		TotalAmount:   258,
		EstimatedDate: "2026-09-05",
	}

	raw, err := json.Marshal(n)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, "ORD-ABC123XY", payload["orderId"])
	assert.EqualValues(t, 258, payload["totalAmount"])
	assert.Equal(t, "2026-09-05", payload["estimatedDate"])
	assert.NotContains(t, payload, "order_id")
	assert.NotContains(t, payload, "total_amount")

	customer, ok := payload["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Mei Lin", customer["name"])
	assert.Equal(t, "mei@example.com", customer["email"])
}

func TestNotifyItemFlattensOptionsNextToFixedFields(t *testing.T) {
	item := NotifyItem{
		ProductName: "Acrylic Keychain",
		Quantity:    2,
		Price:       198,
		Options:     map[string]string{"Sides": "Double", "Back text": "BCS"},
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(raw, &flat))

	assert.Equal(t, "Acrylic Keychain", flat["productName"])
	assert.EqualValues(t, 2, flat["quantity"])
	assert.EqualValues(t, 198, flat["price"])
	assert.Equal(t, "Double", flat["Sides"])
	assert.Equal(t, "BCS", flat["Back text"])
	assert.NotContains(t, flat, "options")
}

func TestNotifyItemWithoutOptionsKeepsOnlyFixedFields(t *testing.T) {
	raw, err := json.Marshal(NotifyItem{ProductName: "Sticker", Quantity: 1, Price: 30})
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(raw, &flat))
	assert.Len(t, flat, 3)
}
