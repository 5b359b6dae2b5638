package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTotals(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{VariantID: "v1", Quantity: 2, UnitPrice: 25},
			{VariantID: "v2", Quantity: 1, UnitPrice: 45.50},
		},
		Currency: "USD",
	}

	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 95.50, cart.TotalPrice())
}

func TestCartTotalsEmpty(t *testing.T) {
	var cart Cart
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestCartClone(t *testing.T) {
	cart := Cart{
		Items:    []CartItem{{VariantID: "v1", Quantity: 2, UnitPrice: 25}},
		Currency: "USD",
	}

	clone := cart.Clone()
	clone.Items[0].Quantity = 99

	assert.Equal(t, 2, cart.Items[0].Quantity, "mutating the clone must not touch the original")
}

func TestCartJSONShape(t *testing.T) {
	cart := Cart{
		Items:    []CartItem{{ProductID: "p1", VariantID: "v1", Quantity: 2, UnitPrice: 25, Title: "Canvas Print"}},
		Total:    50,
		Currency: "USD",
	}

	b, err := json.Marshal(cart)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Contains(t, decoded, "items")
	assert.Contains(t, decoded, "currency")

	item := decoded["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "v1", item["variantId"])
	assert.Equal(t, 25.0, item["price"])
}
