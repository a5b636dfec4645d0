package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, price string, available int) *Product {
	return &Product{
		Type:              ProductTypeGeneric,
		ProductID:         id,
		Name:              "Product " + id,
		Price:             decimal.RequireFromString(price),
		QuantityAvailable: available,
	}
}

// ============================================================================
// CartItem Tests
// ============================================================================

func TestSubtotal(t *testing.T) {
	item := CartItem{Product: product("001A", "28.00", 100), Quantity: 10}

	assert.Equal(t, "280.00", item.Subtotal().StringFixed(2))
}

func TestSubtotal_TracksPriceAndQuantity(t *testing.T) {
	p := product("001A", "28.00", 100)
	item := CartItem{Product: p, Quantity: 2}
	require.Equal(t, "56.00", item.Subtotal().StringFixed(2))

	// Recomputed on demand, never cached.
	item.Quantity = 5
	assert.Equal(t, "140.00", item.Subtotal().StringFixed(2))
}

func TestSetQuantity_Success(t *testing.T) {
	item := CartItem{Product: product("001A", "28.00", 100), Quantity: 10}

	require.NoError(t, item.SetQuantity(3))

	assert.Equal(t, 3, item.Quantity)
}

func TestSetQuantity_Negative(t *testing.T) {
	item := CartItem{Product: product("001A", "28.00", 100), Quantity: 10}

	err := item.SetQuantity(-1)

	assert.Error(t, err)
	assert.Equal(t, 10, item.Quantity)
}

// ============================================================================
// Cart Tests
// ============================================================================

func TestTotal_MultipleLines(t *testing.T) {
	c := &Cart{Items: []CartItem{
		{Product: product("001A", "28.00", 100), Quantity: 10},
		{Product: product("002A", "50.00", 50), Quantity: 2},
	}}

	// 280.00 + 100.00
	assert.Equal(t, "380.00", c.Total().StringFixed(2))
}

func TestTotal_EmptyCart(t *testing.T) {
	c := &Cart{}
	assert.True(t, c.Total().IsZero())
}

func TestFindItem(t *testing.T) {
	c := &Cart{Items: []CartItem{
		{Product: product("001A", "28.00", 100), Quantity: 1},
		{Product: product("002A", "50.00", 50), Quantity: 1},
	}}

	assert.Equal(t, 0, c.FindItem("001A"))
	assert.Equal(t, 1, c.FindItem("002A"))
	assert.Equal(t, -1, c.FindItem("999Z"))
}

func TestItemCount(t *testing.T) {
	c := &Cart{Items: []CartItem{
		{Product: product("001A", "28.00", 100), Quantity: 3},
		{Product: product("002A", "50.00", 50), Quantity: 4},
	}}

	assert.Equal(t, 7, c.ItemCount())
}

func TestClear(t *testing.T) {
	c := &Cart{Items: []CartItem{
		{Product: product("001A", "28.00", 100), Quantity: 3},
	}}
	require.False(t, c.IsEmpty())

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
}
