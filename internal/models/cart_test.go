package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lehngaLine() CartItem {
	return CartItem{
		ProductID:   "p1",
		ProductName: "Bridal Lehnga",
		Size:        "M",
		RentalDays:  3,
		Quantity:    1,
		PricePerDay: 2500,
		Deposit:     5000,
	}
}

func TestAddItemComputesSubtotal(t *testing.T) {
	cart := &Cart{Items: CartItems{}}

	cart.AddItem(lehngaLine())

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7500.0, cart.Items[0].Subtotal) // 2500 * 3 days * 1
	assert.Equal(t, 7500.0, cart.TotalAmount)
	assert.Equal(t, 5000.0, cart.TotalDeposit)
}

func TestAddItemMergesMatchingLines(t *testing.T) {
	cart := &Cart{Items: CartItems{}}

	cart.AddItem(lehngaLine())
	cart.AddItem(lehngaLine())

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 15000.0, cart.Items[0].Subtotal)
	assert.Equal(t, 10000.0, cart.TotalDeposit)
}

func TestAddItemKeepsDifferentSizesSeparate(t *testing.T) {
	cart := &Cart{Items: CartItems{}}

	cart.AddItem(lehngaLine())
	other := lehngaLine()
	other.Size = "L"
	cart.AddItem(other)

	assert.Len(t, cart.Items, 2)
}

func TestAddItemKeepsDifferentRentalLengthsSeparate(t *testing.T) {
	cart := &Cart{Items: CartItems{}}

	cart.AddItem(lehngaLine())
	other := lehngaLine()
	other.RentalDays = 5
	cart.AddItem(other)

	assert.Len(t, cart.Items, 2)
}

func TestUpdateItem(t *testing.T) {
	cart := &Cart{Items: CartItems{}}
	cart.AddItem(lehngaLine())

	require.True(t, cart.UpdateItem("p1", "M", 3))
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 22500.0, cart.Items[0].Subtotal)
	assert.Equal(t, 22500.0, cart.TotalAmount)

	assert.False(t, cart.UpdateItem("p1", "XL", 1), "unknown size should not match")
}

func TestUpdateItemToZeroRemovesLine(t *testing.T) {
	cart := &Cart{Items: CartItems{}}
	cart.AddItem(lehngaLine())

	require.True(t, cart.UpdateItem("p1", "M", 0))
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0.0, cart.TotalAmount)
	assert.Equal(t, 0.0, cart.TotalDeposit)
}

func TestRemoveItem(t *testing.T) {
	cart := &Cart{Items: CartItems{}}
	cart.AddItem(lehngaLine())

	assert.False(t, cart.RemoveItem("p2", "M"))
	assert.True(t, cart.RemoveItem("p1", "M"))
	assert.True(t, cart.IsEmpty())
}

func TestClearItems(t *testing.T) {
	cart := &Cart{Items: CartItems{}}
	cart.AddItem(lehngaLine())

	cart.ClearItems()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0.0, cart.TotalAmount)
}

func TestIsExpired(t *testing.T) {
	fresh := &Cart{ExpiresAt: time.Now().Add(time.Hour)}
	assert.False(t, fresh.IsExpired())

	stale := &Cart{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.True(t, stale.IsExpired())
}

func TestProductHelpers(t *testing.T) {
	p := &Product{IsActive: true, Stock: 2, Sizes: StringList{"S", "M"}}

	assert.True(t, p.IsAvailable())
	assert.True(t, p.HasSize("M"))
	assert.False(t, p.HasSize("XL"))

	assert.True(t, p.DeductStock(2))
	assert.False(t, p.IsAvailable())
	assert.False(t, p.DeductStock(1))

	p.AddStock(3)
	assert.Equal(t, 3, p.Stock)
}
