package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddMergesExistingLine(t *testing.T) {
	cart := Cart{}
	cart.Add(CartItem{ProductID: "p1", Price: 10, Quantity: 2})
	cart.Add(CartItem{ProductID: "p1", Price: 10, Quantity: 3})

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)
}

func TestCartAddClampsQuantity(t *testing.T) {
	cart := Cart{}
	cart.Add(CartItem{ProductID: "p1", Quantity: 0})

	assert.Equal(t, int64(1), cart.Items[0].Quantity)
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := Cart{}
	cart.Add(CartItem{ProductID: "p1", Quantity: 2})
	cart.Add(CartItem{ProductID: "p2", Quantity: 1})

	cart.UpdateQuantity("p1", 4)
	assert.Equal(t, int64(4), cart.Items[0].Quantity)

	cart.UpdateQuantity("p2", 0)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
}

func TestCartRemove(t *testing.T) {
	cart := Cart{}
	cart.Add(CartItem{ProductID: "p1", Quantity: 1})
	cart.Add(CartItem{ProductID: "p2", Quantity: 1})

	cart.Remove("p1")

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	cart.Remove("missing")
	assert.Len(t, cart.Items, 1)
}

func TestCartTotalsFlatPolicy(t *testing.T) {
	cart := Cart{}
	cart.Add(CartItem{ProductID: "p1", Price: 49.99, Quantity: 2})

	totals := cart.Totals(ShippingPolicyFlat, 5.00)

	assert.InDelta(t, 99.98, totals.Subtotal, 0.001)
	assert.InDelta(t, 5.00, totals.Shipping, 0.001)
	assert.InDelta(t, 104.98, totals.Total, 0.001)
}

func TestCartTotalsPerItemPolicy(t *testing.T) {
	cart := Cart{}
	cart.Add(CartItem{ProductID: "p1", Price: 20, ShippingFee: 3.50, Quantity: 2})
	cart.Add(CartItem{ProductID: "p2", Price: 10, ShippingFee: 2.00, Quantity: 1})

	totals := cart.Totals(ShippingPolicyPerItem, 5.00)

	assert.InDelta(t, 50.00, totals.Subtotal, 0.001)
	assert.InDelta(t, 5.50, totals.Shipping, 0.001)
	assert.InDelta(t, 55.50, totals.Total, 0.001)
}

func TestCartTotalsEmptyCartHasNoShipping(t *testing.T) {
	cart := Cart{}

	totals := cart.Totals(ShippingPolicyFlat, 5.00)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.Equal(t, 0.0, totals.Total)
}
