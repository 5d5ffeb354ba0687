package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusProcessing.IsValid())
	assert.True(t, OrderStatusShipped.IsValid())
	assert.True(t, OrderStatusDelivered.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("Refunded").IsValid())
}

func TestOrderStatusTransitions(t *testing.T) {
	type TestCase struct {
		Name    string
		From    OrderStatus
		To      OrderStatus
		Allowed bool
	}

	testCases := []TestCase{
		{Name: "processing to shipped", From: OrderStatusProcessing, To: OrderStatusShipped, Allowed: true},
		{Name: "processing to cancelled", From: OrderStatusProcessing, To: OrderStatusCancelled, Allowed: true},
		{Name: "processing to delivered skips shipped", From: OrderStatusProcessing, To: OrderStatusDelivered, Allowed: false},
		{Name: "shipped to delivered", From: OrderStatusShipped, To: OrderStatusDelivered, Allowed: true},
		{Name: "shipped to cancelled", From: OrderStatusShipped, To: OrderStatusCancelled, Allowed: true},
		{Name: "shipped back to processing", From: OrderStatusShipped, To: OrderStatusProcessing, Allowed: false},
		{Name: "delivered is terminal", From: OrderStatusDelivered, To: OrderStatusShipped, Allowed: false},
		{Name: "delivered cannot repeat", From: OrderStatusDelivered, To: OrderStatusDelivered, Allowed: false},
		{Name: "cancelled is terminal", From: OrderStatusCancelled, To: OrderStatusProcessing, Allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Allowed, tc.From.CanTransitionTo(tc.To))
		})
	}
}
