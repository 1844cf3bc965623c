package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"confirmed to preparing", OrderStatusConfirmed, OrderStatusPreparing, true},
		{"preparing to packed", OrderStatusPreparing, OrderStatusPacked, true},
		{"packed to delivered", OrderStatusPacked, OrderStatusDelivered, true},
		{"no skipping ahead", OrderStatusPending, OrderStatusPreparing, false},
		{"no going back", OrderStatusPacked, OrderStatusPreparing, false},
		{"confirmed cannot cancel", OrderStatusConfirmed, OrderStatusCancelled, false},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusPending, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusConfirmed, false},
		{"unknown from", "Shipped", OrderStatusDelivered, false},
		{"unknown to", OrderStatusPending, "Shipped", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(OrderStatusDelivered))
	assert.True(t, IsTerminalStatus(OrderStatusCancelled))
	assert.False(t, IsTerminalStatus(OrderStatusPending))
	assert.False(t, IsTerminalStatus(OrderStatusPacked))
	assert.False(t, IsTerminalStatus("Shipped"))
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus(OrderStatusPreparing))
	assert.False(t, IsValidOrderStatus("preparing"))
	assert.False(t, IsValidOrderStatus(""))
}

func TestIsValidPaymentMode(t *testing.T) {
	assert.True(t, IsValidPaymentMode(PaymentModeCOD))
	assert.True(t, IsValidPaymentMode(PaymentModeUPI))
	assert.True(t, IsValidPaymentMode(PaymentModeOnline))
	assert.False(t, IsValidPaymentMode("Card"))
}
