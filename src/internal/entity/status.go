package entity

// Order lifecycle statuses. Transitions only move forward through the kitchen
// flow, or into Cancelled from Pending. Delivered and Cancelled are terminal.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusPreparing = "Preparing"
	OrderStatusPacked    = "Packed"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

const (
	PaymentStatusUnpaid    = "Unpaid"
	PaymentStatusVerifying = "Verifying"
	PaymentStatusPaid      = "Paid"
	PaymentStatusFailed    = "Failed"
)

const (
	PaymentModeCOD    = "COD"
	PaymentModeUPI    = "UPI"
	PaymentModeOnline = "Online"
)

var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing},
	OrderStatusPreparing: {OrderStatusPacked},
	OrderStatusPacked:    {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// CanTransition reports whether moving an order from one status to another is
// legal. Unknown statuses are never legal.
func CanTransition(from, to string) bool {
	next, ok := orderTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

func IsTerminalStatus(status string) bool {
	next, ok := orderTransitions[status]
	return ok && len(next) == 0
}

func IsValidOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

func IsValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentModeCOD, PaymentModeUPI, PaymentModeOnline:
		return true
	}
	return false
}
