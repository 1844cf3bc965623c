package model

type Event interface {
	GetId() string
}

// OrderEvent is published on order creation and on every lifecycle
// transition so observers do not have to poll order status.
type OrderEvent struct {
	ID            string `json:"id,omitempty"`
	OrderID       string `json:"order_id"`
	OrderCode     string `json:"order_code"`
	UserID        string `json:"user_id"`
	FromStatus    string `json:"from_status,omitempty"`
	OrderStatus   string `json:"order_status"`
	PayableAmount int64  `json:"payable_amount"`
}

func (e *OrderEvent) GetId() string {
	return e.ID
}

type PaymentEvent struct {
	ID            string `json:"id,omitempty"`
	OrderID       string `json:"order_id"`
	PaymentMode   string `json:"payment_mode"`
	PaymentStatus string `json:"payment_status"`
	Method        string `json:"method,omitempty"`
}

func (e *PaymentEvent) GetId() string {
	return e.ID
}
