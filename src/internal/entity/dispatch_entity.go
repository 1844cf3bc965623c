package entity

import "time"

// DispatchRecord is created once an order reaches Packed and handed to a
// logistics partner. CompletionTime is set exactly once.
type DispatchRecord struct {
	ID             int64      `db:"id"`
	OrderID        string     `db:"order_id"`
	ServiceName    string     `db:"service_name"`
	BookingID      string     `db:"booking_id"`
	DeliveryCharge int64      `db:"delivery_charge"`
	DispatchTime   time.Time  `db:"dispatch_time"`
	CompletionTime *time.Time `db:"completion_time"`
}
