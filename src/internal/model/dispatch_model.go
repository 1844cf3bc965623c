package model

import "time"

type CreateDispatchRequest struct {
	OrderID        string `json:"orderId" validate:"required"`
	ServiceName    string `json:"serviceName" validate:"required,max=100"`
	BookingID      string `json:"bookingId" validate:"required,max=100"`
	DeliveryCharge int64  `json:"deliveryCharge" validate:"gte=0"`
}

type CompleteDispatchRequest struct {
	DispatchID int64 `json:"-" validate:"required"`
}

type DispatchResponse struct {
	ID             int64      `json:"id"`
	OrderID        string     `json:"orderId"`
	ServiceName    string     `json:"serviceName"`
	BookingID      string     `json:"bookingId"`
	DeliveryCharge int64      `json:"deliveryCharge"`
	DispatchTime   time.Time  `json:"dispatchTime"`
	CompletionTime *time.Time `json:"completionTime,omitempty"`
}
