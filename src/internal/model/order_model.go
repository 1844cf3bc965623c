package model

import "time"

type CartItemRequest struct {
	MenuItemID string `json:"menuItem" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

type AddressRequest struct {
	AddressLine string `json:"addressLine" validate:"required,max=300"`
	Landmark    string `json:"landmark" validate:"max=100"`
	ZipCode     string `json:"zipCode" validate:"required,max=10"`
}

type PlaceOrderRequest struct {
	UserID          string            `json:"-" validate:"required"`
	OrderItems      []CartItemRequest `json:"orderItems" validate:"required,min=1,dive"`
	DeliveryAddress AddressRequest    `json:"deliveryAddress" validate:"required"`
	PaymentMode     string            `json:"paymentMode" validate:"required,oneof=COD UPI Online"`
	CouponCode      string            `json:"couponCode,omitempty"`
}

type GetOrderRequest struct {
	UserID  string `json:"-" validate:"required"`
	OrderID string `json:"-" validate:"required"`
	IsAdmin bool   `json:"-"`
}

type UpdateOrderStatusRequest struct {
	OrderID     string `json:"-" validate:"required"`
	OrderStatus string `json:"orderStatus" validate:"required"`
}

type CancelOrderRequest struct {
	UserID  string `json:"-" validate:"required"`
	OrderID string `json:"-" validate:"required"`
	IsAdmin bool   `json:"-"`
}

type OrderItemResponse struct {
	MenuItemID       string `json:"menuItem"`
	Name             string `json:"name"`
	Quantity         int    `json:"quantity"`
	PriceAtSelection int64  `json:"priceAtSelection"`
}

type AddressResponse struct {
	AddressLine string `json:"addressLine"`
	Landmark    string `json:"landmark,omitempty"`
	ZipCode     string `json:"zipCode"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	OrderCode       string              `json:"orderCode"`
	Items           []OrderItemResponse `json:"items"`
	DeliveryAddress AddressResponse     `json:"deliveryAddress"`
	TotalAmount     int64               `json:"totalAmount"`
	DeliveryCharge  int64               `json:"deliveryCharge"`
	TaxAmount       int64               `json:"taxAmount"`
	DiscountAmount  int64               `json:"discountAmount"`
	CouponCode      string              `json:"couponCode,omitempty"`
	PayableAmount   int64               `json:"payableAmount"`
	PaymentMode     string              `json:"paymentMode"`
	PaymentStatus   string              `json:"paymentStatus"`
	OrderStatus     string              `json:"orderStatus"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       *time.Time          `json:"updatedAt,omitempty"`

	// UPI checkout instructions. The reference is stored on the order; the
	// UPI id is filled from settings on order creation only.
	UpiID            string `json:"upiId,omitempty"`
	PaymentReference string `json:"paymentReference,omitempty"`
}
