package converter

import (
	"kitchen-service/src/internal/entity"
	"kitchen-service/src/internal/model"

	"github.com/google/uuid"
)

func OrderToResponse(order *entity.Order) *model.OrderResponse {
	items := make([]model.OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, model.OrderItemResponse{
			MenuItemID:       it.MenuItemID,
			Name:             it.Name,
			Quantity:         it.Quantity,
			PriceAtSelection: it.PriceAtSelection,
		})
	}
	couponCode := ""
	if order.CouponCode != nil {
		couponCode = *order.CouponCode
	}
	return &model.OrderResponse{
		ID:        order.ID,
		OrderCode: order.OrderCode,
		Items:     items,
		DeliveryAddress: model.AddressResponse{
			AddressLine: order.AddressLine,
			Landmark:    order.Landmark,
			ZipCode:     order.ZipCode,
		},
		TotalAmount:      order.TotalAmount,
		DeliveryCharge:   order.DeliveryCharge,
		TaxAmount:        order.TaxAmount,
		DiscountAmount:   order.DiscountAmount,
		CouponCode:       couponCode,
		PayableAmount:    order.PayableAmount,
		PaymentMode:      order.PaymentMode,
		PaymentStatus:    order.PaymentStatus,
		PaymentReference: order.PaymentReference,
		OrderStatus:      order.OrderStatus,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

func OrderToEvent(order *entity.Order, fromStatus string) *model.OrderEvent {
	return &model.OrderEvent{
		ID:            uuid.NewString(),
		OrderID:       order.ID,
		OrderCode:     order.OrderCode,
		UserID:        order.UserID,
		FromStatus:    fromStatus,
		OrderStatus:   order.OrderStatus,
		PayableAmount: order.PayableAmount,
	}
}

func OrderToPaymentEvent(order *entity.Order, method string) *model.PaymentEvent {
	return &model.PaymentEvent{
		ID:            uuid.NewString(),
		OrderID:       order.ID,
		PaymentMode:   order.PaymentMode,
		PaymentStatus: order.PaymentStatus,
		Method:        method,
	}
}
