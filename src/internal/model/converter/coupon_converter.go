package converter

import (
	"kitchen-service/src/internal/entity"
	"kitchen-service/src/internal/model"
)

func CouponToResponse(coupon *entity.Coupon) *model.CouponResponse {
	return &model.CouponResponse{
		Code:           coupon.Code,
		DiscountType:   coupon.DiscountType,
		DiscountValue:  coupon.DiscountValue,
		MinOrderAmount: coupon.MinOrderAmount,
		MaxDiscount:    coupon.MaxDiscount,
		ExpiryDate:     coupon.ExpiryDate,
		UsageLimit:     coupon.UsageLimit,
		UsageCount:     coupon.UsageCount,
		IsActive:       coupon.IsActive,
	}
}

func CouponsToResponse(coupons []entity.Coupon) []model.CouponResponse {
	out := make([]model.CouponResponse, 0, len(coupons))
	for i := range coupons {
		out = append(out, *CouponToResponse(&coupons[i]))
	}
	return out
}

func SettingsToResponse(s *entity.Settings, isOpen bool) *model.SettingsResponse {
	return &model.SettingsResponse{
		Timings: model.TimingsPayload{
			Open:  s.OpenTime,
			Close: s.CloseTime,
		},
		IsHolidayMode:      s.IsHolidayMode,
		TaxPercentage:      s.TaxPercentage,
		BaseDeliveryCharge: s.BaseDeliveryCharge,
		FreeDeliveryAbove:  s.FreeDeliveryAbove,
		UpiID:              s.UpiID,
		IsOpen:             isOpen,
	}
}

func DispatchToResponse(d *entity.DispatchRecord) *model.DispatchResponse {
	return &model.DispatchResponse{
		ID:             d.ID,
		OrderID:        d.OrderID,
		ServiceName:    d.ServiceName,
		BookingID:      d.BookingID,
		DeliveryCharge: d.DeliveryCharge,
		DispatchTime:   d.DispatchTime,
		CompletionTime: d.CompletionTime,
	}
}
