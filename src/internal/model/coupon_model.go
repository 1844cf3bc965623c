package model

import "time"

type ApplyCouponRequest struct {
	Code        string `json:"code" validate:"required,max=30"`
	OrderAmount int64  `json:"orderAmount" validate:"required,gt=0"`
}

type ApplyCouponResponse struct {
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discountAmount"`
	IsFreeDelivery bool   `json:"isFreeDelivery"`
}

type UpsertCouponRequest struct {
	Code           string `json:"code" validate:"required,max=30"`
	DiscountType   string `json:"discountType" validate:"required,oneof=Percentage Flat FreeDelivery"`
	DiscountValue  int64  `json:"discountValue" validate:"gte=0"`
	MinOrderAmount int64  `json:"minOrderAmount" validate:"gte=0"`
	MaxDiscount    int64  `json:"maxDiscount" validate:"gte=0"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	UsageLimit     int    `json:"usageLimit" validate:"required,gt=0"`
	IsActive       bool   `json:"isActive"`
}

type DeleteCouponRequest struct {
	Code string `json:"-" validate:"required"`
}

type CouponResponse struct {
	Code           string     `json:"code"`
	DiscountType   string     `json:"discountType"`
	DiscountValue  int64      `json:"discountValue"`
	MinOrderAmount int64      `json:"minOrderAmount"`
	MaxDiscount    int64      `json:"maxDiscount,omitempty"`
	ExpiryDate     *time.Time `json:"expiryDate,omitempty"`
	UsageLimit     int        `json:"usageLimit"`
	UsageCount     int        `json:"usageCount"`
	IsActive       bool       `json:"isActive"`
}
