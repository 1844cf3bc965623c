package usecase

import (
	"math"
	"time"

	"kitchen-service/src/internal/entity"
)

// Discount is the outcome of a successful coupon evaluation.
type Discount struct {
	Amount         int64
	IsFreeDelivery bool
}

type Totals struct {
	DeliveryCharge int64
	Tax            int64
	PayableAmount  int64
}

// Coupon rejection reasons shown verbatim to the customer.
const (
	couponReasonNotFound     = "coupon not found"
	couponReasonInactive     = "coupon is not active"
	couponReasonExpired      = "coupon has expired"
	couponReasonLimitReached = "coupon usage limit reached"
	couponReasonBelowMinimum = "order amount is below the coupon minimum"
)

// evaluateCoupon runs the applicability checks in order (first failure wins)
// and computes the discount. A non-empty reason means rejection and a zero
// discount; no partial discount is ever returned.
func evaluateCoupon(coupon *entity.Coupon, subtotal int64, now time.Time) (Discount, string) {
	if coupon == nil {
		return Discount{}, couponReasonNotFound
	}
	if !coupon.IsActive {
		return Discount{}, couponReasonInactive
	}
	if coupon.ExpiryDate != nil && now.After(*coupon.ExpiryDate) {
		return Discount{}, couponReasonExpired
	}
	if coupon.UsageCount >= coupon.UsageLimit {
		return Discount{}, couponReasonLimitReached
	}
	if subtotal < coupon.MinOrderAmount {
		return Discount{}, couponReasonBelowMinimum
	}

	switch coupon.DiscountType {
	case entity.DiscountTypePercentage:
		raw := subtotal * coupon.DiscountValue / 100
		if coupon.MaxDiscount > 0 && raw > coupon.MaxDiscount {
			raw = coupon.MaxDiscount
		}
		return Discount{Amount: raw}, ""
	case entity.DiscountTypeFlat:
		raw := coupon.DiscountValue
		if raw > subtotal {
			raw = subtotal
		}
		return Discount{Amount: raw}, ""
	case entity.DiscountTypeFreeDelivery:
		return Discount{IsFreeDelivery: true}, ""
	}

	return Discount{}, couponReasonNotFound
}

// ComputeTotals combines subtotal, delivery fee policy, tax policy, and
// discount into the payable amount. Pure and deterministic; all values are
// whole currency units.
func ComputeTotals(subtotal int64, settings *entity.Settings, discount Discount) Totals {
	var deliveryCharge int64
	if !discount.IsFreeDelivery && subtotal <= settings.FreeDeliveryAbove {
		deliveryCharge = settings.BaseDeliveryCharge
	}

	tax := int64(math.Round(float64(subtotal) * float64(settings.TaxPercentage) / 100))

	payable := subtotal + deliveryCharge + tax - discount.Amount
	if payable < 0 {
		payable = 0
	}

	return Totals{
		DeliveryCharge: deliveryCharge,
		Tax:            tax,
		PayableAmount:  payable,
	}
}
