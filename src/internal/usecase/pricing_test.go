package usecase

import (
	"testing"
	"time"

	"kitchen-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
)

var evalNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func activeCoupon() *entity.Coupon {
	return &entity.Coupon{
		Code:           "SAVE20",
		DiscountType:   entity.DiscountTypePercentage,
		DiscountValue:  20,
		MinOrderAmount: 200,
		MaxDiscount:    100,
		UsageLimit:     50,
		IsActive:       true,
	}
}

func TestEvaluateCoupon_Rejections(t *testing.T) {
	expired := evalNow.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		mutate func(*entity.Coupon)
		amount int64
		reason string
	}{
		{"inactive", func(c *entity.Coupon) { c.IsActive = false }, 500, couponReasonInactive},
		{"expired", func(c *entity.Coupon) { c.ExpiryDate = &expired }, 500, couponReasonExpired},
		{"limit reached", func(c *entity.Coupon) { c.UsageCount = c.UsageLimit }, 500, couponReasonLimitReached},
		{"below minimum", func(c *entity.Coupon) {}, 150, couponReasonBelowMinimum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon := activeCoupon()
			tt.mutate(coupon)
			discount, reason := evaluateCoupon(coupon, tt.amount, evalNow)
			assert.Equal(t, tt.reason, reason)
			assert.Zero(t, discount.Amount)
			assert.False(t, discount.IsFreeDelivery)
		})
	}

	t.Run("nil coupon", func(t *testing.T) {
		_, reason := evaluateCoupon(nil, 500, evalNow)
		assert.Equal(t, couponReasonNotFound, reason)
	})

	t.Run("inactive wins over expired", func(t *testing.T) {
		coupon := activeCoupon()
		coupon.IsActive = false
		coupon.ExpiryDate = &expired
		_, reason := evaluateCoupon(coupon, 500, evalNow)
		assert.Equal(t, couponReasonInactive, reason)
	})
}

func TestEvaluateCoupon_Percentage(t *testing.T) {
	coupon := activeCoupon()

	discount, reason := evaluateCoupon(coupon, 400, evalNow)
	assert.Empty(t, reason)
	assert.Equal(t, int64(80), discount.Amount)

	// 20% of 1000 is 200, capped at 100.
	discount, reason = evaluateCoupon(coupon, 1000, evalNow)
	assert.Empty(t, reason)
	assert.Equal(t, int64(100), discount.Amount)
}

func TestEvaluateCoupon_Flat(t *testing.T) {
	coupon := activeCoupon()
	coupon.DiscountType = entity.DiscountTypeFlat
	coupon.DiscountValue = 500
	coupon.MinOrderAmount = 0

	// Flat discount never exceeds the subtotal.
	discount, reason := evaluateCoupon(coupon, 300, evalNow)
	assert.Empty(t, reason)
	assert.Equal(t, int64(300), discount.Amount)

	discount, _ = evaluateCoupon(coupon, 800, evalNow)
	assert.Equal(t, int64(500), discount.Amount)
}

func TestEvaluateCoupon_FreeDelivery(t *testing.T) {
	coupon := activeCoupon()
	coupon.DiscountType = entity.DiscountTypeFreeDelivery
	coupon.DiscountValue = 0

	discount, reason := evaluateCoupon(coupon, 400, evalNow)
	assert.Empty(t, reason)
	assert.Zero(t, discount.Amount)
	assert.True(t, discount.IsFreeDelivery)
}

func TestComputeTotals(t *testing.T) {
	settings := &entity.Settings{
		TaxPercentage:      5,
		BaseDeliveryCharge: 40,
		FreeDeliveryAbove:  500,
	}

	tests := []struct {
		name     string
		subtotal int64
		discount Discount
		want     Totals
	}{
		{
			name:     "small order pays delivery",
			subtotal: 300,
			want:     Totals{DeliveryCharge: 40, Tax: 15, PayableAmount: 355},
		},
		{
			name:     "large order skips delivery",
			subtotal: 600,
			want:     Totals{DeliveryCharge: 0, Tax: 30, PayableAmount: 630},
		},
		{
			name:     "free delivery coupon on small order",
			subtotal: 300,
			discount: Discount{IsFreeDelivery: true},
			want:     Totals{DeliveryCharge: 0, Tax: 15, PayableAmount: 315},
		},
		{
			name:     "discount reduces payable",
			subtotal: 600,
			discount: Discount{Amount: 100},
			want:     Totals{DeliveryCharge: 0, Tax: 30, PayableAmount: 530},
		},
		{
			name:     "payable never goes negative",
			subtotal: 100,
			discount: Discount{Amount: 1000},
			want:     Totals{DeliveryCharge: 40, Tax: 5, PayableAmount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotals(tt.subtotal, settings, tt.discount))
		})
	}
}

func TestComputeTotals_RoundsTax(t *testing.T) {
	settings := &entity.Settings{TaxPercentage: 5, BaseDeliveryCharge: 40, FreeDeliveryAbove: 500}

	// 5% of 250 is 12.5, rounded to 13.
	totals := ComputeTotals(250, settings, Discount{})
	assert.Equal(t, int64(13), totals.Tax)
}
