package entity

import "time"

const (
	DiscountTypePercentage   = "Percentage"
	DiscountTypeFlat         = "Flat"
	DiscountTypeFreeDelivery = "FreeDelivery"
)

type Coupon struct {
	ID             int64      `db:"id"`
	Code           string     `db:"code"`
	DiscountType   string     `db:"discount_type"`
	DiscountValue  int64      `db:"discount_value"`
	MinOrderAmount int64      `db:"min_order_amount"`
	MaxDiscount    int64      `db:"max_discount"`
	ExpiryDate     *time.Time `db:"expiry_date"`
	UsageLimit     int        `db:"usage_limit"`
	UsageCount     int        `db:"usage_count"`
	IsActive       bool       `db:"is_active"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at"`
}

func IsValidDiscountType(t string) bool {
	switch t {
	case DiscountTypePercentage, DiscountTypeFlat, DiscountTypeFreeDelivery:
		return true
	}
	return false
}
