package entity

import "time"

// Settings is the single admin-mutable business-rules row read by every
// checkout. Missing timings mean availability cannot be computed and the store
// is treated as open (fail-open).
type Settings struct {
	ID                 int64      `db:"id"`
	OpenTime           string     `db:"open_time"`
	CloseTime          string     `db:"close_time"`
	IsHolidayMode      bool       `db:"is_holiday_mode"`
	TaxPercentage      int        `db:"tax_percentage"`
	BaseDeliveryCharge int64      `db:"base_delivery_charge"`
	FreeDeliveryAbove  int64      `db:"free_delivery_above"`
	UpiID              string     `db:"upi_id"`
	UpdatedAt          *time.Time `db:"updated_at"`
}

// Checkout defaults used when the admin has never set a field.
const (
	DefaultTaxPercentage      = 5
	DefaultBaseDeliveryCharge = 40
	DefaultFreeDeliveryAbove  = 500
)

// ApplyDefaults fills unset numeric business rules with the storefront
// defaults so pricing never runs on zeroes.
func (s *Settings) ApplyDefaults() {
	if s.TaxPercentage == 0 {
		s.TaxPercentage = DefaultTaxPercentage
	}
	if s.BaseDeliveryCharge == 0 {
		s.BaseDeliveryCharge = DefaultBaseDeliveryCharge
	}
	if s.FreeDeliveryAbove == 0 {
		s.FreeDeliveryAbove = DefaultFreeDeliveryAbove
	}
}
