package model

type TimingsPayload struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type UpdateSettingsRequest struct {
	Timings            TimingsPayload `json:"timings"`
	IsHolidayMode      bool           `json:"isHolidayMode"`
	TaxPercentage      int            `json:"taxPercentage" validate:"gte=0,lte=100"`
	BaseDeliveryCharge int64          `json:"baseDeliveryCharge" validate:"gte=0"`
	FreeDeliveryAbove  int64          `json:"freeDeliveryAbove" validate:"gte=0"`
	UpiID              string         `json:"upiId" validate:"max=100"`
}

type SettingsResponse struct {
	Timings            TimingsPayload `json:"timings"`
	IsHolidayMode      bool           `json:"isHolidayMode"`
	TaxPercentage      int            `json:"taxPercentage"`
	BaseDeliveryCharge int64          `json:"baseDeliveryCharge"`
	FreeDeliveryAbove  int64          `json:"freeDeliveryAbove"`
	UpiID              string         `json:"upiId,omitempty"`
	IsOpen             bool           `json:"isOpen"`
}
