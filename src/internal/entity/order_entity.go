package entity

import "time"

type Order struct {
	ID               string     `db:"id"`
	OrderCode        string     `db:"order_code"`
	UserID           string     `db:"user_id"`
	AddressLine      string     `db:"address_line"`
	Landmark         string     `db:"landmark"`
	ZipCode          string     `db:"zip_code"`
	TotalAmount      int64      `db:"total_amount"`
	DeliveryCharge   int64      `db:"delivery_charge"`
	TaxAmount        int64      `db:"tax_amount"`
	DiscountAmount   int64      `db:"discount_amount"`
	CouponCode       *string    `db:"coupon_code"`
	PayableAmount    int64      `db:"payable_amount"`
	PaymentMode      string     `db:"payment_mode"`
	PaymentStatus    string     `db:"payment_status"`
	PaymentReference string     `db:"payment_reference"`
	GatewayOrderID   string     `db:"gateway_order_id"`
	OrderStatus      string     `db:"order_status"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`

	Items []OrderItem
}

// OrderItem price is captured at order time; later menu edits never touch it.
type OrderItem struct {
	ID               int64  `db:"id"`
	OrderID          string `db:"order_id"`
	MenuItemID       string `db:"menu_item_id"`
	Name             string `db:"name"`
	Quantity         int    `db:"quantity"`
	PriceAtSelection int64  `db:"price_at_selection"`
}

type PaymentAttempt struct {
	ID                 int64      `db:"id"`
	OrderID            string     `db:"order_id"`
	TransactionRef     string     `db:"transaction_ref"`
	VerificationMethod string     `db:"verification_method"`
	VerifiedAt         *time.Time `db:"verified_at"`
	CreatedAt          time.Time  `db:"created_at"`
}

const (
	VerificationMethodManual  = "manual"
	VerificationMethodGateway = "gateway"
)

type MenuItemPrice struct {
	MenuItemID  string `db:"menu_item_id"`
	Name        string `db:"name"`
	Price       int64  `db:"price"`
	IsAvailable bool   `db:"is_available"`
}
