package repository

import (
	"context"

	"kitchen-service/src/internal/entity"
)

type SettingsStore interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, settings *entity.Settings) error
}

type CouponStore interface {
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
	FindActive(ctx context.Context) ([]entity.Coupon, error)
	List(ctx context.Context) ([]entity.Coupon, error)
	Insert(ctx context.Context, coupon *entity.Coupon) error
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, code string) error
	// Redeem increments usage_count only while usage_count < usage_limit and
	// the coupon is still active. Returns false when the guard did not hold.
	Redeem(ctx context.Context, code string) (bool, error)
	// Release undoes a redemption when order creation fails after the
	// increment already went through.
	Release(ctx context.Context, code string) error
}

type MenuStore interface {
	FindPrices(ctx context.Context, menuItemIDs []string) (map[string]entity.MenuItemPrice, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	FindByUser(ctx context.Context, userID string) ([]entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	// UpdateStatus moves the order from one status to another only if it is
	// still in the expected status. Returns false on a concurrent change.
	UpdateStatus(ctx context.Context, orderID, fromStatus, toStatus string) (bool, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, fromStatuses []string, toStatus string) (bool, error)
	// SetGatewayOrderID binds the gateway checkout session to the order so a
	// callback can only reconcile the session it was issued for.
	SetGatewayOrderID(ctx context.Context, orderID, gatewayOrderID string) error
	InsertPaymentAttempt(ctx context.Context, attempt *entity.PaymentAttempt) error
	FindPaymentAttempts(ctx context.Context, orderID string) ([]entity.PaymentAttempt, error)
	MarkAttemptsVerified(ctx context.Context, orderID string) error
}

type DispatchStore interface {
	Insert(ctx context.Context, record *entity.DispatchRecord) error
	FindByID(ctx context.Context, id int64) (*entity.DispatchRecord, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.DispatchRecord, error)
	List(ctx context.Context) ([]entity.DispatchRecord, error)
	// Complete stamps completion_time once; false when already completed.
	Complete(ctx context.Context, id int64) (bool, error)
}
