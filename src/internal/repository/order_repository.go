package repository

import (
	"context"
	"fmt"
	"strings"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/pkg/databases/mysql"
)

type OrderRepository struct {
	DB mysql.DBInterface
}

func NewOrderRepository(db mysql.DBInterface) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

const orderColumns = `
	id,
	order_code,
	user_id,
	address_line,
	landmark,
	zip_code,
	total_amount,
	delivery_charge,
	tax_amount,
	discount_amount,
	coupon_code,
	payable_amount,
	payment_mode,
	payment_status,
	payment_reference,
	gateway_order_id,
	order_status,
	created_at,
	updated_at
`

// Insert writes the order row and its items in one transaction.
func (r *OrderRepository) Insert(ctx context.Context, order *entity.Order) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (
			id, order_code, user_id, address_line, landmark, zip_code,
			total_amount, delivery_charge, tax_amount, discount_amount,
			coupon_code, payable_amount, payment_mode, payment_status,
			payment_reference, order_status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		order.ID,
		order.OrderCode,
		order.UserID,
		order.AddressLine,
		order.Landmark,
		order.ZipCode,
		order.TotalAmount,
		order.DeliveryCharge,
		order.TaxAmount,
		order.DiscountAmount,
		order.CouponCode,
		order.PayableAmount,
		order.PaymentMode,
		order.PaymentStatus,
		order.PaymentReference,
		order.OrderStatus,
		order.CreatedAt,
	)
	if err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO order_items (
			order_id, menu_item_id, name, quantity, price_at_selection
		) VALUES (?, ?, ?, ?, ?)
	`
	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, itemQuery,
			order.ID,
			item.MenuItemID,
			item.Name,
			item.Quantity,
			item.PriceAtSelection,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var order entity.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	err = db.GetContext(ctx, &order, query, id)
	if err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT id, order_id, menu_item_id, name, quantity, price_at_selection
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`
	err = db.SelectContext(ctx, &order.Items, itemQuery, id)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var orders []entity.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = ? ORDER BY created_at DESC`
	err = db.SelectContext(ctx, &orders, query, userID)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var orders []entity.Order
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	err = db.SelectContext(ctx, &orders, query)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateStatus only applies when the row is still in fromStatus, so two
// conflicting operator transitions can never both apply.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, fromStatus, toStatus string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE orders
		SET order_status = ?, updated_at = NOW()
		WHERE id = ?
		AND order_status = ?
	`
	res, err := db.ExecContext(ctx, query, toStatus, orderID, fromStatus)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, orderID string, fromStatuses []string, toStatus string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(fromStatuses)), ",")
	query := fmt.Sprintf(`
		UPDATE orders
		SET payment_status = ?, updated_at = NOW()
		WHERE id = ?
		AND payment_status IN (%s)
	`, placeholders)

	args := make([]interface{}, 0, len(fromStatuses)+2)
	args = append(args, toStatus, orderID)
	for _, s := range fromStatuses {
		args = append(args, s)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (r *OrderRepository) SetGatewayOrderID(ctx context.Context, orderID, gatewayOrderID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE orders
		SET gateway_order_id = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err = db.ExecContext(ctx, query, gatewayOrderID, orderID)
	return err
}

func (r *OrderRepository) InsertPaymentAttempt(ctx context.Context, attempt *entity.PaymentAttempt) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO payment_attempts (
			order_id, transaction_ref, verification_method, verified_at, created_at
		) VALUES (?, ?, ?, ?, NOW())
	`
	_, err = db.ExecContext(ctx, query,
		attempt.OrderID,
		attempt.TransactionRef,
		attempt.VerificationMethod,
		attempt.VerifiedAt,
	)
	return err
}

func (r *OrderRepository) FindPaymentAttempts(ctx context.Context, orderID string) ([]entity.PaymentAttempt, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var attempts []entity.PaymentAttempt
	query := `
		SELECT id, order_id, transaction_ref, verification_method, verified_at, created_at
		FROM payment_attempts
		WHERE order_id = ?
		ORDER BY id
	`
	err = db.SelectContext(ctx, &attempts, query, orderID)
	if err != nil {
		return nil, err
	}

	return attempts, nil
}

func (r *OrderRepository) MarkAttemptsVerified(ctx context.Context, orderID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE payment_attempts
		SET verified_at = NOW()
		WHERE order_id = ?
		AND verified_at IS NULL
	`
	_, err = db.ExecContext(ctx, query, orderID)
	return err
}
