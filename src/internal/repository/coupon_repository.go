package repository

import (
	"context"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/pkg/databases/mysql"
)

type CouponRepository struct {
	DB mysql.DBInterface
}

func NewCouponRepository(db mysql.DBInterface) *CouponRepository {
	return &CouponRepository{
		DB: db,
	}
}

const couponColumns = `
	id,
	code,
	discount_type,
	discount_value,
	min_order_amount,
	max_discount,
	expiry_date,
	usage_limit,
	usage_count,
	is_active,
	created_at,
	updated_at
`

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var coupon entity.Coupon
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = ?`
	err = db.GetContext(ctx, &coupon, query, code)
	if err != nil {
		return nil, err
	}

	return &coupon, nil
}

func (r *CouponRepository) FindActive(ctx context.Context) ([]entity.Coupon, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var coupons []entity.Coupon
	query := `
		SELECT ` + couponColumns + `
		FROM coupons
		WHERE is_active = 1
		AND usage_count < usage_limit
		AND (expiry_date IS NULL OR expiry_date >= NOW())
		ORDER BY created_at DESC
	`
	err = db.SelectContext(ctx, &coupons, query)
	if err != nil {
		return nil, err
	}

	return coupons, nil
}

func (r *CouponRepository) List(ctx context.Context) ([]entity.Coupon, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var coupons []entity.Coupon
	query := `SELECT ` + couponColumns + ` FROM coupons ORDER BY created_at DESC`
	err = db.SelectContext(ctx, &coupons, query)
	if err != nil {
		return nil, err
	}

	return coupons, nil
}

func (r *CouponRepository) Insert(ctx context.Context, coupon *entity.Coupon) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO coupons (
			code, discount_type, discount_value, min_order_amount,
			max_discount, expiry_date, usage_limit, usage_count,
			is_active, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, NOW())
	`
	_, err = db.ExecContext(ctx, query,
		coupon.Code,
		coupon.DiscountType,
		coupon.DiscountValue,
		coupon.MinOrderAmount,
		coupon.MaxDiscount,
		coupon.ExpiryDate,
		coupon.UsageLimit,
		coupon.IsActive,
	)
	return err
}

func (r *CouponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE coupons SET
			discount_type = ?,
			discount_value = ?,
			min_order_amount = ?,
			max_discount = ?,
			expiry_date = ?,
			usage_limit = ?,
			is_active = ?,
			updated_at = NOW()
		WHERE code = ?
	`
	_, err = db.ExecContext(ctx, query,
		coupon.DiscountType,
		coupon.DiscountValue,
		coupon.MinOrderAmount,
		coupon.MaxDiscount,
		coupon.ExpiryDate,
		coupon.UsageLimit,
		coupon.IsActive,
		coupon.Code,
	)
	return err
}

func (r *CouponRepository) Delete(ctx context.Context, code string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `DELETE FROM coupons WHERE code = ?`, code)
	return err
}

// Redeem is the one write that races between concurrent checkouts: the guard
// and the increment run in a single statement so the last use of a limited
// coupon can only be taken once.
func (r *CouponRepository) Redeem(ctx context.Context, code string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE coupons
		SET usage_count = usage_count + 1, updated_at = NOW()
		WHERE code = ?
		AND is_active = 1
		AND usage_count < usage_limit
	`
	res, err := db.ExecContext(ctx, query, code)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (r *CouponRepository) Release(ctx context.Context, code string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE coupons
		SET usage_count = usage_count - 1, updated_at = NOW()
		WHERE code = ?
		AND usage_count > 0
	`
	_, err = db.ExecContext(ctx, query, code)
	return err
}
