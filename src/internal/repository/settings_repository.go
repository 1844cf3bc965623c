package repository

import (
	"context"
	"database/sql"
	"errors"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/pkg/databases/mysql"
)

type SettingsRepository struct {
	DB mysql.DBInterface
}

func NewSettingsRepository(db mysql.DBInterface) *SettingsRepository {
	return &SettingsRepository{
		DB: db,
	}
}

// Get reads the single business-rules row. A missing row yields zero-value
// settings so checkout falls back to the storefront defaults.
func (r *SettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var settings entity.Settings
	query := `
		SELECT
			id,
			open_time,
			close_time,
			is_holiday_mode,
			tax_percentage,
			base_delivery_charge,
			free_delivery_above,
			upi_id,
			updated_at
		FROM business_settings
		WHERE id = 1
	`
	err = db.GetContext(ctx, &settings, query)
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.Settings{ID: 1}, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *SettingsRepository) Update(ctx context.Context, settings *entity.Settings) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO business_settings (
			id, open_time, close_time, is_holiday_mode,
			tax_percentage, base_delivery_charge, free_delivery_above,
			upi_id, updated_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE
			open_time = VALUES(open_time),
			close_time = VALUES(close_time),
			is_holiday_mode = VALUES(is_holiday_mode),
			tax_percentage = VALUES(tax_percentage),
			base_delivery_charge = VALUES(base_delivery_charge),
			free_delivery_above = VALUES(free_delivery_above),
			upi_id = VALUES(upi_id),
			updated_at = NOW()
	`
	_, err = db.ExecContext(ctx, query,
		settings.OpenTime,
		settings.CloseTime,
		settings.IsHolidayMode,
		settings.TaxPercentage,
		settings.BaseDeliveryCharge,
		settings.FreeDeliveryAbove,
		settings.UpiID,
	)
	return err
}
