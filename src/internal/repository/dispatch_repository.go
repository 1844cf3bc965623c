package repository

import (
	"context"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/pkg/databases/mysql"
)

type DispatchRepository struct {
	DB mysql.DBInterface
}

func NewDispatchRepository(db mysql.DBInterface) *DispatchRepository {
	return &DispatchRepository{
		DB: db,
	}
}

const dispatchColumns = `
	id,
	order_id,
	service_name,
	booking_id,
	delivery_charge,
	dispatch_time,
	completion_time
`

func (r *DispatchRepository) Insert(ctx context.Context, record *entity.DispatchRecord) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO dispatch_records (
			order_id, service_name, booking_id, delivery_charge, dispatch_time
		) VALUES (?, ?, ?, ?, NOW())
	`
	res, err := db.ExecContext(ctx, query,
		record.OrderID,
		record.ServiceName,
		record.BookingID,
		record.DeliveryCharge,
	)
	if err != nil {
		return err
	}
	record.ID, _ = res.LastInsertId()
	return nil
}

func (r *DispatchRepository) FindByID(ctx context.Context, id int64) (*entity.DispatchRecord, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var record entity.DispatchRecord
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_records WHERE id = ?`
	err = db.GetContext(ctx, &record, query, id)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *DispatchRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.DispatchRecord, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var record entity.DispatchRecord
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_records WHERE order_id = ?`
	err = db.GetContext(ctx, &record, query, orderID)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *DispatchRepository) List(ctx context.Context) ([]entity.DispatchRecord, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var records []entity.DispatchRecord
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_records ORDER BY dispatch_time DESC`
	err = db.SelectContext(ctx, &records, query)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *DispatchRepository) Complete(ctx context.Context, id int64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE dispatch_records
		SET completion_time = NOW()
		WHERE id = ?
		AND completion_time IS NULL
	`
	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}
