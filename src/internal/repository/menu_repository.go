package repository

import (
	"context"
	"fmt"
	"strings"

	"kitchen-service/src/internal/entity"
	"kitchen-service/src/pkg/databases/mysql"
)

// MenuRepository only reads prices at order-creation time. The menu catalog
// itself is owned by another service.
type MenuRepository struct {
	DB mysql.DBInterface
}

func NewMenuRepository(db mysql.DBInterface) *MenuRepository {
	return &MenuRepository{
		DB: db,
	}
}

func (r *MenuRepository) FindPrices(ctx context.Context, menuItemIDs []string) (map[string]entity.MenuItemPrice, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	if len(menuItemIDs) == 0 {
		return map[string]entity.MenuItemPrice{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(menuItemIDs)), ",")
	query := fmt.Sprintf(`
		SELECT menu_item_id, name, price, is_available
		FROM menu_items
		WHERE menu_item_id IN (%s)
	`, placeholders)

	args := make([]interface{}, 0, len(menuItemIDs))
	for _, id := range menuItemIDs {
		args = append(args, id)
	}

	var rows []entity.MenuItemPrice
	err = db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]entity.MenuItemPrice, len(rows))
	for _, row := range rows {
		prices[row.MenuItemID] = row
	}

	return prices, nil
}
