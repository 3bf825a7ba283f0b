package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Akshat190/qr-main/internal/entity"
)

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db}
}

func (r *MenuRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	query := `INSERT INTO menu_items (id, restaurant_id, name, description, price, estimated_time, category, image)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.RestaurantID, item.Name, item.Description, item.Price, item.EstimatedTime, item.Category, item.Image)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuRepository) GetMenuItemByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	query := `SELECT id, restaurant_id, name, description, price, estimated_time, category, image
	          FROM menu_items WHERE id = ?`

	item := &entity.MenuItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.EstimatedTime, &item.Category, &item.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *MenuRepository) ListMenuItems(ctx context.Context, restaurantID string) ([]entity.MenuItem, error) {
	query := `SELECT id, restaurant_id, name, description, price, estimated_time, category, image
	          FROM menu_items WHERE restaurant_id = ? ORDER BY category, name`

	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.MenuItem
	for rows.Next() {
		item := entity.MenuItem{}
		err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.EstimatedTime, &item.Category, &item.Image)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuRepository) DeleteMenuItem(ctx context.Context, restaurantID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ? AND restaurant_id = ?`, id, restaurantID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrMenuItemNotFound
	}
	return nil
}
