package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Akshat190/qr-main/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

// CreateOrder inserts the order and its line items in one transaction, so a
// failed item insert never leaves a partial order behind.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	orderQuery := `INSERT INTO orders (restaurant_id, table_number, total_price, status, timestamp) VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, orderQuery, order.RestaurantID, order.TableNumber, order.TotalPrice, order.Status, order.Timestamp)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	// Insert line items with batch
	itemQuery := `INSERT INTO order_items (order_id, menu_item_id, name, price, quantity, image) VALUES `

	var values []interface{}
	for _, item := range order.Items {
		itemQuery += "(?, ?, ?, ?, ?, ?),"
		values = append(values, orderID, item.MenuItemID, item.Name, item.Price, item.Quantity, item.Image)
	}

	// Remove the trailing comma
	itemQuery = itemQuery[:len(itemQuery)-1]

	_, err = tx.ExecContext(ctx, itemQuery, values...)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	order.ID = int(orderID)
	return order, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	query := `SELECT id, restaurant_id, table_number, total_price, status, timestamp FROM orders WHERE id = ?`

	order := &entity.Order{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &order.TotalPrice, &order.Status, &order.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrOrderNotFound
		}
		return nil, err
	}

	order.Items, err = r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListActiveOrders returns the restaurant's pending orders, newest first.
func (r *OrderRepository) ListActiveOrders(ctx context.Context, restaurantID string) ([]entity.Order, error) {
	query := `SELECT id, restaurant_id, table_number, total_price, status, timestamp
	          FROM orders WHERE restaurant_id = ? AND status = ? ORDER BY timestamp DESC`
	return r.listOrders(ctx, query, restaurantID, entity.StatusPending)
}

// ListOrdersBetween returns the restaurant's orders with from <= timestamp < to.
func (r *OrderRepository) ListOrdersBetween(ctx context.Context, restaurantID string, from, to time.Time) ([]entity.Order, error) {
	query := `SELECT id, restaurant_id, table_number, total_price, status, timestamp
	          FROM orders WHERE restaurant_id = ? AND timestamp >= ? AND timestamp < ?`
	return r.listOrders(ctx, query, restaurantID, from, to)
}

// CompleteOrder flips a pending order to completed and accrues its total into
// the revenue counter in the same transaction. Retried calls see the order
// already completed and fail with ErrInvalidTransition instead of
// double-crediting revenue.
func (r *OrderRepository) CompleteOrder(ctx context.Context, restaurantID string, id int) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	var status entity.Status
	var totalPrice float64
	query := `SELECT status, total_price FROM orders WHERE id = ? AND restaurant_id = ? FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, id, restaurantID).Scan(&status, &totalPrice)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrOrderNotFound
		}
		return nil, err
	}

	if !entity.CanTransition(status, entity.StatusCompleted) {
		tx.Rollback()
		return nil, entity.ErrInvalidTransition
	}

	_, err = tx.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, entity.StatusCompleted, id)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	month := time.Now().UTC().Format("2006-01")
	revenueQuery := `INSERT INTO revenue (restaurant_id, month, total) VALUES (?, ?, ?)
	                 ON DUPLICATE KEY UPDATE total = total + VALUES(total)`
	_, err = tx.ExecContext(ctx, revenueQuery, restaurantID, month, totalPrice)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.GetOrderByID(ctx, id)
}

// DeleteOrder removes the order regardless of its status. Line items go with
// it via the foreign key cascade.
func (r *OrderRepository) DeleteOrder(ctx context.Context, restaurantID string, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ? AND restaurant_id = ?`, id, restaurantID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) GetRevenue(ctx context.Context, restaurantID, month string) (float64, error) {
	var total float64
	query := `SELECT total FROM revenue WHERE restaurant_id = ? AND month = ?`
	err := r.db.QueryRowContext(ctx, query, restaurantID, month).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return total, nil
}

func (r *OrderRepository) listOrders(ctx context.Context, query string, args ...interface{}) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		order := entity.Order{}
		err := rows.Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &order.TotalPrice, &order.Status, &order.Timestamp)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items, err = r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID int) ([]entity.OrderItem, error) {
	query := `SELECT menu_item_id, name, price, quantity, image FROM order_items WHERE order_id = ?`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		item := entity.OrderItem{}
		err := rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Quantity, &item.Image)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
