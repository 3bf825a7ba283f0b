package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Akshat190/qr-main/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (email, password, role, restaurant_id, restaurant_name) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.Email, user.Password, user.Role, user.RestaurantID, user.RestaurantName)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	query := `SELECT id, email, password, role, restaurant_id, restaurant_name FROM users WHERE id = ?`

	user := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.RestaurantID, &user.RestaurantName)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail returns (nil, nil) when no such user exists, so callers can
// distinguish "absent" from a store failure.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT id, email, password, role, restaurant_id, restaurant_name FROM users WHERE email = ?`

	user := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.RestaurantID, &user.RestaurantName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
