package entity

import "errors"

var (
	ErrInvalidOrder       = errors.New("invalid order data")
	ErrInvalidMenuItem    = errors.New("invalid menu item data")
	ErrInvalidUser        = errors.New("invalid user data")
	ErrOrderNotFound      = errors.New("order not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
