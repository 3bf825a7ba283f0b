package entity

const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
)

type User struct {
	ID             int    `json:"id"`
	Email          string `json:"email"`
	Password       string `json:"-"` // bcrypt hash, never serialized
	Role           string `json:"role"`
	RestaurantID   string `json:"restaurant_id,omitempty"`
	RestaurantName string `json:"restaurant_name,omitempty"`
}

/*
Mysql Table

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	password VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL,
	restaurant_id VARCHAR(36) NOT NULL DEFAULT '',
	restaurant_name VARCHAR(255) NOT NULL DEFAULT '',
	UNIQUE INDEX email_idx (email)
);
*/
