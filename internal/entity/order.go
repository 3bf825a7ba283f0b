package entity

import "time"

type Order struct {
	ID           int         `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	Items        []OrderItem `json:"items"`
	TableNumber  int         `json:"table_number"`
	TotalPrice   float64     `json:"total_price"`
	Status       Status      `json:"status"` // see status.go
	Timestamp    time.Time   `json:"timestamp"`
}

// OrderItem is a snapshot of the menu item at submission time, so later
// catalog edits or deletions never alter a stored order.
type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image,omitempty"`
}

/*
Mysql Table

CREATE TABLE orders (
	id INT AUTO_INCREMENT PRIMARY KEY,
	restaurant_id VARCHAR(36) NOT NULL,
	table_number INT NOT NULL,
	total_price DOUBLE NOT NULL,
	status VARCHAR(20) NOT NULL,
	timestamp DATETIME NOT NULL,
	INDEX restaurant_status_idx (restaurant_id, status),
	INDEX restaurant_timestamp_idx (restaurant_id, timestamp)
);

CREATE TABLE order_items (
	id INT AUTO_INCREMENT PRIMARY KEY,
	order_id INT NOT NULL,
	menu_item_id VARCHAR(36) NOT NULL,
	name VARCHAR(255) NOT NULL,
	price DOUBLE NOT NULL,
	quantity INT NOT NULL,
	image VARCHAR(512) NOT NULL DEFAULT '',
	FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
);

CREATE TABLE revenue (
	restaurant_id VARCHAR(36) NOT NULL,
	month CHAR(7) NOT NULL,
	total DOUBLE NOT NULL,
	PRIMARY KEY (restaurant_id, month)
);
*/
