package entity

type MenuItem struct {
	ID            string  `json:"id"`
	RestaurantID  string  `json:"restaurant_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	EstimatedTime int     `json:"estimated_time"` // minutes
	Category      string  `json:"category"`
	Image         string  `json:"image,omitempty"`
}

/*
Mysql Table

CREATE TABLE menu_items (
	id VARCHAR(36) PRIMARY KEY,
	restaurant_id VARCHAR(36) NOT NULL,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	price DOUBLE NOT NULL,
	estimated_time INT NOT NULL,
	category VARCHAR(50) NOT NULL,
	image VARCHAR(512) NOT NULL DEFAULT '',
	INDEX restaurant_idx (restaurant_id)
);
*/
