package migrations

import (
	"database/sql"
	"time"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL,
		restaurant_id VARCHAR(36) NOT NULL DEFAULT '',
		restaurant_name VARCHAR(255) NOT NULL DEFAULT '',
		UNIQUE INDEX email_idx (email)
	);`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id VARCHAR(36) PRIMARY KEY,
		restaurant_id VARCHAR(36) NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		price DOUBLE NOT NULL,
		estimated_time INT NOT NULL,
		category VARCHAR(50) NOT NULL,
		image VARCHAR(512) NOT NULL DEFAULT '',
		INDEX restaurant_idx (restaurant_id)
	);`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INT AUTO_INCREMENT PRIMARY KEY,
		restaurant_id VARCHAR(36) NOT NULL,
		table_number INT NOT NULL,
		total_price DOUBLE NOT NULL,
		status VARCHAR(20) NOT NULL,
		timestamp DATETIME NOT NULL,
		INDEX restaurant_status_idx (restaurant_id, status),
		INDEX restaurant_timestamp_idx (restaurant_id, timestamp)
	);`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id INT AUTO_INCREMENT PRIMARY KEY,
		order_id INT NOT NULL,
		menu_item_id VARCHAR(36) NOT NULL,
		name VARCHAR(255) NOT NULL,
		price DOUBLE NOT NULL,
		quantity INT NOT NULL,
		image VARCHAR(512) NOT NULL DEFAULT '',
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS revenue (
		restaurant_id VARCHAR(36) NOT NULL,
		month CHAR(7) NOT NULL,
		total DOUBLE NOT NULL,
		PRIMARY KEY (restaurant_id, month)
	);`,
}

// AutoMigrate creates every table the service needs if it does not exist.
func AutoMigrate(retries int, db *sql.DB) error {
	for _, query := range tables {
		_, err := db.Exec(query)
		if err != nil {
			// Retry creating the table
			for i := 0; i < retries; i++ {
				time.Sleep(1 * time.Second)
				_, err = db.Exec(query)
				if err == nil {
					break
				}
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
