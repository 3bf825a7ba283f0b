package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr   string
	MySQLDSN   string
	RedisAddr  string
	JWTSecret  string
	OrderTopic string
}

func Load() Config {
	// a missing .env file is fine, env vars win either way
	_ = godotenv.Load()

	return Config{
		HTTPAddr:   getenv("HTTP_ADDR", ":8080"),
		MySQLDSN:   getenv("MYSQL_DSN", "root:@tcp(127.0.0.1:3306)/qr-ordering?parseTime=true"),
		RedisAddr:  getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:  getenv("JWT_SECRET", "secret"),
		OrderTopic: getenv("ORDER_TOPIC", "order-events"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
