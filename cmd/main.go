package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/Akshat190/qr-main/internal/api"
	"github.com/Akshat190/qr-main/internal/cart"
	"github.com/Akshat190/qr-main/internal/config"
	"github.com/Akshat190/qr-main/internal/repository"
	"github.com/Akshat190/qr-main/internal/service"
	"github.com/Akshat190/qr-main/migrations"
)

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Println("Connected to MySQL")
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to MySQL: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to MySQL after retries: %v", err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg.MySQLDSN)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrate(3, db); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	kafkaWriter := config.NewKafkaWriter(cfg.OrderTopic)

	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	userRepo := repository.NewUserRepository(db)
	cartStore := cart.NewStore(rdb)

	orderService := service.NewOrderService(orderRepo, kafkaWriter)
	menuService := service.NewMenuService(menuRepo, rdb)
	userService := service.NewUserService(userRepo, cfg.JWTSecret)
	reportService := service.NewReportService(orderRepo)

	orderHandler := api.NewOrderHandler(orderService, reportService)
	menuHandler := api.NewMenuHandler(menuService)
	userHandler := api.NewUserHandler(userService)
	cartHandler := api.NewCartHandler(cartStore, menuService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(5),
				Burst:     10,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	jwtMiddleware := api.JWTMiddleware(cfg.JWTSecret)

	// auth
	e.POST("/auth/register", userHandler.Register)
	e.POST("/auth/login", userHandler.Login)
	e.GET("/auth/me", userHandler.Me, jwtMiddleware)

	// menu
	e.GET("/menu/:restaurantId", menuHandler.List)
	e.GET("/menu/:restaurantId/:id", menuHandler.Get)
	e.POST("/menu", menuHandler.Create, jwtMiddleware, api.RequireOwner)
	e.DELETE("/menu/:id", menuHandler.Delete, jwtMiddleware, api.RequireOwner)

	// session cart
	e.GET("/cart", cartHandler.Get)
	e.POST("/cart/items", cartHandler.AddItem)
	e.PATCH("/cart/items/:id", cartHandler.UpdateQuantity)
	e.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	e.DELETE("/cart", cartHandler.Clear)

	// orders
	e.POST("/orders/:restaurantId", orderHandler.CreateOrder)
	e.GET("/orders/active", orderHandler.ListActive, jwtMiddleware, api.RequireOwner)
	e.GET("/orders/monthly", orderHandler.ExportMonthly, jwtMiddleware, api.RequireOwner)
	e.GET("/orders/revenue", orderHandler.Revenue, jwtMiddleware, api.RequireOwner)
	e.GET("/orders/:id", orderHandler.GetOrder)
	e.PATCH("/orders/:id", orderHandler.UpdateStatus, jwtMiddleware, api.RequireOwner)
	e.DELETE("/orders/:id", orderHandler.DeleteOrder, jwtMiddleware, api.RequireOwner)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "qr-ordering-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
