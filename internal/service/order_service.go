package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/Akshat190/qr-main/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// OrderStore is the slice of the order repository the service needs.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
	GetOrderByID(ctx context.Context, id int) (*entity.Order, error)
	ListActiveOrders(ctx context.Context, restaurantID string) ([]entity.Order, error)
	CompleteOrder(ctx context.Context, restaurantID string, id int) (*entity.Order, error)
	DeleteOrder(ctx context.Context, restaurantID string, id int) error
	GetRevenue(ctx context.Context, restaurantID, month string) (float64, error)
}

// SubmitRequest is the table-side order payload: the finalized cart plus the
// table it belongs to. The client still sends its own total, but the server
// recomputes it from the line items and rejects a mismatch.
type SubmitRequest struct {
	Items       []entity.OrderItem `json:"items"`
	TableNumber int                `json:"table_number"`
	TotalPrice  float64            `json:"total_price"`
}

// OrderService is a service that provides order-related operations
type OrderService struct {
	orderStore  OrderStore
	kafkaWriter *kafka.Writer
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orderStore OrderStore, kafkaWriter *kafka.Writer) *OrderService {
	return &OrderService{
		orderStore:  orderStore,
		kafkaWriter: kafkaWriter,
	}
}

// Submit validates the finalized cart and persists it as a pending order.
// Line items are stored as snapshots, so the order survives later menu edits.
func (s *OrderService) Submit(ctx context.Context, restaurantID string, req *SubmitRequest) (*entity.Order, error) {
	if err := validateSubmitRequest(req); err != nil {
		return nil, err
	}

	var total float64
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}
	if math.Abs(total-req.TotalPrice) > 0.005 {
		return nil, fmt.Errorf("%w: total price %.2f does not match items total %.2f", entity.ErrInvalidOrder, req.TotalPrice, total)
	}

	items := make([]entity.OrderItem, len(req.Items))
	copy(items, req.Items)

	order := &entity.Order{
		RestaurantID: restaurantID,
		Items:        items,
		TableNumber:  req.TableNumber,
		TotalPrice:   total,
		Status:       entity.StatusPending,
		Timestamp:    time.Now().UTC(),
	}

	createdOrder, err := s.orderStore.CreateOrder(ctx, order)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	err = s.publishOrderEvent(ctx, createdOrder, "created")
	if err != nil {
		return nil, err
	}

	return createdOrder, nil
}

func validateSubmitRequest(req *SubmitRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order has no items", entity.ErrInvalidOrder)
	}
	if req.TableNumber < 1 {
		return fmt.Errorf("%w: table number must be positive", entity.ErrInvalidOrder)
	}
	for _, item := range req.Items {
		if item.MenuItemID == "" || item.Name == "" {
			return fmt.Errorf("%w: item is missing its menu item reference", entity.ErrInvalidOrder)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %s has a negative price", entity.ErrInvalidOrder, item.Name)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %s has a non-positive quantity", entity.ErrInvalidOrder, item.Name)
		}
	}
	return nil
}

// GetOrder retrieves an order by ID, used for the confirmation screen.
func (s *OrderService) GetOrder(ctx context.Context, id int) (*entity.Order, error) {
	order, err := s.orderStore.GetOrderByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting order by ID %d", id)
		return nil, err
	}
	return order, nil
}

// ListActive returns the restaurant's pending orders, newest first.
func (s *OrderService) ListActive(ctx context.Context, restaurantID string) ([]entity.Order, error) {
	orders, err := s.orderStore.ListActiveOrders(ctx, restaurantID)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing active orders")
		return nil, err
	}
	return orders, nil
}

// UpdateStatus applies a status transition. The only legal move is
// pending -> completed; anything else is rejected before touching the store.
func (s *OrderService) UpdateStatus(ctx context.Context, restaurantID string, id int, status entity.Status) (*entity.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entity.ErrInvalidOrder, status)
	}
	if status != entity.StatusCompleted {
		return nil, entity.ErrInvalidTransition
	}

	order, err := s.orderStore.CompleteOrder(ctx, restaurantID, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error completing order %d", id)
		return nil, err
	}

	err = s.publishOrderEvent(ctx, order, "completed")
	if err != nil {
		return nil, err
	}

	return order, nil
}

// Delete removes the order entirely. Cancellation is deletion, not a status.
func (s *OrderService) Delete(ctx context.Context, restaurantID string, id int) error {
	err := s.orderStore.DeleteOrder(ctx, restaurantID, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting order %d", id)
		return err
	}

	return s.publishOrderEvent(ctx, &entity.Order{ID: id, RestaurantID: restaurantID}, "deleted")
}

// Revenue returns the restaurant's accrued revenue for the month containing ref.
func (s *OrderService) Revenue(ctx context.Context, restaurantID string, ref time.Time) (float64, error) {
	total, err := s.orderStore.GetRevenue(ctx, restaurantID, ref.UTC().Format("2006-01"))
	if err != nil {
		logger.Error().Err(err).Msg("Error getting revenue")
		return 0, err
	}
	return total, nil
}

func (s *OrderService) publishOrderEvent(ctx context.Context, order *entity.Order, key string) error {
	// if env is set to test, return
	if os.Getenv("ENV") == "test" {
		return nil
	}

	orderJSON, err := json.Marshal(order)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%d", key, order.ID)),
		Value: orderJSON,
	}

	err = s.kafkaWriter.WriteMessages(ctx, msg)
	if err != nil {
		return err
	}

	return nil
}
