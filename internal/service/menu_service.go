package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/Akshat190/qr-main/internal/entity"
)

const menuCacheTTL = 1 * time.Minute

// MenuStore is the slice of the menu repository the service needs.
type MenuStore interface {
	CreateMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error)
	GetMenuItemByID(ctx context.Context, id string) (*entity.MenuItem, error)
	ListMenuItems(ctx context.Context, restaurantID string) ([]entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, restaurantID, id string) error
}

type MenuService struct {
	menuStore MenuStore
	rdb       *redis.Client
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(menuStore MenuStore, rdb *redis.Client) *MenuService {
	return &MenuService{
		menuStore: menuStore,
		rdb:       rdb,
	}
}

// List returns the restaurant's menu, served from cache when possible.
func (s *MenuService) List(ctx context.Context, restaurantID string) ([]entity.MenuItem, error) {
	key := fmt.Sprintf("menu:restaurant:%s", restaurantID)

	cached, err := s.rdb.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Error().Err(err).Msgf("Error getting menu for restaurant %s from cache", restaurantID)
	}
	if cached != "" {
		var items []entity.MenuItem
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
		logger.Warn().Msgf("Dropping unreadable menu cache for restaurant %s", restaurantID)
	}

	items, err := s.menuStore.ListMenuItems(ctx, restaurantID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing menu items for restaurant %s", restaurantID)
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if err := s.rdb.Set(ctx, key, data, menuCacheTTL).Err(); err != nil {
			logger.Error().Err(err).Msgf("Error setting menu cache for restaurant %s", restaurantID)
		}
	}

	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*entity.MenuItem, error) {
	item, err := s.menuStore.GetMenuItemByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrMenuItemNotFound) {
			logger.Error().Err(err).Msgf("Error getting menu item %s", id)
		}
		return nil, err
	}
	return item, nil
}

// Create adds a menu item to the owner's restaurant and invalidates the
// cached menu.
func (s *MenuService) Create(ctx context.Context, restaurantID string, item *entity.MenuItem) (*entity.MenuItem, error) {
	if item.Name == "" {
		return nil, fmt.Errorf("%w: menu item name is required", entity.ErrInvalidMenuItem)
	}
	if item.Price < 0 {
		return nil, fmt.Errorf("%w: menu item price must be non-negative", entity.ErrInvalidMenuItem)
	}
	if item.EstimatedTime < 0 {
		return nil, fmt.Errorf("%w: estimated time must be non-negative", entity.ErrInvalidMenuItem)
	}

	item.ID = uuid.NewString()
	item.RestaurantID = restaurantID

	created, err := s.menuStore.CreateMenuItem(ctx, item)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating menu item")
		return nil, err
	}

	s.invalidate(ctx, restaurantID)
	return created, nil
}

func (s *MenuService) Delete(ctx context.Context, restaurantID, id string) error {
	err := s.menuStore.DeleteMenuItem(ctx, restaurantID, id)
	if err != nil {
		if !errors.Is(err, entity.ErrMenuItemNotFound) {
			logger.Error().Err(err).Msgf("Error deleting menu item %s", id)
		}
		return err
	}

	s.invalidate(ctx, restaurantID)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context, restaurantID string) {
	key := fmt.Sprintf("menu:restaurant:%s", restaurantID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error invalidating menu cache for restaurant %s", restaurantID)
	}
}
