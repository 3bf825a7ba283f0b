package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionTTL = 24 * time.Hour

// Store persists session carts in Redis. Carts are disposable: an expired
// or missing key simply yields an empty cart.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (s *Store) Load(ctx context.Context, sessionID string) (*Cart, error) {
	val, err := s.rdb.Get(ctx, key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Cart{}, nil
		}
		return nil, err
	}

	c := &Cart{}
	if err := json.Unmarshal([]byte(val), c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) Save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(sessionID), data, sessionTTL).Err()
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, key(sessionID)).Err()
}
