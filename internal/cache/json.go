package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dev-quizz/internal/domain"
)

// GetJSON reads key from c and decodes it into dest.
// domain.ErrCacheMiss is returned unchanged so callers can tell a miss from a failure.
func GetJSON(ctx context.Context, c domain.Cache, key string, dest interface{}) error {
	raw, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, c domain.Cache, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	return c.Set(ctx, key, string(data), ttl)
}
