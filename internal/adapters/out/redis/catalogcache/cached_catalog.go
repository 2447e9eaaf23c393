// Package catalogcache keeps catalog reads in Redis in front of another
// ports.CatalogReader. Redis is an optimisation only: any cache failure is logged and
// the call is served by the wrapped reader.
package catalogcache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "catalog:"

// DefaultTTL applies when New is given a non-positive ttl.
const DefaultTTL = 5 * time.Minute

var _ ports.CatalogReader = (*CachedCatalog)(nil)

type CachedCatalog struct {
	next   ports.CatalogReader
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func New(next ports.CatalogReader, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedCatalog {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedCatalog{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "catalog_cache"),
	}
}

func tablesKey(restaurantID kernel.UUID) string {
	return keyPrefix + "tables:" + restaurantID.String()
}

func dishKey(id kernel.UUID) string {
	return keyPrefix + "dish:" + id.String()
}

func restaurantKey(id kernel.UUID) string {
	return keyPrefix + "restaurant:" + id.String()
}

func (c *CachedCatalog) Tables(ctx context.Context, restaurantID kernel.UUID) ([]string, error) {
	key := tablesKey(restaurantID)

	var tables []string
	if c.load(ctx, key, &tables) {
		return tables, nil
	}

	tables, err := c.next.Tables(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, tables)
	return tables, nil
}

// Dishes serves cached dishes with one MGET and loads the rest from the wrapped
// reader in a single call. Unknown dishes are not cached.
func (c *CachedCatalog) Dishes(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*menu.Dish, error) {
	dishes := make(map[kernel.UUID]*menu.Dish, len(ids))
	if len(ids) == 0 {
		return dishes, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = dishKey(id)
	}

	missing := ids
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache read failed", "keys", len(keys), "error", err)
	} else {
		missing = make([]kernel.UUID, 0, len(ids))
		for i, v := range values {
			dish, ok := c.decodeDish(ctx, keys[i], v)
			if !ok {
				missing = append(missing, ids[i])
				continue
			}
			dishes[ids[i]] = dish
		}
	}

	if len(missing) == 0 {
		return dishes, nil
	}

	loaded, err := c.next.Dishes(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(loaded) == 0 {
		return dishes, nil
	}

	pipe := c.client.Pipeline()
	for id, dish := range loaded {
		dishes[id] = dish
		payload, marshalErr := json.Marshal(newDishEntry(dish))
		if marshalErr != nil {
			c.logger.WarnContext(ctx, "catalog cache encode failed", "dish_id", id.String(), "error", marshalErr)
			continue
		}
		pipe.Set(ctx, dishKey(id), payload, c.ttl)
	}
	if _, err = pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "catalog cache write failed", "dishes", len(loaded), "error", err)
	}

	return dishes, nil
}

func (c *CachedCatalog) decodeDish(ctx context.Context, key string, value any) (*menu.Dish, bool) {
	raw, ok := value.(string)
	if !ok {
		return nil, false
	}
	var entry dishEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		c.logger.WarnContext(ctx, "catalog cache entry is corrupt", "key", key, "error", err)
		return nil, false
	}
	dish, err := entry.dish()
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache entry is corrupt", "key", key, "error", err)
		return nil, false
	}
	return dish, true
}

func (c *CachedCatalog) Restaurant(ctx context.Context, id kernel.UUID) (ports.RestaurantSummary, error) {
	key := restaurantKey(id)

	var entry restaurantEntry
	if c.load(ctx, key, &entry) {
		return entry.summary(), nil
	}

	summary, err := c.next.Restaurant(ctx, id)
	if err != nil {
		return ports.RestaurantSummary{}, err
	}
	c.store(ctx, key, newRestaurantEntry(summary))
	return summary, nil
}

// Forget drops the cached entries of a restaurant and the given dishes so the next
// read goes to the wrapped reader.
func (c *CachedCatalog) Forget(ctx context.Context, restaurantID kernel.UUID, dishIDs ...kernel.UUID) error {
	keys := []string{tablesKey(restaurantID), restaurantKey(restaurantID)}
	for _, id := range dishIDs {
		keys = append(keys, dishKey(id))
	}
	return c.client.Del(ctx, keys...).Err()
}

// load reports whether key held a decodable value, which is written into dst.
func (c *CachedCatalog) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
		return false
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		c.logger.WarnContext(ctx, "catalog cache entry is corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *CachedCatalog) store(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache encode failed", "key", key, "error", err)
		return
	}
	if err = c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
	}
}
