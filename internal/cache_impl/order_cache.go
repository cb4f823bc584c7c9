package cache_impl

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type CacheI[K uuid.UUID, V *models.Order] interface {
	Get(key K) (value V, ok bool)
	Add(key K, value V) (evicted bool)
	Remove(key K) (present bool)
	Peek(key K) (value V, ok bool)
	Keys() []K
}

// Cache holds the last order snapshots the backend returned. Values are cloned on the
// way in and out, so a caller mutating an order never changes the cached snapshot.
type Cache struct {
	cache CacheI[uuid.UUID, *models.Order]
	log   logger.Logger
}

func NewCache(
	cache CacheI[uuid.UUID, *models.Order],
	log logger.Logger,
) *Cache {
	return &Cache{
		cache: cache,
		log:   log,
	}
}

// NewExpirableCache is the production cache: a size bounded LRU whose entries expire
// after ttl.
func NewExpirableCache(log logger.Logger, size int, ttl time.Duration) *Cache {
	onEvict := func(key uuid.UUID, _ *models.Order) {
		log.Debug("cache_impl.evicted", logger.String("order_uuid", key.String()))
	}

	return NewCache(expirable.NewLRU[uuid.UUID, *models.Order](size, onEvict, ttl), log)
}

func (c *Cache) Add(key uuid.UUID, value *models.Order) (evicted bool) {
	return c.cache.Add(key, value.Clone())
}

func (c *Cache) Get(key uuid.UUID) (value *models.Order, ok bool) {
	value, ok = c.cache.Get(key)
	if !ok || value == nil {
		return nil, false
	}

	return value.Clone(), true
}

func (c *Cache) Remove(key uuid.UUID) bool {
	return c.cache.Remove(key)
}

// Replace makes orders the cached view of the shop: snapshots of the shop that the
// listing no longer carries are dropped, the rest are overwritten.
func (c *Cache) Replace(shopID string, orders []models.Order) {
	listed := make(map[uuid.UUID]struct{}, len(orders))
	for i := range orders {
		listed[orders[i].OrderUUID] = struct{}{}
	}

	for _, key := range c.cache.Keys() {
		if _, ok := listed[key]; ok {
			continue
		}

		if cached, ok := c.cache.Peek(key); ok && cached != nil && cached.ShopID == shopID {
			c.cache.Remove(key)
		}
	}

	for i := range orders {
		c.Add(orders[i].OrderUUID, &orders[i])
	}
}
