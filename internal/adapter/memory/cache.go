package memory

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/ports"
)

const defaultCleanupInterval = time.Minute

// Cache is an in-process CachePort used when no Redis address is
// configured. Expired entries are swept in the background.
type Cache struct {
	items *gocache.Cache
}

func NewCache() *Cache {
	return newCache(defaultCleanupInterval)
}

func newCache(cleanupInterval time.Duration) *Cache {
	return &Cache{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (c *Cache) Get(key string) ([]byte, error) {
	value, ok := c.items.Get(key)
	if !ok {
		return nil, ports.ErrCacheMiss
	}

	stored := value.([]byte)
	out := make([]byte, len(stored))
	copy(out, stored)
	return out, nil
}

// Set stores a copy of value. A ttl of zero keeps the entry forever.
func (c *Cache) Set(key string, value []byte, ttl time.Duration) error {
	expiration := gocache.NoExpiration
	if ttl > 0 {
		expiration = ttl
	}
	c.items.Set(key, append([]byte(nil), value...), expiration)
	return nil
}

func (c *Cache) Delete(key string) error {
	c.items.Delete(key)
	return nil
}

// Len counts stored entries, including expired ones not yet swept.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}
