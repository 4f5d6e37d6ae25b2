package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const defaultJanitorInterval = 2 * time.Minute

// Stats счетчики обращений к кэшу с момента создания.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
}

type Option func(*LRUCache)

// WithJanitorInterval задает период фоновой очистки просроченных записей.
func WithJanitorInterval(d time.Duration) Option {
	return func(c *LRUCache) {
		if d > 0 {
			c.janitorInterval = d
		}
	}
}

// WithClock подменяет источник времени, используется в тестах.
func WithClock(now func() time.Time) Option {
	return func(c *LRUCache) {
		c.now = now
	}
}

type item struct {
	key       string
	data      []byte
	expiresAt time.Time
}

// LRUCache хранит сериализованные объекты с ограничением по количеству и TTL.
// Самая старая по использованию запись вытесняется первой.
type LRUCache struct {
	mu              sync.Mutex
	capacity        int
	ttl             time.Duration
	janitorInterval time.Duration
	now             func() time.Time

	order *list.List
	items map[string]*list.Element
	stats Stats
}

func NewLRUCache(capacity int, ttl time.Duration, opts ...Option) *LRUCache {
	c := &LRUCache{
		capacity:        max(capacity, 1),
		ttl:             ttl,
		janitorInterval: defaultJanitorInterval,
		now:             time.Now,
		order:           list.New(),
		items:           make(map[string]*list.Element, capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	it := el.Value.(*item)
	if c.expired(it) {
		c.unlink(el)
		c.stats.Misses++
		return nil, false
	}

	c.order.MoveToFront(el)
	c.stats.Hits++
	return it.data, true
}

// Set добавляет или заменяет запись, продлевая ее TTL.
func (c *LRUCache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		it := el.Value.(*item)
		it.data, it.expiresAt = data, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&item{key: key, data: data, expiresAt: expiresAt})
	for c.order.Len() > c.capacity {
		c.unlink(c.order.Back())
		c.stats.Evictions++
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.unlink(el)
	}
}

func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Len = c.order.Len()
	return s
}

// Start запускает фоновую очистку до отмены ctx.
func (c *LRUCache) Start(ctx context.Context) error {
	go c.runJanitor(ctx)
	return nil
}

func (c *LRUCache) runJanitor(ctx context.Context) {
	ticker := time.NewTicker(c.janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.purgeExpired()
		}
	}
}

// purgeExpired возвращает количество удаленных записей.
func (c *LRUCache) purgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el.Value.(*item)) {
			c.unlink(el)
			removed++
		}
		el = prev
	}
	return removed
}

func (c *LRUCache) expired(it *item) bool {
	return c.now().After(it.expiresAt)
}

func (c *LRUCache) unlink(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*item).key)
}
