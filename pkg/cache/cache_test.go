package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(capacity int, ttl time.Duration) (*LRUCache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewLRUCache(capacity, ttl, WithClock(clock.now)), clock
}

func TestLRUCache_GetSet(t *testing.T) {
	testCases := []struct {
		name    string
		run     func(c *LRUCache, clock *fakeClock)
		key     string
		want    string
		wantHit bool
	}{
		{
			name: "hit within ttl",
			run: func(c *LRUCache, clock *fakeClock) {
				c.Set("p-1", []byte("bike"))
				clock.advance(time.Minute - time.Second)
			},
			key:     "p-1",
			want:    "bike",
			wantHit: true,
		},
		{
			name: "expired entry",
			run: func(c *LRUCache, clock *fakeClock) {
				c.Set("p-1", []byte("bike"))
				clock.advance(time.Minute + time.Second)
			},
			key: "p-1",
		},
		{
			name: "overwrite extends ttl",
			run: func(c *LRUCache, clock *fakeClock) {
				c.Set("p-1", []byte("bike"))
				clock.advance(40 * time.Second)
				c.Set("p-1", []byte("scooter"))
				clock.advance(40 * time.Second)
			},
			key:     "p-1",
			want:    "scooter",
			wantHit: true,
		},
		{
			name: "least recently used is evicted",
			run: func(c *LRUCache, _ *fakeClock) {
				c.Set("p-1", []byte("bike"))
				c.Set("p-2", []byte("sofa"))
				c.Get("p-1")
				c.Set("p-3", []byte("phone"))
			},
			key: "p-2",
		},
		{
			name: "recently read survives eviction",
			run: func(c *LRUCache, _ *fakeClock) {
				c.Set("p-1", []byte("bike"))
				c.Set("p-2", []byte("sofa"))
				c.Get("p-1")
				c.Set("p-3", []byte("phone"))
			},
			key:     "p-1",
			want:    "bike",
			wantHit: true,
		},
		{
			name: "deleted entry",
			run: func(c *LRUCache, _ *fakeClock) {
				c.Set("p-1", []byte("bike"))
				c.Delete("p-1")
				c.Delete("missing")
			},
			key: "p-1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, clock := newTestCache(2, time.Minute)
			tc.run(c, clock)

			got, ok := c.Get(tc.key)

			assert.Equal(t, tc.wantHit, ok)
			if tc.wantHit {
				assert.Equal(t, tc.want, string(got))
			}
		})
	}
}

func TestLRUCache_Stats(t *testing.T) {
	c, clock := newTestCache(2, time.Minute)

	c.Set("p-1", []byte("bike"))
	c.Set("p-2", []byte("sofa"))
	c.Set("p-3", []byte("phone"))
	c.Get("p-3")
	c.Get("p-1")
	clock.advance(2 * time.Minute)
	c.Get("p-2")

	assert.Equal(t, Stats{Hits: 1, Misses: 2, Evictions: 1, Len: 1}, c.Stats())
}

func TestLRUCache_PurgeExpired(t *testing.T) {
	c, clock := newTestCache(10, time.Minute)

	c.Set("p-1", []byte("bike"))
	clock.advance(30 * time.Second)
	c.Set("p-2", []byte("sofa"))
	clock.advance(45 * time.Second)

	assert.Equal(t, 1, c.purgeExpired())
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("p-2")
	assert.True(t, ok)
}

func TestLRUCache_Janitor(t *testing.T) {
	c := NewLRUCache(2, 10*time.Millisecond, WithJanitorInterval(5*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, c.Start(ctx))
	c.Set("p-1", []byte("bike"))

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestNewLRUCache_MinimalCapacity(t *testing.T) {
	c, _ := newTestCache(0, time.Minute)

	c.Set("p-1", []byte("bike"))
	c.Set("p-2", []byte("sofa"))

	assert.Equal(t, 1, c.Len())
}
