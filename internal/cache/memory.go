package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// Memory is the in-process ResponseCache backend. Entries expire after a
// fixed TTL; when the entry count exceeds the capacity, the least recently
// inserted entry is evicted. Lookups do not refresh insertion order.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = oldest insertion
	max     int
	ttl     time.Duration
	group   singleflight.Group
	now     func() time.Time
}

func NewMemory(maxEntries int, ttl time.Duration) *Memory {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Memory{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		max:     maxEntries,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *Memory) GetOrCompute(ctx context.Context, key string, compute func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if v, ok := c.get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have stored the value while we waited
		// for the flight slot.
		if v, ok := c.get(key); ok {
			return v, nil
		}

		data, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		c.set(key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Len reports the current entry count.
func (c *Memory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Memory) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	e := el.Value.(*memoryEntry)
	if !c.now().Before(e.expiresAt) {
		c.order.Remove(el)
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *Memory) set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}

	c.entries[key] = c.order.PushBack(&memoryEntry{
		key:       key,
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	})

	for len(c.entries) > c.max {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*memoryEntry).key)
	}
}
