package cache

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func constCompute(value string, counter *atomic.Int32) func(ctx context.Context) ([]byte, error) {
	return func(ctx context.Context) ([]byte, error) {
		counter.Add(1)
		return []byte(value), nil
	}
}

func TestMemoryGetOrCompute(t *testing.T) {
	c := NewMemory(10, time.Hour)
	ctx := context.Background()

	var computes atomic.Int32
	first, err := c.GetOrCompute(ctx, "k", constCompute("v", &computes))
	if err != nil {
		t.Fatalf("GetOrCompute() error = %v", err)
	}
	second, err := c.GetOrCompute(ctx, "k", constCompute("other", &computes))
	if err != nil {
		t.Fatalf("GetOrCompute() error = %v", err)
	}

	if n := computes.Load(); n != 1 {
		t.Errorf("compute ran %d times for one key, want 1", n)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("values differ: %q vs %q", first, second)
	}
}

func TestMemoryDistinctKeys(t *testing.T) {
	c := NewMemory(10, time.Hour)
	ctx := context.Background()

	var computes atomic.Int32
	_, _ = c.GetOrCompute(ctx, "a", constCompute("1", &computes))
	_, _ = c.GetOrCompute(ctx, "b", constCompute("2", &computes))

	if n := computes.Load(); n != 2 {
		t.Errorf("compute ran %d times for two keys, want 2", n)
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	c := NewMemory(10, time.Hour)
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }

	var computes atomic.Int32
	_, _ = c.GetOrCompute(ctx, "k", constCompute("v", &computes))

	now = now.Add(59 * time.Minute)
	_, _ = c.GetOrCompute(ctx, "k", constCompute("v", &computes))
	if n := computes.Load(); n != 1 {
		t.Fatalf("compute ran %d times before expiry, want 1", n)
	}

	now = now.Add(2 * time.Minute)
	_, _ = c.GetOrCompute(ctx, "k", constCompute("v", &computes))
	if n := computes.Load(); n != 2 {
		t.Errorf("compute ran %d times after expiry, want 2", n)
	}
}

func TestMemoryCapacityEviction(t *testing.T) {
	c := NewMemory(2, time.Hour)
	ctx := context.Background()

	var computes atomic.Int32
	_, _ = c.GetOrCompute(ctx, "a", constCompute("1", &computes))
	_, _ = c.GetOrCompute(ctx, "b", constCompute("2", &computes))
	_, _ = c.GetOrCompute(ctx, "c", constCompute("3", &computes))

	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want capacity bound 2", got)
	}

	// "a" was inserted first and must be the one evicted.
	_, _ = c.GetOrCompute(ctx, "b", constCompute("2", &computes))
	_, _ = c.GetOrCompute(ctx, "c", constCompute("3", &computes))
	if n := computes.Load(); n != 3 {
		t.Fatalf("compute ran %d times, want b and c still cached", n)
	}
	_, _ = c.GetOrCompute(ctx, "a", constCompute("1", &computes))
	if n := computes.Load(); n != 4 {
		t.Errorf("compute ran %d times, want a recomputed after eviction", n)
	}
}

func TestMemoryErrorsNotCached(t *testing.T) {
	c := NewMemory(10, time.Hour)
	ctx := context.Background()

	wantErr := errors.New("boom")
	if _, err := c.GetOrCompute(ctx, "k", func(ctx context.Context) ([]byte, error) {
		return nil, wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("GetOrCompute() error = %v, want %v", err, wantErr)
	}

	var computes atomic.Int32
	got, err := c.GetOrCompute(ctx, "k", constCompute("v", &computes))
	if err != nil {
		t.Fatalf("GetOrCompute() after failure error = %v", err)
	}
	if string(got) != "v" || computes.Load() != 1 {
		t.Errorf("failed compute was cached: got %q, computes %d", got, computes.Load())
	}
}

func TestMemoryConcurrentSingleCompute(t *testing.T) {
	c := NewMemory(10, time.Hour)
	ctx := context.Background()

	var computes atomic.Int32
	compute := func(ctx context.Context) ([]byte, error) {
		computes.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []byte("v"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.GetOrCompute(ctx, "k", compute)
			if err != nil || string(got) != "v" {
				t.Errorf("GetOrCompute() = %q, %v", got, err)
			}
		}()
	}
	wg.Wait()

	if n := computes.Load(); n != 1 {
		t.Errorf("compute ran %d times under concurrency, want 1", n)
	}
}
