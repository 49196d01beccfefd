package cache

import (
	"context"
	"testing"

	"github.com/stayview/revgrid/backend-go/internal/domain"
)

func TestStatusKey(t *testing.T) {
	t.Parallel()

	if got := StatusKey("Suite", "2026-02-15", 3); got != "Suite-2026-02-15-3" {
		t.Fatalf("StatusKey = %q, want Suite-2026-02-15-3", got)
	}
}

func TestMemoryStatusCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	status := func(level domain.InventoryLevel) domain.SmartInventoryStatus {
		return domain.SmartInventoryStatus{Level: level, Confidence: 90}
	}

	t.Run("set then get", func(t *testing.T) {
		c := NewMemoryStatusCache(10)
		if err := c.Set(ctx, "k1", status(domain.LevelCritical)); err != nil {
			t.Fatalf("set: %v", err)
		}

		got, ok, err := c.Get(ctx, "k1")
		if err != nil || !ok {
			t.Fatalf("get: ok=%v err=%v", ok, err)
		}
		if got.Level != domain.LevelCritical {
			t.Errorf("level = %s, want critical", got.Level)
		}
	})

	t.Run("miss on absent key", func(t *testing.T) {
		c := NewMemoryStatusCache(10)
		if _, ok, _ := c.Get(ctx, "nope"); ok {
			t.Fatalf("expected miss")
		}
	})

	t.Run("delete evicts", func(t *testing.T) {
		c := NewMemoryStatusCache(10)
		c.Set(ctx, "k1", status(domain.LevelLow))
		if err := c.Delete(ctx, "k1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, ok, _ := c.Get(ctx, "k1"); ok {
			t.Fatalf("key should be gone after delete")
		}
		// Deleting again is a no-op, not an error.
		if err := c.Delete(ctx, "k1"); err != nil {
			t.Fatalf("second delete: %v", err)
		}
	})

	t.Run("bounded with FIFO eviction", func(t *testing.T) {
		c := NewMemoryStatusCache(2)
		c.Set(ctx, "k1", status(domain.LevelLow))
		c.Set(ctx, "k2", status(domain.LevelOptimal))
		c.Set(ctx, "k3", status(domain.LevelCritical))

		if c.Len() != 2 {
			t.Fatalf("len = %d, want 2", c.Len())
		}
		if _, ok, _ := c.Get(ctx, "k1"); ok {
			t.Errorf("oldest key should have been evicted")
		}
		if _, ok, _ := c.Get(ctx, "k3"); !ok {
			t.Errorf("newest key should be present")
		}
	})

	t.Run("overwriting a key does not grow the cache", func(t *testing.T) {
		c := NewMemoryStatusCache(2)
		c.Set(ctx, "k1", status(domain.LevelLow))
		c.Set(ctx, "k1", status(domain.LevelCritical))

		if c.Len() != 1 {
			t.Fatalf("len = %d, want 1", c.Len())
		}
		got, _, _ := c.Get(ctx, "k1")
		if got.Level != domain.LevelCritical {
			t.Errorf("overwrite did not stick, level = %s", got.Level)
		}
	})

	t.Run("flush clears everything", func(t *testing.T) {
		c := NewMemoryStatusCache(10)
		c.Set(ctx, "k1", status(domain.LevelLow))
		c.Set(ctx, "k2", status(domain.LevelOptimal))
		if err := c.Flush(ctx); err != nil {
			t.Fatalf("flush: %v", err)
		}
		if c.Len() != 0 {
			t.Fatalf("len = %d after flush, want 0", c.Len())
		}
	})
}
