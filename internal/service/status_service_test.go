package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/stayview/revgrid/backend-go/internal/cache"
	"github.com/stayview/revgrid/backend-go/internal/clock"
	"github.com/stayview/revgrid/backend-go/internal/engine"
)

func newTestStatusService() *StatusService {
	clk := clock.NewFixed(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	classifier := engine.NewClassifier(clk, 100)
	return NewStatusService(classifier, cache.NewMemoryStatusCache(100))
}

func TestStatusService_GetStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("second call hits the cache", func(t *testing.T) {
		svc := newTestStatusService()

		first := svc.GetStatus(ctx, "Suite", "2026-09-12", 3, 18)
		if svc.Computations() != 1 {
			t.Fatalf("computations = %d after first call, want 1", svc.Computations())
		}

		second := svc.GetStatus(ctx, "Suite", "2026-09-12", 3, 18)
		if svc.Computations() != 1 {
			t.Fatalf("computations = %d after cache hit, want 1", svc.Computations())
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("cached result differs from computed:\n%+v\n%+v", first, second)
		}
	})

	t.Run("different inventory is a different key", func(t *testing.T) {
		svc := newTestStatusService()

		svc.GetStatus(ctx, "Suite", "2026-09-12", 3, 18)
		svc.GetStatus(ctx, "Suite", "2026-09-12", 4, 18)
		if svc.Computations() != 2 {
			t.Fatalf("computations = %d, want 2", svc.Computations())
		}
	})

	t.Run("noop cache computes every time", func(t *testing.T) {
		clk := clock.NewFixed(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
		svc := NewStatusService(engine.NewClassifier(clk, 100), cache.NewNoopStatusCache())

		svc.GetStatus(ctx, "Suite", "2026-09-12", 3, 18)
		svc.GetStatus(ctx, "Suite", "2026-09-12", 3, 18)
		if svc.Computations() != 2 {
			t.Fatalf("computations = %d with noop cache, want 2", svc.Computations())
		}
	})
}

func TestStatusService_UpdateInventory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestStatusService()

	// Warm the cache for the old inventory value.
	svc.GetStatus(ctx, "Deluxe", "2026-09-12", 10, 45)
	if svc.Computations() != 1 {
		t.Fatalf("computations = %d, want 1", svc.Computations())
	}

	// The write path evicts the stale key and computes the new value.
	fresh := svc.UpdateInventory(ctx, "Deluxe", "2026-09-12", 10, 8, 45)
	if svc.Computations() != 2 {
		t.Fatalf("computations = %d after inventory write, want 2", svc.Computations())
	}

	// New value is memoized.
	again := svc.GetStatus(ctx, "Deluxe", "2026-09-12", 8, 45)
	if svc.Computations() != 2 {
		t.Fatalf("computations = %d after re-read, want 2", svc.Computations())
	}
	if !reflect.DeepEqual(fresh, again) {
		t.Fatalf("memoized value differs from write-path result")
	}

	// The old key was evicted: re-reading the old inventory recomputes.
	svc.GetStatus(ctx, "Deluxe", "2026-09-12", 10, 45)
	if svc.Computations() != 3 {
		t.Fatalf("computations = %d after stale re-read, want 3 (old key must be evicted)", svc.Computations())
	}
}
