package cache

import (
	"context"
	"fmt"

	"github.com/stayview/revgrid/backend-go/internal/domain"
)

// StatusCache memoizes classifier output per composite cell key. The key
// embeds the inventory value, so an inventory change is a natural miss; the
// stale key for the old value must be evicted by the write path (see
// service.StatusService.UpdateInventory), otherwise it lingers forever.
type StatusCache interface {
	Get(ctx context.Context, key string) (domain.SmartInventoryStatus, bool, error)
	Set(ctx context.Context, key string, status domain.SmartInventoryStatus) error
	Delete(ctx context.Context, key string) error
	Flush(ctx context.Context) error
}

// StatusKey builds the composite memoization key for a cell.
func StatusKey(roomType, dateStr string, inventory int) string {
	return fmt.Sprintf("%s-%s-%d", roomType, dateStr, inventory)
}

type noopStatusCache struct{}

// NewNoopStatusCache returns a cache that stores nothing. Every Get is a
// miss, which forces a fresh (pure, identical) computation.
func NewNoopStatusCache() StatusCache {
	return &noopStatusCache{}
}

func (n *noopStatusCache) Get(ctx context.Context, key string) (domain.SmartInventoryStatus, bool, error) {
	return domain.SmartInventoryStatus{}, false, nil
}

func (n *noopStatusCache) Set(ctx context.Context, key string, status domain.SmartInventoryStatus) error {
	return nil
}

func (n *noopStatusCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (n *noopStatusCache) Flush(ctx context.Context) error {
	return nil
}
