package service

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/stayview/revgrid/backend-go/internal/cache"
	"github.com/stayview/revgrid/backend-go/internal/domain"
	"github.com/stayview/revgrid/backend-go/internal/engine"
)

// StatusService is the get-or-compute layer over the classifier. The
// classifier is pure, so a cache hit is always byte-identical to a fresh
// computation; cache failures degrade to computing, never to an error.
type StatusService struct {
	classifier *engine.Classifier
	cache      cache.StatusCache
	computes   atomic.Int64
}

func NewStatusService(classifier *engine.Classifier, cacheImpl cache.StatusCache) *StatusService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopStatusCache()
	}
	return &StatusService{classifier: classifier, cache: cacheImpl}
}

// GetStatus returns the memoized status for a cell, computing and storing it
// on a miss. Capacity <= 0 means unknown.
func (s *StatusService) GetStatus(ctx context.Context, roomType, dateStr string, inventory, capacity int) domain.SmartInventoryStatus {
	key := cache.StatusKey(roomType, dateStr, inventory)

	if status, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return status
	} else if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("status cache get failed")
	}

	status := s.classifier.Classify(inventory, roomType, dateStr, capacity)
	s.computes.Add(1)

	if err := s.cache.Set(ctx, key, status); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("status cache set failed")
	}

	return status
}

// UpdateInventory is the write path for an inventory change: it evicts the
// memoized entry for the old value (the cache cannot see the write itself)
// and returns a fresh classification for the new one.
func (s *StatusService) UpdateInventory(ctx context.Context, roomType, dateStr string, oldInventory, newInventory, capacity int) domain.SmartInventoryStatus {
	staleKey := cache.StatusKey(roomType, dateStr, oldInventory)
	if err := s.cache.Delete(ctx, staleKey); err != nil {
		log.Warn().Err(err).Str("key", staleKey).Msg("status cache evict failed")
	}

	return s.GetStatus(ctx, roomType, dateStr, newInventory, capacity)
}

// FlushCache drops every memoized status.
func (s *StatusService) FlushCache(ctx context.Context) error {
	return s.cache.Flush(ctx)
}

// Computations reports how many times the classifier actually ran. Exposed
// for observability and cache-correctness tests.
func (s *StatusService) Computations() int64 {
	return s.computes.Load()
}
