package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/stayview/revgrid/backend-go/internal/domain"
	"golang.org/x/sync/semaphore"
)

const defaultPrecomputeWorkers = 8

// GridService warms the status cache for a batch of visible cells ahead of
// a grid render. Concurrency is bounded with a weighted semaphore; a racing
// duplicate computation is harmless since the classifier is pure.
type GridService struct {
	status  *StatusService
	workers int64
}

func NewGridService(status *StatusService, workers int) *GridService {
	if workers <= 0 {
		workers = defaultPrecomputeWorkers
	}
	return &GridService{status: status, workers: int64(workers)}
}

// PrecomputeRange computes (and memoizes) the status for every cell in the
// batch. Returns the number of cells processed before the context ended.
func (g *GridService) PrecomputeRange(ctx context.Context, cells []domain.Cell) (int, error) {
	sem := semaphore.NewWeighted(g.workers)

	processed := 0
	for _, cell := range cells {
		if err := sem.Acquire(ctx, 1); err != nil {
			return processed, err
		}
		processed++

		go func(c domain.Cell) {
			defer sem.Release(1)
			g.status.GetStatus(ctx, c.RoomType, c.Date, c.Inventory, c.Capacity)
		}(cell)
	}

	// Drain: wait for in-flight computations to finish.
	if err := sem.Acquire(ctx, g.workers); err != nil {
		return processed, err
	}
	sem.Release(g.workers)

	log.Debug().Int("cells", processed).Msg("grid precompute finished")
	return processed, nil
}
