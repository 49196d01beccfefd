package restriction

import (
	"sync"
	"time"

	"github.com/stayview/revgrid/backend-go/internal/domain"
)

// Catalog holds the current bulk-restriction set under a copy-on-write
// discipline: readers take an immutable snapshot, writers build a fresh
// slice and swap it in. Resolution never blocks on a concurrent write.
type Catalog struct {
	mu           sync.RWMutex
	restrictions []domain.BulkRestriction
}

// NewCatalog creates a catalog seeded with the given restrictions.
func NewCatalog(restrictions []domain.BulkRestriction) *Catalog {
	c := &Catalog{}
	c.Replace(restrictions)
	return c
}

// Snapshot returns the current restriction slice. The slice is never mutated
// after publication; callers may read it without holding any lock.
func (c *Catalog) Snapshot() []domain.BulkRestriction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.restrictions
}

// Replace swaps in a full new restriction set.
func (c *Catalog) Replace(restrictions []domain.BulkRestriction) {
	fresh := make([]domain.BulkRestriction, len(restrictions))
	copy(fresh, restrictions)

	c.mu.Lock()
	c.restrictions = fresh
	c.mu.Unlock()
}

// Add appends one restriction, preserving catalog order for existing
// entries.
func (c *Catalog) Add(r domain.BulkRestriction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fresh := make([]domain.BulkRestriction, len(c.restrictions), len(c.restrictions)+1)
	copy(fresh, c.restrictions)
	c.restrictions = append(fresh, r)
}

// Remove deletes a restriction by ID. Reports whether anything was removed.
func (c *Catalog) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	fresh := make([]domain.BulkRestriction, 0, len(c.restrictions))
	removed := false
	for _, r := range c.restrictions {
		if r.ID == id {
			removed = true
			continue
		}
		fresh = append(fresh, r)
	}
	if removed {
		c.restrictions = fresh
	}
	return removed
}

// RefreshStatuses sweeps restriction lifecycle states against now:
// scheduled restrictions whose window has opened become active, and any
// restriction whose window has closed becomes expired. Expired is terminal;
// a restriction never re-enters active. Returns the IDs that changed.
func (c *Catalog) RefreshStatuses(now time.Time) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var changed []string
	fresh := make([]domain.BulkRestriction, len(c.restrictions))
	copy(fresh, c.restrictions)

	for i := range fresh {
		r := &fresh[i]
		if r.Status == domain.RestrictionExpired {
			continue
		}

		switch {
		case today.After(truncateDate(r.EndDate)):
			r.Status = domain.RestrictionExpired
			changed = append(changed, r.ID)
		case r.Status == domain.RestrictionScheduled && !today.Before(truncateDate(r.StartDate)):
			r.Status = domain.RestrictionActive
			changed = append(changed, r.ID)
		}
	}

	if len(changed) > 0 {
		c.restrictions = fresh
	}
	return changed
}
