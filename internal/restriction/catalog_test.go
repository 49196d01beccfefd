package restriction

import (
	"testing"
	"time"

	"github.com/stayview/revgrid/backend-go/internal/domain"
)

func TestCatalog_CopyOnWrite(t *testing.T) {
	t.Parallel()

	r1 := domain.BulkRestriction{ID: "r1", Type: Types[0], Status: domain.RestrictionActive}
	r2 := domain.BulkRestriction{ID: "r2", Type: Types[5], Status: domain.RestrictionActive}

	c := NewCatalog([]domain.BulkRestriction{r1})
	before := c.Snapshot()

	c.Add(r2)
	after := c.Snapshot()

	if len(before) != 1 {
		t.Fatalf("earlier snapshot must be unaffected by Add, len = %d", len(before))
	}
	if len(after) != 2 || after[1].ID != "r2" {
		t.Fatalf("Add should append in catalog order, got %+v", after)
	}

	if !c.Remove("r1") {
		t.Fatalf("Remove should report success for a present ID")
	}
	if c.Remove("r1") {
		t.Fatalf("Remove should report false for an absent ID")
	}
	if len(after) != 2 {
		t.Fatalf("snapshot taken before Remove must keep its entries")
	}
	if got := c.Snapshot(); len(got) != 1 || got[0].ID != "r2" {
		t.Fatalf("catalog after remove = %+v", got)
	}
}

func TestCatalog_RefreshStatuses(t *testing.T) {
	t.Parallel()

	day := func(s string) time.Time { return date(s) }

	t.Run("scheduled becomes active inside its window", func(t *testing.T) {
		c := NewCatalog([]domain.BulkRestriction{{
			ID:        "r1",
			Type:      Types[0],
			StartDate: day("2026-03-01"),
			EndDate:   day("2026-03-10"),
			Status:    domain.RestrictionScheduled,
		}})

		changed := c.RefreshStatuses(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
		if len(changed) != 1 || changed[0] != "r1" {
			t.Fatalf("changed = %v, want [r1]", changed)
		}
		if got := c.Snapshot()[0].Status; got != domain.RestrictionActive {
			t.Fatalf("status = %s, want active", got)
		}
	})

	t.Run("active becomes expired after its window", func(t *testing.T) {
		c := NewCatalog([]domain.BulkRestriction{{
			ID:        "r1",
			Type:      Types[0],
			StartDate: day("2026-03-01"),
			EndDate:   day("2026-03-10"),
			Status:    domain.RestrictionActive,
		}})

		c.RefreshStatuses(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
		if got := c.Snapshot()[0].Status; got != domain.RestrictionExpired {
			t.Fatalf("status = %s, want expired", got)
		}
	})

	t.Run("scheduled past its window expires without activating", func(t *testing.T) {
		c := NewCatalog([]domain.BulkRestriction{{
			ID:        "r1",
			Type:      Types[0],
			StartDate: day("2026-03-01"),
			EndDate:   day("2026-03-10"),
			Status:    domain.RestrictionScheduled,
		}})

		c.RefreshStatuses(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
		if got := c.Snapshot()[0].Status; got != domain.RestrictionExpired {
			t.Fatalf("status = %s, want expired", got)
		}
	})

	t.Run("expired is terminal", func(t *testing.T) {
		c := NewCatalog([]domain.BulkRestriction{{
			ID:        "r1",
			Type:      Types[0],
			StartDate: day("2026-03-01"),
			EndDate:   day("2026-03-10"),
			Status:    domain.RestrictionExpired,
		}})

		// Even with "now" back inside the window, expired stays expired.
		changed := c.RefreshStatuses(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
		if len(changed) != 0 {
			t.Fatalf("expired restriction must not transition, changed = %v", changed)
		}
		if got := c.Snapshot()[0].Status; got != domain.RestrictionExpired {
			t.Fatalf("status = %s, want expired", got)
		}
	})

	t.Run("no transitions on the last day of the window", func(t *testing.T) {
		c := NewCatalog([]domain.BulkRestriction{{
			ID:        "r1",
			Type:      Types[0],
			StartDate: day("2026-03-01"),
			EndDate:   day("2026-03-10"),
			Status:    domain.RestrictionActive,
		}})

		changed := c.RefreshStatuses(time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC))
		if len(changed) != 0 {
			t.Fatalf("end date is inclusive; changed = %v", changed)
		}
	})
}

func TestTypeByID(t *testing.T) {
	t.Parallel()

	if _, ok := TypeByID("closeout"); !ok {
		t.Fatalf("closeout must exist in the static catalog")
	}
	if _, ok := TypeByID("bogus"); ok {
		t.Fatalf("unknown IDs must not resolve")
	}

	if !IsCloseoutKind("closeout") || !IsCloseoutKind("ctd") || !IsCloseoutKind("no_arrival") {
		t.Fatalf("closeout kind set is {closeout, ctd, no_arrival}")
	}
	if IsCloseoutKind("cta") || IsCloseoutKind("minlos") {
		t.Fatalf("cta and minlos are not closeout kinds")
	}
}
