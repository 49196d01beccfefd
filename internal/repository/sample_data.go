package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stayview/revgrid/backend-go/internal/domain"
	"github.com/stayview/revgrid/backend-go/internal/restriction"
)

// NewSampleRepository seeds an in-memory repository with a small property:
// four room types, three rate plans, and a handful of restrictions around
// the given anchor date. Used by db-less mode and the demo frontend.
func NewSampleRepository(anchor time.Time) *MemoryRepository {
	day := func(offset int) time.Time {
		d := anchor.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}

	roomTypes := []domain.RoomType{
		{ID: 1, Name: "Standard King", Capacity: 120},
		{ID: 2, Name: "Standard Twin", Capacity: 80},
		{ID: 3, Name: "Deluxe", Capacity: 45},
		{ID: 4, Name: "Suite", Capacity: 18},
	}

	ratePlans := []domain.RatePlan{
		{ID: 1, Name: "Best Available Rate", TypeCode: "BAR", BaseRate: decimal.NewFromInt(189), Currency: "USD"},
		{ID: 2, Name: "Corporate", TypeCode: "CORP", BaseRate: decimal.NewFromInt(159), Currency: "USD"},
		{ID: 3, Name: "Breakfast Package", TypeCode: "PKG", BaseRate: decimal.NewFromFloat(214.5), Currency: "USD"},
	}

	mustType := func(id string) domain.RestrictionType {
		t, ok := restriction.TypeByID(id)
		if !ok {
			panic("unknown restriction type " + id)
		}
		return t
	}

	restrictions := []domain.BulkRestriction{
		{
			ID:        "smp-closeout-suite",
			Type:      mustType("closeout"),
			StartDate: day(-1),
			EndDate:   day(4),
			Targets:   domain.RestrictionTargets{RoomTypes: []string{"Suite"}},
			Status:    domain.RestrictionActive,
			CreatedBy: "demo",
			CreatedAt: anchor,
			Notes:     "Suite block for renovation",
		},
		{
			ID:        "smp-minlos-weekend",
			Type:      mustType("minlos"),
			Value:     "2",
			StartDate: day(0),
			EndDate:   day(13),
			Targets:   domain.RestrictionTargets{RatePlans: []string{"BAR"}},
			Status:    domain.RestrictionActive,
			CreatedBy: "demo",
			CreatedAt: anchor,
		},
		{
			ID:        "smp-fence-corp",
			Type:      mustType("rate_fence"),
			StartDate: day(7),
			EndDate:   day(20),
			Targets:   domain.RestrictionTargets{RoomTypes: []string{"Deluxe", "Suite"}, RatePlans: []string{"CORP"}},
			Status:    domain.RestrictionScheduled,
			CreatedBy: "demo",
			CreatedAt: anchor,
		},
	}

	return NewMemoryRepository(restrictions, roomTypes, ratePlans)
}
