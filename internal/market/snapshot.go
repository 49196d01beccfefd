package market

import (
	"fmt"

	"github.com/stayview/revgrid/backend-go/internal/domain"
)

// Snapshot is the synthetic market picture for one (room type, date,
// inventory) combination. All figures are derived from Hash channels and are
// stable for a given seed.
type Snapshot struct {
	CurrentDemand          float64
	PredictedDemand        float64
	LastYearPace           float64
	CompetitorAvailability float64
	EventImpact            domain.EventImpact
}

// SeedFor builds the base seed for a cell. The inventory value is part of
// the seed so a changed inventory yields a fresh market sample.
func SeedFor(roomType, dateStr string, inventory int) string {
	return fmt.Sprintf("%s-%s-%d", roomType, dateStr, inventory)
}

// SnapshotFor samples the market channels for a cell.
//
// Bands: current demand 60-100% of inventory, predicted demand 70-110%,
// last-year pace 50-90%, competitor availability 30-60% of capacity.
func SnapshotFor(roomType, dateStr string, inventory, capacity int) Snapshot {
	seed := SeedFor(roomType, dateStr, inventory)

	inv := float64(inventory)
	capTotal := float64(capacity)

	snap := Snapshot{
		CurrentDemand:          inv * (0.6 + Channel(seed, "demand")*0.4),
		PredictedDemand:        inv * (0.7 + Hash(seed)*0.4),
		LastYearPace:           inv * (0.5 + Channel(seed, "pace")*0.4),
		CompetitorAvailability: capTotal * (0.3 + Channel(seed, "comp")*0.3),
		EventImpact:            domain.EventNone,
	}

	// The negative branch is shadowed (0.95 sits inside the > 0.8 band), so
	// EventNegative never fires. Consumers pin the sampler's exact output;
	// do not reorder the checks.
	event := Channel(seed, "event")
	if event > 0.8 {
		snap.EventImpact = domain.EventPositive
	} else if event > 0.95 {
		snap.EventImpact = domain.EventNegative
	}

	return snap
}
