// Package engine classifies remaining inventory into an actionable status.
// It is a pure function of (room type, date, inventory, capacity) plus the
// injected clock, which is what makes the result memoizable.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/stayview/revgrid/backend-go/internal/clock"
	"github.com/stayview/revgrid/backend-go/internal/domain"
	"github.com/stayview/revgrid/backend-go/internal/market"
)

const (
	// DefaultCapacity is assumed when the caller does not know the room
	// type's physical capacity.
	DefaultCapacity = 100

	selloutThreshold = 5

	dateLayout = "2006-01-02"
)

// Classifier turns a cell's remaining inventory plus contextual signals into
// a SmartInventoryStatus. It never returns an error: this feeds a rendering
// path, so bad input degrades to a conservative critical classification or a
// neutral context instead of failing.
type Classifier struct {
	clock           clock.Clock
	defaultCapacity int
}

// NewClassifier creates a classifier. A nil clock falls back to the system
// clock; a non-positive defaultCapacity falls back to DefaultCapacity.
func NewClassifier(clk clock.Clock, defaultCapacity int) *Classifier {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if defaultCapacity <= 0 {
		defaultCapacity = DefaultCapacity
	}
	return &Classifier{clock: clk, defaultCapacity: defaultCapacity}
}

// Classify computes the status for one cell. Capacity <= 0 means unknown.
//
// The branch order below is the contract: the sellout guard runs before any
// demand-rate math, and all rate thresholds are strict comparisons.
func (c *Classifier) Classify(inventory int, roomType, dateStr string, capacity int) domain.SmartInventoryStatus {
	if capacity <= 0 {
		capacity = c.defaultCapacity
	}

	isWeekend, daysOut := c.dateContext(dateStr)
	snap := market.SnapshotFor(roomType, dateStr, inventory, capacity)

	var status domain.SmartInventoryStatus

	switch {
	case inventory <= selloutThreshold:
		// Covers zero and negative inventory too; no division happens on
		// this branch.
		status = domain.SmartInventoryStatus{
			Level:      domain.LevelCritical,
			Urgency:    domain.UrgencyImmediate,
			Confidence: 95,
		}
		status.Reasoning = append(status.Reasoning,
			fmt.Sprintf("Only %d rooms left - sellout risk", inventory))
	default:
		status = classifyDemandRate(snap.CurrentDemand / float64(inventory))
	}

	// Contextual reasoning. Append order is significant for display.
	if daysOut <= 3 {
		status.Reasoning = append(status.Reasoning,
			fmt.Sprintf("Last minute window - %d days out", daysOut))
	} else if daysOut <= 14 {
		status.Reasoning = append(status.Reasoning,
			fmt.Sprintf("Inside booking window - %d days out", daysOut))
	}

	if isWeekend {
		status.Reasoning = append(status.Reasoning,
			"Weekend date - leisure demand pattern")
	}

	if snap.EventImpact == domain.EventPositive {
		status.Reasoning = append(status.Reasoning,
			"Local event detected - demand upside expected")
		status.Level = upgradeLevel(status.Level)
	}

	position := domain.CompetitorParity
	if float64(inventory) < snap.CompetitorAvailability {
		position = domain.CompetitorAdvantage
		status.Reasoning = append(status.Reasoning,
			"Competitive advantage - less availability than comp set average")
	} else {
		status.Reasoning = append(status.Reasoning,
			"At parity with comp set availability")
	}

	status.Factors = domain.StatusFactors{
		DemandPace:         demandPace(snap.CurrentDemand, snap.LastYearPace),
		CompetitorPosition: position,
		EventImpact:        snap.EventImpact,
		SeasonalTrend:      seasonalTrend(isWeekend),
	}

	applyPresentation(&status)

	return status
}

// classifyDemandRate maps a demand rate to the primary classification. The
// thresholds are strict comparisons and the branch order is load-bearing.
func classifyDemandRate(demandRate float64) domain.SmartInventoryStatus {
	switch {
	case demandRate > 0.8:
		return domain.SmartInventoryStatus{
			Level:      domain.LevelCritical,
			Urgency:    domain.UrgencyImmediate,
			Confidence: 90,
			Reasoning: []string{
				fmt.Sprintf("High demand - pace at %.0f%% of remaining inventory", demandRate*100),
			},
		}
	case demandRate > 0.6:
		return domain.SmartInventoryStatus{
			Level:      domain.LevelOptimal,
			Urgency:    domain.UrgencyRoutine,
			Confidence: 85,
			Reasoning: []string{
				fmt.Sprintf("Good pace - demand at %.0f%% of remaining inventory", demandRate*100),
			},
		}
	case demandRate > 0.3:
		return domain.SmartInventoryStatus{
			Level:      domain.LevelLow,
			Urgency:    domain.UrgencyMonitor,
			Confidence: 80,
			Reasoning: []string{
				fmt.Sprintf("Slow pace - demand at %.0f%% of remaining inventory", demandRate*100),
			},
		}
	default:
		return domain.SmartInventoryStatus{
			Level:      domain.LevelOversupply,
			Urgency:    domain.UrgencyImmediate,
			Confidence: 85,
			Reasoning: []string{
				"Poor demand - pace below 30% of remaining inventory",
			},
		}
	}
}

// dateContext derives the weekend flag and booking-window distance for a
// stay date. An unparsable date degrades to a neutral context (weekday,
// zero days out) rather than failing the render path.
func (c *Classifier) dateContext(dateStr string) (bool, int) {
	stay, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return false, 0
	}

	wd := stay.Weekday()
	isWeekend := wd == time.Saturday || wd == time.Sunday

	today := c.clock.Now().UTC().Truncate(24 * time.Hour)
	daysOut := int(math.Round(stay.Sub(today).Hours() / 24))

	return isWeekend, daysOut
}

// upgradeLevel moves one step toward optimal. Optimal and critical are
// unaffected: an event never softens a sellout warning.
func upgradeLevel(level domain.InventoryLevel) domain.InventoryLevel {
	switch level {
	case domain.LevelOversupply:
		return domain.LevelLow
	case domain.LevelLow:
		return domain.LevelOptimal
	default:
		return level
	}
}

func demandPace(currentDemand, lastYearPace float64) float64 {
	if lastYearPace == 0 {
		return 0
	}
	return math.Round((currentDemand - lastYearPace) / lastYearPace * 100)
}

func seasonalTrend(isWeekend bool) domain.SeasonalTrend {
	if isWeekend {
		return domain.SeasonPeak
	}
	return domain.SeasonShoulder
}
