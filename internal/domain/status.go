package domain

import "strings"

// InventoryLevel is the qualitative inventory-pressure classification for a
// room type on a stay date. Levels are mutually exclusive.
type InventoryLevel string

const (
	LevelCritical   InventoryLevel = "critical"
	LevelLow        InventoryLevel = "low"
	LevelOptimal    InventoryLevel = "optimal"
	LevelOversupply InventoryLevel = "oversupply"
)

// Urgency indicates how quickly a revenue manager should react.
type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyMonitor   Urgency = "monitor"
	UrgencyRoutine   Urgency = "routine"
)

// CompetitorPosition compares remaining inventory against the comp set.
type CompetitorPosition string

const (
	CompetitorAdvantage    CompetitorPosition = "advantage"
	CompetitorParity       CompetitorPosition = "parity"
	CompetitorDisadvantage CompetitorPosition = "disadvantage"
)

// EventImpact is the synthetic local-event signal for a stay date.
type EventImpact string

const (
	EventNone     EventImpact = "none"
	EventPositive EventImpact = "positive"
	EventNegative EventImpact = "negative"
)

// SeasonalTrend is the coarse seasonality bucket for a stay date.
type SeasonalTrend string

const (
	SeasonPeak     SeasonalTrend = "peak"
	SeasonShoulder SeasonalTrend = "shoulder"
	SeasonValley   SeasonalTrend = "valley"
)

// StatusFactors is the machine-checkable breakdown behind a classification.
type StatusFactors struct {
	DemandPace         float64            `json:"demand_pace"`
	CompetitorPosition CompetitorPosition `json:"competitor_position"`
	EventImpact        EventImpact        `json:"event_impact"`
	SeasonalTrend      SeasonalTrend      `json:"seasonal_trend"`
}

// SmartInventoryStatus is the classifier output for one (room type, date,
// inventory) combination. Immutable once computed; a changed inventory value
// produces a new record under a new cache key.
type SmartInventoryStatus struct {
	Level          InventoryLevel `json:"level"`
	Urgency        Urgency        `json:"urgency"`
	Confidence     int            `json:"confidence"`
	Factors        StatusFactors  `json:"factors"`
	Reasoning      []string       `json:"reasoning"`
	DisplayText    string         `json:"display_text"`
	Color          string         `json:"color"`
	ActionRequired string         `json:"action_required"`
}

var levelLabels = map[InventoryLevel]string{
	LevelCritical:   "Sellout Risk",
	LevelLow:        "Slow Pace",
	LevelOptimal:    "Good Pace",
	LevelOversupply: "Poor Demand",
}

var levelCodes = map[string]InventoryLevel{
	"critical":   LevelCritical,
	"low":        LevelLow,
	"optimal":    LevelOptimal,
	"oversupply": LevelOversupply,
}

// InventoryLevelLabel returns a human-readable label for a level.
func InventoryLevelLabel(level InventoryLevel) string {
	if label, ok := levelLabels[level]; ok {
		return label
	}

	return "Unknown"
}

// ParseInventoryLevel returns the level for a given code (case-insensitive).
func ParseInventoryLevel(code string) (InventoryLevel, bool) {
	level, ok := levelCodes[strings.ToLower(code)]

	return level, ok
}
