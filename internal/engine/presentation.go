package engine

import "github.com/stayview/revgrid/backend-go/internal/domain"

// applyPresentation fills the derived, non-authoritative display fields.
// They are a pure function of the final level (after any event upgrade).
func applyPresentation(status *domain.SmartInventoryStatus) {
	status.DisplayText = domain.InventoryLevelLabel(status.Level)

	switch status.Level {
	case domain.LevelCritical:
		status.Color = "red"
		status.ActionRequired = "Immediate pricing and inventory action"
	case domain.LevelLow:
		status.Color = "amber"
		status.ActionRequired = "Consider promotion or rate adjustment"
	case domain.LevelOptimal:
		status.Color = "green"
		status.ActionRequired = "Monitor - no action needed"
	case domain.LevelOversupply:
		status.Color = "blue"
		status.ActionRequired = "Aggressive pricing action needed"
	}
}
