package restriction

import (
	"time"

	"github.com/stayview/revgrid/backend-go/internal/domain"
)

const dateLayout = "2006-01-02"

// MatchDimension reports whether a target set matches a cell value. An empty
// set is a wildcard: the restriction applies to all values of the dimension.
func MatchDimension(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// ApplicableRestrictions filters a catalog snapshot down to the restrictions
// hitting one cell: active status, inclusive date-range match, and target
// match on the room-type and rate-plan dimensions. Channels are not
// evaluated; grid cells carry no channel context. Order follows the catalog.
//
// An unparsable date matches nothing: the render path gets an empty set, not
// an error.
func ApplicableRestrictions(catalog []domain.BulkRestriction, roomType, ratePlanType, dateStr string) []domain.BulkRestriction {
	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return []domain.BulkRestriction{}
	}

	applicable := make([]domain.BulkRestriction, 0)
	for _, r := range catalog {
		if r.Status != domain.RestrictionActive {
			continue
		}
		if !dateWithin(date, r.StartDate, r.EndDate) {
			continue
		}
		if !MatchDimension(r.Targets.RoomTypes, roomType) {
			continue
		}
		if !MatchDimension(r.Targets.RatePlans, ratePlanType) {
			continue
		}
		applicable = append(applicable, r)
	}

	return applicable
}

// HighestPriority reduces an applicable set to the single winner by type
// priority. Ties keep the first-encountered restriction, which makes the
// result stable for a given input order. Returns nil when the set is empty.
func HighestPriority(applicable []domain.BulkRestriction) *domain.BulkRestriction {
	var winner *domain.BulkRestriction
	for i := range applicable {
		if winner == nil || applicable[i].Type.Priority > winner.Type.Priority {
			winner = &applicable[i]
		}
	}
	return winner
}

// IsCloseoutApplied reports whether any applicable restriction fully blocks
// sale. Independent of priority: a low-priority closeout still blocks even
// when a higher-priority non-closeout restriction also matches.
func IsCloseoutApplied(applicable []domain.BulkRestriction) bool {
	for _, r := range applicable {
		if IsCloseoutKind(r.Type.ID) {
			return true
		}
	}
	return false
}

// CellRestrictionClasses derives the style token for a cell from its
// applicable set: a fixed blocked token when the winner is a closeout kind,
// a color-parameterized token otherwise, empty when nothing matches.
func CellRestrictionClasses(applicable []domain.BulkRestriction) string {
	winner := HighestPriority(applicable)
	if winner == nil {
		return ""
	}
	if IsCloseoutKind(winner.Type.ID) {
		return "cell-blocked"
	}
	return "cell-restricted-" + winner.Type.Color
}

// dateWithin is an inclusive calendar-date range check.
func dateWithin(date, start, end time.Time) bool {
	d := truncateDate(date)
	return !d.Before(truncateDate(start)) && !d.After(truncateDate(end))
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
