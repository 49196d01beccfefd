// Package restriction resolves operator-defined bulk restrictions against
// grid cells: which rules hit a (room type, rate plan, date) intersection,
// and which single rule wins when several do.
package restriction

import "github.com/stayview/revgrid/backend-go/internal/domain"

// Types is the static restriction-type catalog. It is never mutated at
// runtime; bulk restrictions reference entries by ID.
var Types = []domain.RestrictionType{
	{ID: "closeout", Code: "CLS", Name: "Close Out", Category: domain.CategoryAvailability, Priority: 10, Color: "slate"},
	{ID: "cta", Code: "CTA", Name: "Closed To Arrival", Category: domain.CategoryAvailability, Priority: 9, Color: "rose"},
	{ID: "ctd", Code: "CTD", Name: "Closed To Departure", Category: domain.CategoryAvailability, Priority: 9, Color: "rose"},
	{ID: "no_arrival", Code: "NOA", Name: "No Arrival", Category: domain.CategoryAvailability, Priority: 8, Color: "orange"},
	{ID: "no_departure", Code: "NOD", Name: "No Departure", Category: domain.CategoryAvailability, Priority: 8, Color: "orange"},
	{ID: "minlos", Code: "MLS", Name: "Minimum Length of Stay", Category: domain.CategoryLengthOfStay, Priority: 7, Color: "violet"},
	{ID: "maxlos", Code: "XLS", Name: "Maximum Length of Stay", Category: domain.CategoryLengthOfStay, Priority: 6, Color: "violet"},
	{ID: "min_advance", Code: "MAB", Name: "Minimum Advance Booking", Category: domain.CategoryBooking, Priority: 5, Color: "sky"},
	{ID: "max_advance", Code: "XAB", Name: "Maximum Advance Booking", Category: domain.CategoryBooking, Priority: 5, Color: "sky"},
	{ID: "rate_fence", Code: "RTF", Name: "Rate Fence", Category: domain.CategoryRate, Priority: 4, Color: "emerald"},
	{ID: "guest_type", Code: "GST", Name: "Guest Type Restriction", Category: domain.CategoryGuest, Priority: 3, Color: "stone"},
}

// closeoutKinds are the restriction types that fully block sale for affected
// dates. The set is fixed; membership is checked independently of priority.
var closeoutKinds = map[string]bool{
	"closeout":   true,
	"ctd":        true,
	"no_arrival": true,
}

var typesByID = func() map[string]domain.RestrictionType {
	m := make(map[string]domain.RestrictionType, len(Types))
	for _, t := range Types {
		m[t.ID] = t
	}
	return m
}()

// TypeByID looks up a static catalog entry.
func TypeByID(id string) (domain.RestrictionType, bool) {
	t, ok := typesByID[id]
	return t, ok
}

// IsCloseoutKind reports whether a restriction type fully blocks sale.
func IsCloseoutKind(typeID string) bool {
	return closeoutKinds[typeID]
}
