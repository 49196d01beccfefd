package domain

import "time"

// RestrictionCategory groups restriction types by what they constrain.
type RestrictionCategory string

const (
	CategoryAvailability RestrictionCategory = "availability"
	CategoryLengthOfStay RestrictionCategory = "length_of_stay"
	CategoryBooking      RestrictionCategory = "booking"
	CategoryRate         RestrictionCategory = "rate"
	CategoryGuest        RestrictionCategory = "guest"
)

// RestrictionStatus is the lifecycle state of a bulk restriction. The sweep
// only ever moves forward: scheduled -> active -> expired.
type RestrictionStatus string

const (
	RestrictionScheduled RestrictionStatus = "scheduled"
	RestrictionActive    RestrictionStatus = "active"
	RestrictionExpired   RestrictionStatus = "expired"
)

// RestrictionType is a static catalog entry describing one kind of
// restriction. Higher priority wins when several restrictions hit a cell.
type RestrictionType struct {
	ID       string              `json:"id" db:"id"`
	Code     string              `json:"code" db:"code"`
	Name     string              `json:"name" db:"name"`
	Category RestrictionCategory `json:"category" db:"category"`
	Priority int                 `json:"priority" db:"priority"`
	Color    string              `json:"color" db:"color"`
}

// RestrictionTargets scopes a restriction to room types, rate plans and
// channels. An empty set in any dimension means the restriction applies to
// all values of that dimension.
type RestrictionTargets struct {
	RoomTypes []string `json:"room_types"`
	RatePlans []string `json:"rate_plans"`
	Channels  []string `json:"channels"`
}

// BulkRestriction is an operator-created rule scoped to a date range and a
// target set. StartDate and EndDate are inclusive calendar dates; the
// invariant StartDate <= EndDate is enforced at creation.
type BulkRestriction struct {
	ID        string             `json:"id" db:"id"`
	Type      RestrictionType    `json:"restriction_type"`
	Value     string             `json:"value,omitempty" db:"value"`
	StartDate time.Time          `json:"start_date" db:"start_date"`
	EndDate   time.Time          `json:"end_date" db:"end_date"`
	Targets   RestrictionTargets `json:"targets"`
	Status    RestrictionStatus  `json:"status" db:"status"`
	CreatedBy string             `json:"created_by" db:"created_by"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
	Notes     string             `json:"notes,omitempty" db:"notes"`
}
