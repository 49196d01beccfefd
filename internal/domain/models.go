// backend-go/internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomType represents a sellable room category with its physical capacity.
type RoomType struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Capacity  int       `json:"capacity" db:"capacity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RatePlan represents a bookable rate product. TypeCode is what bulk
// restrictions are targeted against (e.g. "BAR", "CORP", "PKG").
type RatePlan struct {
	ID        int64           `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	TypeCode  string          `json:"type_code" db:"type_code"`
	BaseRate  decimal.Decimal `json:"base_rate" db:"base_rate"`
	Currency  string          `json:"currency" db:"currency"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Cell identifies a single grid intersection plus the inventory snapshot the
// rendering layer holds for it. Capacity may be zero when unknown.
type Cell struct {
	RoomType  string `json:"room_type"`
	RatePlan  string `json:"rate_plan,omitempty"`
	Date      string `json:"date"`
	Inventory int    `json:"inventory"`
	Capacity  int    `json:"capacity,omitempty"`
}
