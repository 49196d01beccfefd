package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stayview/revgrid/backend-go/internal/restriction"
	"github.com/urfave/cli/v2"
)

func createSchema(c *cli.Context) error {
	db := dbFrom(c)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS room_types (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			capacity INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS rate_plans (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			type_code TEXT NOT NULL UNIQUE,
			base_rate NUMERIC(10,2) NOT NULL,
			currency TEXT NOT NULL DEFAULT 'USD',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS bulk_restrictions (
			id TEXT PRIMARY KEY,
			type_id TEXT NOT NULL,
			value TEXT,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			room_types TEXT[] NOT NULL DEFAULT '{}',
			rate_plans TEXT[] NOT NULL DEFAULT '{}',
			channels TEXT[] NOT NULL DEFAULT '{}',
			status TEXT NOT NULL,
			created_by TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			notes TEXT,
			CONSTRAINT date_range_valid CHECK (start_date <= end_date)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(c.Context, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	log.Println("schema ready")
	return nil
}

func seedRooms(c *cli.Context) error {
	db := dbFrom(c)

	roomTypes := []struct {
		name     string
		capacity int
	}{
		{"Standard King", 120},
		{"Standard Twin", 80},
		{"Deluxe", 45},
		{"Suite", 18},
	}

	for _, rt := range roomTypes {
		_, err := db.ExecContext(c.Context, `
			INSERT INTO room_types (name, capacity)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET capacity = EXCLUDED.capacity, updated_at = NOW()
		`, rt.name, rt.capacity)
		if err != nil {
			return fmt.Errorf("failed to seed room type %s: %w", rt.name, err)
		}
	}

	ratePlans := []struct {
		name     string
		typeCode string
		baseRate decimal.Decimal
	}{
		{"Best Available Rate", "BAR", decimal.NewFromInt(189)},
		{"Corporate", "CORP", decimal.NewFromInt(159)},
		{"Breakfast Package", "PKG", decimal.NewFromFloat(214.5)},
	}

	for _, rp := range ratePlans {
		_, err := db.ExecContext(c.Context, `
			INSERT INTO rate_plans (name, type_code, base_rate)
			VALUES ($1, $2, $3)
			ON CONFLICT (type_code) DO UPDATE SET base_rate = EXCLUDED.base_rate, updated_at = NOW()
		`, rp.name, rp.typeCode, rp.baseRate)
		if err != nil {
			return fmt.Errorf("failed to seed rate plan %s: %w", rp.typeCode, err)
		}
	}

	log.Printf("seeded %d room types and %d rate plans", len(roomTypes), len(ratePlans))
	return nil
}

func seedRestrictions(c *cli.Context) error {
	db := dbFrom(c)
	createdBy := c.String("created-by")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	samples := []struct {
		typeID     string
		value      string
		start, end time.Time
		roomTypes  []string
		ratePlans  []string
		status     string
		notes      string
	}{
		{"closeout", "", day(-1), day(4), []string{"Suite"}, nil, "active", "Suite block for renovation"},
		{"minlos", "2", day(0), day(13), nil, []string{"BAR"}, "active", ""},
		{"no_arrival", "", day(5), day(5), nil, nil, "scheduled", "Arrival blackout, city marathon"},
		{"rate_fence", "", day(7), day(20), []string{"Deluxe", "Suite"}, []string{"CORP"}, "scheduled", ""},
	}

	for _, s := range samples {
		if _, ok := restriction.TypeByID(s.typeID); !ok {
			return fmt.Errorf("unknown restriction type %q", s.typeID)
		}

		_, err := db.ExecContext(c.Context, `
			INSERT INTO bulk_restrictions (
				id, type_id, value, start_date, end_date,
				room_types, rate_plans, channels,
				status, created_by, notes
			) VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''))
		`,
			uuid.NewString(),
			s.typeID,
			s.value,
			s.start,
			s.end,
			pq.Array(orEmpty(s.roomTypes)),
			pq.Array(orEmpty(s.ratePlans)),
			pq.Array([]string{}),
			s.status,
			createdBy,
			s.notes,
		)
		if err != nil {
			return fmt.Errorf("failed to seed %s restriction: %w", s.typeID, err)
		}
	}

	log.Printf("seeded %d bulk restrictions", len(samples))
	return nil
}

// orEmpty keeps nil target slices out of NOT NULL text[] columns.
func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
