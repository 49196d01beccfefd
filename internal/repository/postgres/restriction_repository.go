package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/stayview/revgrid/backend-go/internal/domain"
	"github.com/stayview/revgrid/backend-go/internal/restriction"
)

type restrictionRepository struct {
	db *DB
}

func NewRestrictionRepository(db *DB) *restrictionRepository {
	return &restrictionRepository{db: db}
}

func (r *restrictionRepository) ListRestrictions(ctx context.Context) ([]domain.BulkRestriction, error) {
	query := `
		SELECT id, type_id, value, start_date, end_date,
		       room_types, rate_plans, channels,
		       status, created_by, created_at, notes
		FROM bulk_restrictions
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list restrictions: %w", err)
	}
	defer rows.Close()

	restrictions := make([]domain.BulkRestriction, 0)
	for rows.Next() {
		var (
			br     domain.BulkRestriction
			typeID string
			value  sql.NullString
			notes  sql.NullString
		)
		if err := rows.Scan(
			&br.ID,
			&typeID,
			&value,
			&br.StartDate,
			&br.EndDate,
			pq.Array(&br.Targets.RoomTypes),
			pq.Array(&br.Targets.RatePlans),
			pq.Array(&br.Targets.Channels),
			&br.Status,
			&br.CreatedBy,
			&br.CreatedAt,
			&notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan restriction: %w", err)
		}

		rt, ok := restriction.TypeByID(typeID)
		if !ok {
			return nil, fmt.Errorf("restriction %s references unknown type %q", br.ID, typeID)
		}
		br.Type = rt
		br.Value = value.String
		br.Notes = notes.String

		restrictions = append(restrictions, br)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restrictions: %w", err)
	}

	return restrictions, nil
}

func (r *restrictionRepository) InsertRestriction(ctx context.Context, br domain.BulkRestriction) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO bulk_restrictions (
				id, type_id, value, start_date, end_date,
				room_types, rate_plans, channels,
				status, created_by, created_at, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`

		_, err := tx.ExecContext(
			ctx,
			query,
			br.ID,
			br.Type.ID,
			nullIfEmpty(br.Value),
			br.StartDate,
			br.EndDate,
			pq.Array(br.Targets.RoomTypes),
			pq.Array(br.Targets.RatePlans),
			pq.Array(br.Targets.Channels),
			br.Status,
			br.CreatedBy,
			br.CreatedAt,
			nullIfEmpty(br.Notes),
		)
		if err != nil {
			return fmt.Errorf("failed to insert restriction: %w", err)
		}
		return nil
	})
}

func (r *restrictionRepository) DeleteRestriction(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bulk_restrictions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete restriction: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("restriction %s not found", id)
	}
	return nil
}

func (r *restrictionRepository) UpdateRestrictionStatus(ctx context.Context, id string, status domain.RestrictionStatus) error {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE bulk_restrictions SET status = $1, updated_at = NOW() WHERE id = $2`,
		status,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update restriction status: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("restriction %s not found", id)
	}
	return nil
}

// nullIfEmpty returns NULL if the string is empty, otherwise returns the string
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
