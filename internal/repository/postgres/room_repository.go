package postgres

import (
	"context"
	"fmt"

	"github.com/stayview/revgrid/backend-go/internal/domain"
)

type roomCatalogRepository struct {
	db *DB
}

func NewRoomCatalogRepository(db *DB) *roomCatalogRepository {
	return &roomCatalogRepository{db: db}
}

func (r *roomCatalogRepository) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	roomTypes := make([]domain.RoomType, 0)
	query := `
		SELECT id, name, capacity, created_at, updated_at
		FROM room_types
		ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &roomTypes, query); err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	return roomTypes, nil
}

func (r *roomCatalogRepository) ListRatePlans(ctx context.Context) ([]domain.RatePlan, error) {
	ratePlans := make([]domain.RatePlan, 0)
	query := `
		SELECT id, name, type_code, base_rate, currency, created_at, updated_at
		FROM rate_plans
		ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &ratePlans, query); err != nil {
		return nil, fmt.Errorf("failed to list rate plans: %w", err)
	}
	return ratePlans, nil
}
