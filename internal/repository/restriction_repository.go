package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/stayview/revgrid/backend-go/internal/domain"
)

// RestrictionRepository persists operator-created bulk restrictions. The
// resolver never talks to this directly; the service loads the catalog from
// here and resolves against an in-memory snapshot.
type RestrictionRepository interface {
	ListRestrictions(ctx context.Context) ([]domain.BulkRestriction, error)
	InsertRestriction(ctx context.Context, r domain.BulkRestriction) error
	DeleteRestriction(ctx context.Context, id string) error
	UpdateRestrictionStatus(ctx context.Context, id string, status domain.RestrictionStatus) error
}

// RoomCatalogRepository lists the hotel's sellable room types and rate
// plans, used for capacity lookups and grid seeding.
type RoomCatalogRepository interface {
	ListRoomTypes(ctx context.Context) ([]domain.RoomType, error)
	ListRatePlans(ctx context.Context) ([]domain.RatePlan, error)
}

// MemoryRepository is an in-memory RestrictionRepository and
// RoomCatalogRepository, used in db-less demo mode and in tests.
type MemoryRepository struct {
	mu           sync.Mutex
	restrictions []domain.BulkRestriction
	roomTypes    []domain.RoomType
	ratePlans    []domain.RatePlan
}

func NewMemoryRepository(restrictions []domain.BulkRestriction, roomTypes []domain.RoomType, ratePlans []domain.RatePlan) *MemoryRepository {
	return &MemoryRepository{
		restrictions: append([]domain.BulkRestriction(nil), restrictions...),
		roomTypes:    append([]domain.RoomType(nil), roomTypes...),
		ratePlans:    append([]domain.RatePlan(nil), ratePlans...),
	}
}

func (m *MemoryRepository) ListRestrictions(ctx context.Context) ([]domain.BulkRestriction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.BulkRestriction, len(m.restrictions))
	copy(out, m.restrictions)
	return out, nil
}

func (m *MemoryRepository) InsertRestriction(ctx context.Context, r domain.BulkRestriction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.restrictions {
		if existing.ID == r.ID {
			return fmt.Errorf("restriction %s already exists", r.ID)
		}
	}
	m.restrictions = append(m.restrictions, r)
	return nil
}

func (m *MemoryRepository) DeleteRestriction(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.restrictions {
		if r.ID == id {
			m.restrictions = append(m.restrictions[:i], m.restrictions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("restriction %s not found", id)
}

func (m *MemoryRepository) UpdateRestrictionStatus(ctx context.Context, id string, status domain.RestrictionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.restrictions {
		if m.restrictions[i].ID == id {
			m.restrictions[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("restriction %s not found", id)
}

func (m *MemoryRepository) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.RoomType, len(m.roomTypes))
	copy(out, m.roomTypes)
	return out, nil
}

func (m *MemoryRepository) ListRatePlans(ctx context.Context) ([]domain.RatePlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.RatePlan, len(m.ratePlans))
	copy(out, m.ratePlans)
	return out, nil
}
