package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/stayview/revgrid/backend-go/internal/clock"
	"github.com/stayview/revgrid/backend-go/internal/domain"
	"github.com/stayview/revgrid/backend-go/internal/repository"
	"github.com/stayview/revgrid/backend-go/internal/restriction"
)

// CellResolution is the full resolver output for one grid cell.
type CellResolution struct {
	Applicable      []domain.BulkRestriction `json:"applicable"`
	Winner          *domain.BulkRestriction  `json:"winner,omitempty"`
	CloseoutApplied bool                     `json:"closeout_applied"`
	CellClass       string                   `json:"cell_class"`
}

// CreateRestrictionInput carries the operator request to create a bulk
// restriction. Dates are inclusive ISO calendar dates.
type CreateRestrictionInput struct {
	TypeID    string                    `json:"type_id"`
	Value     string                    `json:"value,omitempty"`
	StartDate string                    `json:"start_date"`
	EndDate   string                    `json:"end_date"`
	Targets   domain.RestrictionTargets `json:"targets"`
	CreatedBy string                    `json:"created_by"`
	Notes     string                    `json:"notes,omitempty"`
}

// RestrictionService owns the in-memory catalog, keeps it in sync with the
// repository, and fronts the resolver.
type RestrictionService struct {
	repo    repository.RestrictionRepository
	catalog *restriction.Catalog
	clock   clock.Clock
}

func NewRestrictionService(repo repository.RestrictionRepository, clk clock.Clock) *RestrictionService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &RestrictionService{
		repo:    repo,
		catalog: restriction.NewCatalog(nil),
		clock:   clk,
	}
}

// Load replaces the catalog from the repository and sweeps lifecycle
// statuses against the current clock. Called at startup and on demand from
// the admin surface.
func (s *RestrictionService) Load(ctx context.Context) error {
	restrictions, err := s.repo.ListRestrictions(ctx)
	if err != nil {
		return fmt.Errorf("load restriction catalog: %w", err)
	}

	s.catalog.Replace(restrictions)
	s.sweep(ctx)
	return nil
}

// sweep advances scheduled/expired statuses and writes transitions back
// through the repository. A persistence failure is logged, not fatal: the
// in-memory catalog is already correct for resolution.
func (s *RestrictionService) sweep(ctx context.Context) int {
	changed := s.catalog.RefreshStatuses(s.clock.Now())
	if len(changed) == 0 {
		return 0
	}

	byID := make(map[string]domain.RestrictionStatus)
	for _, r := range s.catalog.Snapshot() {
		byID[r.ID] = r.Status
	}

	for _, id := range changed {
		if err := s.repo.UpdateRestrictionStatus(ctx, id, byID[id]); err != nil {
			log.Warn().Err(err).Str("restriction_id", id).Msg("failed to persist restriction status transition")
		}
	}

	return len(changed)
}

// List returns the current catalog snapshot.
func (s *RestrictionService) List() []domain.BulkRestriction {
	return s.catalog.Snapshot()
}

// Create validates and persists a new restriction, then publishes it to the
// catalog. Status is derived from the date range against the clock.
func (s *RestrictionService) Create(ctx context.Context, input CreateRestrictionInput) (domain.BulkRestriction, error) {
	rt, ok := restriction.TypeByID(input.TypeID)
	if !ok {
		return domain.BulkRestriction{}, fmt.Errorf("unknown restriction type %q", input.TypeID)
	}

	start, err := time.ParseInLocation("2006-01-02", input.StartDate, time.UTC)
	if err != nil {
		return domain.BulkRestriction{}, fmt.Errorf("invalid start date %q: %w", input.StartDate, err)
	}
	end, err := time.ParseInLocation("2006-01-02", input.EndDate, time.UTC)
	if err != nil {
		return domain.BulkRestriction{}, fmt.Errorf("invalid end date %q: %w", input.EndDate, err)
	}
	if start.After(end) {
		return domain.BulkRestriction{}, fmt.Errorf("start date %s is after end date %s", input.StartDate, input.EndDate)
	}

	now := s.clock.Now()
	status := domain.RestrictionScheduled
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case today.After(end):
		status = domain.RestrictionExpired
	case !today.Before(start):
		status = domain.RestrictionActive
	}

	br := domain.BulkRestriction{
		ID:        uuid.NewString(),
		Type:      rt,
		Value:     input.Value,
		StartDate: start,
		EndDate:   end,
		Targets:   input.Targets,
		Status:    status,
		CreatedBy: input.CreatedBy,
		CreatedAt: now,
		Notes:     input.Notes,
	}

	if err := s.repo.InsertRestriction(ctx, br); err != nil {
		return domain.BulkRestriction{}, fmt.Errorf("persist restriction: %w", err)
	}

	s.catalog.Add(br)
	return br, nil
}

// Delete removes a restriction from the repository and the catalog.
func (s *RestrictionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteRestriction(ctx, id); err != nil {
		return err
	}
	s.catalog.Remove(id)
	return nil
}

// Refresh sweeps lifecycle statuses against the current clock. Returns the
// number of transitions applied.
func (s *RestrictionService) Refresh(ctx context.Context) int {
	return s.sweep(ctx)
}

// Resolve computes the full resolver output for one cell.
func (s *RestrictionService) Resolve(roomType, ratePlanType, dateStr string) CellResolution {
	applicable := restriction.ApplicableRestrictions(s.catalog.Snapshot(), roomType, ratePlanType, dateStr)

	return CellResolution{
		Applicable:      applicable,
		Winner:          restriction.HighestPriority(applicable),
		CloseoutApplied: restriction.IsCloseoutApplied(applicable),
		CellClass:       restriction.CellRestrictionClasses(applicable),
	}
}

// Applicable returns only the filtered set for one cell.
func (s *RestrictionService) Applicable(roomType, ratePlanType, dateStr string) []domain.BulkRestriction {
	return restriction.ApplicableRestrictions(s.catalog.Snapshot(), roomType, ratePlanType, dateStr)
}
