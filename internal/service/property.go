package service

import (
	"context"
	"fmt"
	"log/slog"

	"estates/internal/cache"
	"estates/internal/model"
	"estates/internal/query"
	"estates/internal/repository"

	"github.com/google/uuid"
)

// PropertyService handles catalog reads for the public site and
// catalog mutations for the dashboard.
type PropertyService struct {
	repo          *repository.PostgresRepository
	trending      *cache.TrendingCache
	logger        *slog.Logger
	trendingLimit int
	similarLimit  int
}

// NewPropertyService creates a new property service
func NewPropertyService(
	repo *repository.PostgresRepository,
	trending *cache.TrendingCache,
	logger *slog.Logger,
	trendingLimit, similarLimit int,
) *PropertyService {
	return &PropertyService{
		repo:          repo,
		trending:      trending,
		logger:        logger.With("component", "property_service"),
		trendingLimit: trendingLimit,
		similarLimit:  similarLimit,
	}
}

// List returns the catalog filtered, sorted and truncated per the
// criteria. An empty result is a first-class outcome, not an error.
func (s *PropertyService) List(ctx context.Context, c query.Criteria) ([]model.Property, error) {
	return s.repo.ListProperties(ctx, c)
}

// Get returns one property or ErrNotFound
func (s *PropertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	p, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Similar returns up to similarLimit records of the same type,
// excluding the record itself.
func (s *PropertyService) Similar(ctx context.Context, id string) ([]model.Property, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.ListProperties(ctx, query.Criteria{
		Type:    p.Type,
		Exclude: p.ID,
		Limit:   s.similarLimit,
	})
}

// Trending returns the featured-projects carousel, read through the
// Redis cache when one is configured.
func (s *PropertyService) Trending(ctx context.Context) ([]model.Property, error) {
	if cached, ok := s.trending.Get(ctx); ok {
		return cached, nil
	}
	properties, err := s.repo.ListProperties(ctx, query.Criteria{
		Featured: true,
		Limit:    s.trendingLimit,
	})
	if err != nil {
		return nil, err
	}
	s.trending.Set(ctx, properties)
	return properties, nil
}

// Create inserts a catalog record and logs the mutation
func (s *PropertyService) Create(ctx context.Context, p *model.Property, actor string) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PriceValue < 0 || p.SqftValue < 0 || p.Beds < 0 || p.Baths < 0 {
		return fmt.Errorf("%w: numeric fields must be non-negative", ErrInvalidInput)
	}
	if err := s.repo.CreateProperty(ctx, p); err != nil {
		return err
	}
	s.trending.Invalidate(ctx)
	s.recordActivity(ctx, actor, "create", p.ID)
	return nil
}

// Update replaces a catalog record and logs the mutation
func (s *PropertyService) Update(ctx context.Context, p *model.Property, actor string) error {
	if p.PriceValue < 0 || p.SqftValue < 0 || p.Beds < 0 || p.Baths < 0 {
		return fmt.Errorf("%w: numeric fields must be non-negative", ErrInvalidInput)
	}
	found, err := s.repo.UpdateProperty(ctx, p)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	s.trending.Invalidate(ctx)
	s.recordActivity(ctx, actor, "update", p.ID)
	return nil
}

// Delete removes a catalog record and logs the mutation
func (s *PropertyService) Delete(ctx context.Context, id, actor string) error {
	found, err := s.repo.DeleteProperty(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	s.trending.Invalidate(ctx)
	s.recordActivity(ctx, actor, "delete", id)
	return nil
}

// recordActivity logs a dashboard mutation; a failed log entry is
// reported but never fails the mutation itself.
func (s *PropertyService) recordActivity(ctx context.Context, actor, action, entityID string) {
	entry := &model.ActivityEntry{
		ID:       uuid.NewString(),
		Actor:    actor,
		Action:   action,
		Entity:   "property",
		EntityID: entityID,
	}
	if err := s.repo.RecordActivity(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity", "action", action, "entity_id", entityID, "error", err)
	}
}
