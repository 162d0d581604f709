// internal/core/services/dashboard.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	redis_a "github.com/labsuite/labstock/internal/adapters/redis_adapter"
	"github.com/labsuite/labstock/internal/core/domain"
	"github.com/labsuite/labstock/internal/core/ports"
)

// Lookup data and aggregates change rarely next to the component list, so
// they are cached for a short window.
const (
	statsTTL  = 30 * time.Second
	lookupTTL = 5 * time.Minute
)

// DashboardService serves the aggregated dashboard figures and the lookup
// lists (categories, locations) the filter bar is populated from. Reads
// go through the cache; the remote service is the source of truth.
type DashboardService struct {
	service ports.ComponentService
	cache   ports.CacheRepository
	logger  *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(service ports.ComponentService, cache ports.CacheRepository, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		service: service,
		cache:   cache,
		logger:  logger.With(slog.String("service", "dashboard")),
	}
}

// Stats returns the server-aggregated inventory statistics.
func (s *DashboardService) Stats(ctx context.Context) (*ports.InventoryStats, error) {
	var stats ports.InventoryStats
	key := redis_a.BuildKey(redis_a.PrefixDashboard, "stats")
	err := s.cache.GetOrSet(ctx, key, &stats, func() (interface{}, error) {
		return s.service.Stats(ctx)
	}, statsTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory stats: %w", err)
	}
	return &stats, nil
}

// LowStock returns the components at or below their critical-low
// threshold. Not cached: it backs the alert badge and staleness there is
// worse than an extra round trip.
func (s *DashboardService) LowStock(ctx context.Context) ([]*domain.Component, error) {
	components, err := s.service.LowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load low-stock components: %w", err)
	}
	s.logger.DebugContext(ctx, "low-stock components loaded",
		slog.Int("count", len(components)))
	return components, nil
}

// Categories returns the open category set for the filter bar.
func (s *DashboardService) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	key := redis_a.BuildKey(redis_a.PrefixLookup, "categories")
	err := s.cache.GetOrSet(ctx, key, &categories, func() (interface{}, error) {
		return s.service.Categories(ctx)
	}, lookupTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}

// Locations returns the known storage locations for the filter bar.
func (s *DashboardService) Locations(ctx context.Context) ([]string, error) {
	var locations []string
	key := redis_a.BuildKey(redis_a.PrefixLookup, "locations")
	err := s.cache.GetOrSet(ctx, key, &locations, func() (interface{}, error) {
		return s.service.Locations(ctx)
	}, lookupTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	return locations, nil
}

// Invalidate drops cached dashboard figures after a mutation.
func (s *DashboardService) Invalidate(ctx context.Context) {
	key := redis_a.BuildKey(redis_a.PrefixDashboard, "stats")
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate dashboard cache",
			slog.String("error", err.Error()))
	}
}
