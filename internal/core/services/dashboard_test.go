// internal/core/services/dashboard_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/labsuite/labstock/internal/adapters/redis_adapter"
	"github.com/labsuite/labstock/internal/adapters/rest"
	"github.com/labsuite/labstock/internal/core/ports"
	"github.com/labsuite/labstock/internal/core/services"
	"github.com/labsuite/labstock/test/helpers"
	"github.com/labsuite/labstock/test/mocks"
)

func newDashboardService(t *testing.T) (*services.DashboardService, *mocks.MockComponentService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockComponentService(ctrl)
	tr := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(tr.Client, time.Minute, helpers.TestLogger())
	svc := services.NewDashboardService(mockService, cache, helpers.TestLogger())
	return svc, mockService
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("caches_after_first_load", func(t *testing.T) {
		svc, mockService := newDashboardService(t)

		stats := &ports.InventoryStats{
			TotalComponents: 120,
			TotalValue:      decimal.NewFromFloat(1543.20),
			LowStockCount:   7,
			OutOfStockCount: 2,
			CategoryCounts:  map[string]int64{"chemical": 40, "glassware": 80},
		}
		mockService.EXPECT().Stats(gomock.Any()).Return(stats, nil).Times(1)

		first, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(120), first.TotalComponents)
		assert.True(t, stats.TotalValue.Equal(first.TotalValue))

		second, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.TotalComponents, second.TotalComponents)
		assert.Equal(t, first.CategoryCounts, second.CategoryCounts)
	})

	t.Run("backend_failure_propagates", func(t *testing.T) {
		svc, mockService := newDashboardService(t)

		mockService.EXPECT().
			Stats(gomock.Any()).
			Return(nil, &rest.ServiceError{StatusCode: 500, Message: "stats unavailable"})

		_, err := svc.Stats(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stats unavailable")
	})
}

func TestDashboardService_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("categories_cached_independently_of_locations", func(t *testing.T) {
		svc, mockService := newDashboardService(t)

		mockService.EXPECT().Categories(gomock.Any()).Return([]string{"chemical", "reagent"}, nil).Times(1)
		mockService.EXPECT().Locations(gomock.Any()).Return([]string{"Shelf A3"}, nil).Times(1)

		categories, err := svc.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"chemical", "reagent"}, categories)

		locations, err := svc.Locations(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Shelf A3"}, locations)

		// Both served from cache now.
		_, err = svc.Categories(ctx)
		require.NoError(t, err)
		_, err = svc.Locations(ctx)
		require.NoError(t, err)
	})
}

func TestDashboardService_LowStock(t *testing.T) {
	ctx := context.Background()
	svc, mockService := newDashboardService(t)

	low := helpers.CreateTestComponents(2)
	mockService.EXPECT().LowStock(gomock.Any()).Return(low, nil).Times(2)

	first, err := svc.LowStock(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	// Deliberately uncached: every call hits the backend.
	_, err = svc.LowStock(ctx)
	require.NoError(t, err)
}

func TestDashboardService_Invalidate(t *testing.T) {
	ctx := context.Background()
	svc, mockService := newDashboardService(t)

	stats := &ports.InventoryStats{TotalComponents: 10}
	mockService.EXPECT().Stats(gomock.Any()).Return(stats, nil).Times(2)

	_, err := svc.Stats(ctx)
	require.NoError(t, err)

	svc.Invalidate(ctx)

	// The dropped key forces a fresh backend load.
	_, err = svc.Stats(ctx)
	require.NoError(t, err)
}
