// internal/handlers/dashboard_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	"github.com/labsuite/labstock/internal/handlers"
	"github.com/labsuite/labstock/test/helpers"
	"github.com/labsuite/labstock/test/mocks"
)

func newDashboardHandler(t *testing.T) (*handlers.DashboardHandler, *mocks.MockComponentService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockComponentService(ctrl)
	tr := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(tr.Client, time.Minute, helpers.TestLogger())
	svc := services.NewDashboardService(mockService, cache, helpers.TestLogger())
	return handlers.NewDashboardHandler(svc, helpers.TestLogger()), mockService
}

func TestDashboardHandler_Stats(t *testing.T) {
	t.Run("returns_aggregates", func(t *testing.T) {
		h, mockService := newDashboardHandler(t)

		mockService.EXPECT().Stats(gomock.Any()).Return(&ports.InventoryStats{
			TotalComponents: 42,
			TotalValue:      decimal.NewFromFloat(987.65),
			LowStockCount:   3,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
		rec := httptest.NewRecorder()
		h.Stats(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var stats ports.InventoryStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, int64(42), stats.TotalComponents)
		assert.Equal(t, int64(3), stats.LowStockCount)
	})

	t.Run("backend_failure_is_bad_gateway", func(t *testing.T) {
		h, mockService := newDashboardHandler(t)

		mockService.EXPECT().
			Stats(gomock.Any()).
			Return(nil, &rest.ServiceError{StatusCode: 500, Message: "stats down"})

		req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
		rec := httptest.NewRecorder()
		h.Stats(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestDashboardHandler_LowStock(t *testing.T) {
	h, mockService := newDashboardHandler(t)

	mockService.EXPECT().LowStock(gomock.Any()).Return(helpers.CreateTestComponents(2), nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/low-stock", nil)
	rec := httptest.NewRecorder()
	h.LowStock(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var components []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &components))
	assert.Len(t, components, 2)
}

func TestDashboardHandler_Lookups(t *testing.T) {
	h, mockService := newDashboardHandler(t)

	mockService.EXPECT().Categories(gomock.Any()).Return([]string{"chemical", "safety"}, nil)
	mockService.EXPECT().Locations(gomock.Any()).Return([]string{"Shelf A3"}, nil)

	rec := httptest.NewRecorder()
	h.Categories(rec, httptest.NewRequest(http.MethodGet, "/lookups/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Equal(t, []string{"chemical", "safety"}, categories)

	rec = httptest.NewRecorder()
	h.Locations(rec, httptest.NewRequest(http.MethodGet, "/lookups/locations", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var locations []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &locations))
	assert.Equal(t, []string{"Shelf A3"}, locations)
}
