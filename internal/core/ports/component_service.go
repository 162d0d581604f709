// internal/core/ports/component_service.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/labsuite/labstock/internal/core/domain"
)

// ComponentService is the port to the remote component service. It is
// implemented by the REST adapter; the collection store is its only
// caller on the mutation side.
type ComponentService interface {
	List(ctx context.Context, criteria domain.ListCriteria, page domain.Pagination) (*ListResult, error)
	Get(ctx context.Context, id string) (*domain.Component, error)
	Create(ctx context.Context, c *domain.Component) (*domain.Component, error)
	Update(ctx context.Context, id string, c *domain.Component) (*domain.Component, error)
	UpdateQuantity(ctx context.Context, id string, q domain.QuantityUpdate) (*domain.Component, error)
	Delete(ctx context.Context, id string) error

	Categories(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
	LowStock(ctx context.Context) ([]*domain.Component, error)
	Stats(ctx context.Context) (*InventoryStats, error)
}

// ListResult is one page of the remote collection plus server-reported
// totals.
type ListResult struct {
	Components  []*domain.Component `json:"components"`
	CurrentPage int                 `json:"currentPage"`
	TotalPages  int                 `json:"totalPages"`
	Total       int64               `json:"total"`
}

// InventoryStats mirrors the server-aggregated dashboard figures.
type InventoryStats struct {
	TotalComponents int64            `json:"total_components"`
	TotalValue      decimal.Decimal  `json:"total_value"`
	LowStockCount   int64            `json:"low_stock_count"`
	OutOfStockCount int64            `json:"out_of_stock_count"`
	CategoryCounts  map[string]int64 `json:"category_counts"`
}
