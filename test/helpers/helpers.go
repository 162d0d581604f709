// test/helpers/helpers.go
package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/labsuite/labstock/internal/core/domain"
	"github.com/labsuite/labstock/internal/core/ports"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// SetupTestRedis starts an in-process Redis for cache tests.
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	server, err := miniredis.Run()
	require.NoError(t, err, "Could not start miniredis")

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() {
		client.Close()
		server.Close()
	})

	return &TestRedis{Client: client, Server: server}
}

// CreateTestComponent builds a valid component, applying any overrides.
func CreateTestComponent(overrides ...func(*domain.Component)) *domain.Component {
	c := &domain.Component{
		ID:           uuid.NewString(),
		Name:         "Sodium Chloride",
		PartNumber:   "NaCl-500",
		Category:     domain.CategoryChemical,
		Description:  "Reagent grade, 500 g",
		Manufacturer: "Labchem",
		Supplier:     "SciSupply",
		DatasheetURL: "https://example.com/nacl.pdf",
		Quantity:     20,
		Unit:         "g",
		UnitPrice:    decimal.NewFromFloat(12.50),
		Location:     "Shelf A3",
		MinStock:     10,
		CriticalLow:  5,
		Tags:         []string{"salts"},
		CreatedAt:    time.Now().Add(-24 * time.Hour),
		UpdatedAt:    time.Now(),
	}
	for _, override := range overrides {
		override(c)
	}
	return c
}

// CreateTestComponents builds count distinct valid components.
func CreateTestComponents(count int) []*domain.Component {
	components := make([]*domain.Component, count)
	for i := 0; i < count; i++ {
		n := i
		components[i] = CreateTestComponent(func(c *domain.Component) {
			c.ID = uuid.NewString()
			c.Name = fmt.Sprintf("Component %d", n)
			c.PartNumber = fmt.Sprintf("PN-%04d", n)
		})
	}
	return components
}

// ListResultFor wraps components in a single-page list result.
func ListResultFor(components []*domain.Component) *ports.ListResult {
	return &ports.ListResult{
		Components:  components,
		CurrentPage: 1,
		TotalPages:  1,
		Total:       int64(len(components)),
	}
}
