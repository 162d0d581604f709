// internal/adapters/redis_adapter/cache_test.go
package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/labsuite/labstock/internal/adapters/redis_adapter"
	"github.com/labsuite/labstock/internal/core/domain"
	"github.com/labsuite/labstock/internal/core/ports"
	"github.com/labsuite/labstock/test/helpers"
)

func newTestCache(t *testing.T) (*helpers.TestRedis, ports.CacheRepository) {
	t.Helper()
	tr := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(tr.Client, time.Minute, helpers.TestLogger())
	return tr, cache
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "dash:stats", redis_a.BuildKey(redis_a.PrefixDashboard, "stats"))
	assert.Equal(t, "lookup:categories:v2", redis_a.BuildKey(redis_a.PrefixLookup, "categories", "v2"))
}

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	_, cache := newTestCache(t)

	component := helpers.CreateTestComponent()
	require.NoError(t, cache.Set(ctx, "comp:one", component))

	var got domain.Component
	require.NoError(t, cache.Get(ctx, "comp:one", &got))
	assert.Equal(t, component.ID, got.ID)
	assert.Equal(t, component.Name, got.Name)
	assert.True(t, component.UnitPrice.Equal(got.UnitPrice))
}

func TestCache_GetMiss(t *testing.T) {
	_, cache := newTestCache(t)

	var got domain.Component
	err := cache.Get(context.Background(), "comp:absent", &got)
	require.Error(t, err)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	tr, cache := newTestCache(t)

	require.NoError(t, cache.SetWithTTL(ctx, "comp:short", "value", 5*time.Second))

	tr.Server.FastForward(6 * time.Second)

	var got string
	err := cache.Get(ctx, "comp:short", &got)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_Delete(t *testing.T) {
	ctx := context.Background()
	_, cache := newTestCache(t)

	require.NoError(t, cache.Set(ctx, "a", 1))
	require.NoError(t, cache.Set(ctx, "b", 2))
	require.NoError(t, cache.Delete(ctx, "a", "b"))

	var got int
	assert.ErrorIs(t, cache.Get(ctx, "a", &got), redis_a.ErrCacheMiss)
	assert.ErrorIs(t, cache.Get(ctx, "b", &got), redis_a.ErrCacheMiss)

	assert.NoError(t, cache.Delete(ctx), "deleting nothing is a no-op")
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	_, cache := newTestCache(t)

	require.NoError(t, cache.Set(ctx, "dash:stats", 1))
	require.NoError(t, cache.Set(ctx, "dash:low_stock", 2))
	require.NoError(t, cache.Set(ctx, "lookup:categories", 3))

	require.NoError(t, cache.DeletePattern(ctx, "dash:*"))

	var got int
	assert.ErrorIs(t, cache.Get(ctx, "dash:stats", &got), redis_a.ErrCacheMiss)
	assert.ErrorIs(t, cache.Get(ctx, "dash:low_stock", &got), redis_a.ErrCacheMiss)
	assert.NoError(t, cache.Get(ctx, "lookup:categories", &got), "non-matching keys survive")
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()

	t.Run("miss_invokes_fetch_and_populates", func(t *testing.T) {
		_, cache := newTestCache(t)
		calls := 0
		fetch := func() (interface{}, error) {
			calls++
			return []string{"chemical", "reagent"}, nil
		}

		var first []string
		require.NoError(t, cache.GetOrSet(ctx, "lookup:categories", &first, fetch, time.Minute))
		assert.Equal(t, []string{"chemical", "reagent"}, first)
		assert.Equal(t, 1, calls)

		var second []string
		require.NoError(t, cache.GetOrSet(ctx, "lookup:categories", &second, fetch, time.Minute))
		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls, "hit must not invoke fetch again")
	})

	t.Run("fetch_error_propagates", func(t *testing.T) {
		_, cache := newTestCache(t)
		fetchErr := errors.New("backend down")

		var dest []string
		err := cache.GetOrSet(ctx, "lookup:locations", &dest, func() (interface{}, error) {
			return nil, fetchErr
		}, time.Minute)
		assert.ErrorIs(t, err, fetchErr)
	})
}

func TestCache_Ping(t *testing.T) {
	tr, cache := newTestCache(t)
	assert.NoError(t, cache.Ping(context.Background()))

	tr.Server.Close()
	assert.Error(t, cache.Ping(context.Background()))
}
