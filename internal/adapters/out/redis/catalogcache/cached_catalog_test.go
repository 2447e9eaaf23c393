package catalogcache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/adapters/out/redis/catalogcache"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) Tables(ctx context.Context, restaurantID kernel.UUID) ([]string, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogReader) Dishes(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*menu.Dish, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*menu.Dish), args.Error(1)
}

func (m *MockCatalogReader) Restaurant(ctx context.Context, id kernel.UUID) (ports.RestaurantSummary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.RestaurantSummary), args.Error(1)
}

const ttl = 90 * time.Second

func setup(t *testing.T) (*catalogcache.CachedCatalog, *MockCatalogReader, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	reader := &MockCatalogReader{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return catalogcache.New(reader, client, ttl, logger), reader, mr
}

func newDish(t *testing.T, restaurantID kernel.UUID, name string) *menu.Dish {
	t.Helper()
	small, err := menu.NewOption("small", 0)
	require.NoError(t, err)
	large, err := menu.NewOption("large", 500)
	require.NoError(t, err)
	size, err := menu.NewSpecificationGroup("size", []menu.Option{small, large})
	require.NoError(t, err)

	dish, err := menu.NewDish(menu.DishParams{
		ID:             kernel.NewUUID(),
		RestaurantID:   restaurantID,
		Name:           name,
		Price:          2500,
		Selling:        true,
		Specifications: []menu.SpecificationGroup{size},
		ImageURLs:      []string{"https://img.example/" + name + ".png"},
	})
	require.NoError(t, err)
	return dish
}

func TestTables_MissPopulatesThenHits(t *testing.T) {
	cache, reader, mr := setup(t)
	ctx := context.Background()
	restaurantID := kernel.NewUUID()
	reader.On("Tables", mock.Anything, restaurantID).Return([]string{"A1", "A2"}, nil).Once()

	first, err := cache.Tables(ctx, restaurantID)
	require.NoError(t, err)
	second, err := cache.Tables(ctx, restaurantID)
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "A2"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, ttl, mr.TTL("catalog:tables:"+restaurantID.String()))
	reader.AssertExpectations(t)
}

func TestTables_ReaderErrorIsNotCached(t *testing.T) {
	cache, reader, mr := setup(t)
	restaurantID := kernel.NewUUID()
	boom := errors.New("db down")
	reader.On("Tables", mock.Anything, restaurantID).Return(nil, boom).Once()

	_, err := cache.Tables(context.Background(), restaurantID)

	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("catalog:tables:"+restaurantID.String()))
}

func TestDishes_OnlyMissingAreLoaded(t *testing.T) {
	cache, reader, _ := setup(t)
	ctx := context.Background()
	restaurantID := kernel.NewUUID()
	noodles := newDish(t, restaurantID, "noodles")
	rice := newDish(t, restaurantID, "rice")

	reader.On("Dishes", mock.Anything, []kernel.UUID{noodles.ID()}).
		Return(map[kernel.UUID]*menu.Dish{noodles.ID(): noodles}, nil).Once()
	reader.On("Dishes", mock.Anything, []kernel.UUID{rice.ID()}).
		Return(map[kernel.UUID]*menu.Dish{rice.ID(): rice}, nil).Once()

	_, err := cache.Dishes(ctx, []kernel.UUID{noodles.ID()})
	require.NoError(t, err)

	dishes, err := cache.Dishes(ctx, []kernel.UUID{noodles.ID(), rice.ID()})
	require.NoError(t, err)

	require.Len(t, dishes, 2)
	cached := dishes[noodles.ID()]
	require.NotNil(t, cached)
	assert.Equal(t, "noodles", cached.Name())
	assert.Equal(t, restaurantID, cached.RestaurantID())
	assert.Equal(t, kernel.Money(2500), cached.Price())
	assert.True(t, cached.Selling())
	assert.Equal(t, []string{"https://img.example/noodles.png"}, cached.ImageURLs())
	require.Len(t, cached.Specifications(), 1)
	option, ok := cached.Specifications()[0].Option(1)
	require.True(t, ok)
	assert.Equal(t, "large", option.Name())
	assert.Equal(t, kernel.Money(500), option.Delta())
	reader.AssertExpectations(t)
}

func TestDishes_UnknownDishIsNotCached(t *testing.T) {
	cache, reader, mr := setup(t)
	unknown := kernel.NewUUID()
	reader.On("Dishes", mock.Anything, []kernel.UUID{unknown}).Return(map[kernel.UUID]*menu.Dish{}, nil).Twice()

	for i := 0; i < 2; i++ {
		dishes, err := cache.Dishes(context.Background(), []kernel.UUID{unknown})
		require.NoError(t, err)
		assert.Empty(t, dishes)
	}

	assert.False(t, mr.Exists("catalog:dish:"+unknown.String()))
	reader.AssertExpectations(t)
}

func TestDishes_EmptyRequestSkipsEverything(t *testing.T) {
	cache, reader, _ := setup(t)

	dishes, err := cache.Dishes(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, dishes)
	reader.AssertNotCalled(t, "Dishes", mock.Anything, mock.Anything)
}

func TestRestaurant_MissPopulatesThenHits(t *testing.T) {
	cache, reader, _ := setup(t)
	ctx := context.Background()
	summary := ports.RestaurantSummary{ID: kernel.NewUUID(), Name: "Noodle Bar", Phone: "555-0100"}
	reader.On("Restaurant", mock.Anything, summary.ID).Return(summary, nil).Once()

	first, err := cache.Restaurant(ctx, summary.ID)
	require.NoError(t, err)
	second, err := cache.Restaurant(ctx, summary.ID)
	require.NoError(t, err)

	assert.Equal(t, summary, first)
	assert.Equal(t, summary, second)
	reader.AssertExpectations(t)
}

func TestRestaurant_NotFoundPassesThrough(t *testing.T) {
	cache, reader, _ := setup(t)
	id := kernel.NewUUID()
	reader.On("Restaurant", mock.Anything, id).
		Return(ports.RestaurantSummary{}, errs.NewObjectNotFoundError("restaurant", id)).Once()

	_, err := cache.Restaurant(context.Background(), id)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCorruptEntryFallsBackAndRepairs(t *testing.T) {
	cache, reader, mr := setup(t)
	restaurantID := kernel.NewUUID()
	key := "catalog:tables:" + restaurantID.String()
	require.NoError(t, mr.Set(key, "{not json"))
	reader.On("Tables", mock.Anything, restaurantID).Return([]string{"A1"}, nil).Once()

	tables, err := cache.Tables(context.Background(), restaurantID)

	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, tables)
	stored, err := mr.Get(key)
	require.NoError(t, err)
	assert.JSONEq(t, `["A1"]`, stored)
}

func TestRedisUnavailableFallsBackToReader(t *testing.T) {
	cache, reader, mr := setup(t)
	ctx := context.Background()
	restaurantID := kernel.NewUUID()
	dish := newDish(t, restaurantID, "noodles")
	mr.Close()

	reader.On("Tables", mock.Anything, restaurantID).Return([]string{"A1"}, nil).Once()
	reader.On("Dishes", mock.Anything, []kernel.UUID{dish.ID()}).
		Return(map[kernel.UUID]*menu.Dish{dish.ID(): dish}, nil).Once()

	tables, err := cache.Tables(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, tables)

	dishes, err := cache.Dishes(ctx, []kernel.UUID{dish.ID()})
	require.NoError(t, err)
	assert.Same(t, dish, dishes[dish.ID()])
	reader.AssertExpectations(t)
}

func TestForget(t *testing.T) {
	cache, reader, _ := setup(t)
	ctx := context.Background()
	restaurantID := kernel.NewUUID()
	reader.On("Tables", mock.Anything, restaurantID).Return([]string{"A1"}, nil).Once()
	reader.On("Tables", mock.Anything, restaurantID).Return([]string{"A1", "B1"}, nil).Once()

	_, err := cache.Tables(ctx, restaurantID)
	require.NoError(t, err)
	require.NoError(t, cache.Forget(ctx, restaurantID))

	tables, err := cache.Tables(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B1"}, tables)
	reader.AssertExpectations(t)
}

func TestNew_NonPositiveTTLUsesDefault(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	reader := &MockCatalogReader{}
	restaurantID := kernel.NewUUID()
	reader.On("Tables", mock.Anything, restaurantID).Return([]string{"A1"}, nil).Once()

	cache := catalogcache.New(reader, client, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := cache.Tables(context.Background(), restaurantID)

	require.NoError(t, err)
	assert.Equal(t, catalogcache.DefaultTTL, mr.TTL("catalog:tables:"+restaurantID.String()))
}
