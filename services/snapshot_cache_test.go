package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTrips = []types.Trip{
	{TripID: "t1", Destination: "Lisbon", StartDate: "2024-07-01", EndDate: "2024-07-08"},
	{TripID: "t2", Destination: "Kyoto", StartDate: "2024-05-01", EndDate: "2024-05-10"},
}

func tripFetcher(trips []types.Trip, err error, calls *int) func(context.Context, string) ([]types.Trip, error) {
	return func(ctx context.Context, userID string) ([]types.Trip, error) {
		*calls++
		return trips, err
	}
}

func TestSnapshotCache_MissFetchesAndStores(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	encoded, err := json.Marshal(sampleTrips)
	require.NoError(t, err)

	mock.ExpectGet("snapshot:trips:user-1").RedisNil()
	mock.ExpectSet("snapshot:trips:user-1", encoded, 30*time.Second).SetVal("OK")

	cache := NewSnapshotCache(db, 30*time.Second)

	calls := 0
	trips, err := cache.Trips(context.Background(), "user-1", tripFetcher(sampleTrips, nil, &calls))
	require.NoError(t, err)
	assert.Equal(t, sampleTrips, trips)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotCache_HitSkipsFetch(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	encoded, err := json.Marshal(sampleTrips)
	require.NoError(t, err)

	mock.ExpectGet("snapshot:trips:user-1").SetVal(string(encoded))

	cache := NewSnapshotCache(db, 30*time.Second)

	calls := 0
	trips, err := cache.Trips(context.Background(), "user-1", tripFetcher(nil, errors.New("should not be called"), &calls))
	require.NoError(t, err)
	assert.Equal(t, sampleTrips, trips)
	assert.Equal(t, 0, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotCache_RedisErrorFallsThrough(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	mock.ExpectGet("snapshot:trips:user-1").SetErr(errors.New("redis unavailable"))

	cache := NewSnapshotCache(db, 30*time.Second)

	calls := 0
	trips, err := cache.Trips(context.Background(), "user-1", tripFetcher(sampleTrips, nil, &calls))
	require.NoError(t, err)
	assert.Equal(t, sampleTrips, trips)
	assert.Equal(t, 1, calls)
}

func TestSnapshotCache_CorruptEntryFallsThrough(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	mock.ExpectGet("snapshot:trips:user-1").SetVal("{not json")

	cache := NewSnapshotCache(db, 30*time.Second)

	calls := 0
	trips, err := cache.Trips(context.Background(), "user-1", tripFetcher(sampleTrips, nil, &calls))
	require.NoError(t, err)
	assert.Equal(t, sampleTrips, trips)
	assert.Equal(t, 1, calls)
}

func TestSnapshotCache_NilCacheAlwaysFetches(t *testing.T) {
	var cache *SnapshotCache

	calls := 0
	trips, err := cache.Trips(context.Background(), "user-1", tripFetcher(sampleTrips, nil, &calls))
	require.NoError(t, err)
	assert.Equal(t, sampleTrips, trips)
	assert.Equal(t, 1, calls)

	// Invalidate on a nil cache is a no-op rather than a panic.
	cache.Invalidate(context.Background(), "user-1")
}

func TestSnapshotCache_Invalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	mock.ExpectDel("snapshot:trips:user-1", "snapshot:expenses:user-1").SetVal(2)

	cache := NewSnapshotCache(db, 30*time.Second)
	cache.Invalidate(context.Background(), "user-1")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotCache_Expenses(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	expenses := []types.Expense{{ExpenseID: "e1", Amount: 30, Category: "Food"}}
	encoded, err := json.Marshal(expenses)
	require.NoError(t, err)

	mock.ExpectGet("snapshot:expenses:user-1").RedisNil()
	mock.ExpectSet("snapshot:expenses:user-1", encoded, time.Minute).SetVal("OK")

	cache := NewSnapshotCache(db, time.Minute)

	got, err := cache.Expenses(context.Background(), "user-1",
		func(ctx context.Context, userID string) ([]types.Expense, error) {
			return expenses, nil
		})
	require.NoError(t, err)
	assert.Equal(t, expenses, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
