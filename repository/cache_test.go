package repository

import (
	"context"
	"testing"
	"time"

	"nailstudio-backend/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewScheduleCache(client, time.Minute)

	date := time.Date(2023, time.August, 24, 0, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		{
			ID:   uuid.New(),
			Date: date,
			Time: "10:00",
			Services: []models.Service{
				{ID: 1, Name: "Manicure", Duration: 1.5},
			},
		},
		{ID: uuid.New(), Date: date, Time: "14:00"},
	}

	t.Run("MissBeforeSet", func(t *testing.T) {
		_, ok := cache.Get(ctx, date)
		assert.False(t, ok)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		cache.Set(ctx, date, entries)

		got, ok := cache.Get(ctx, date)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, entries[0].ID, got[0].ID)
		assert.Equal(t, "10:00", got[0].Time)
		require.Len(t, got[0].Services, 1)
		assert.Equal(t, 1.5, got[0].Services[0].Duration)
		assert.True(t, got[1].Date.Equal(date))
	})

	t.Run("Invalidate", func(t *testing.T) {
		cache.Set(ctx, date, entries)
		cache.Invalidate(ctx, date)

		_, ok := cache.Get(ctx, date)
		assert.False(t, ok)
	})

	t.Run("ExpiresWithTTL", func(t *testing.T) {
		cache.Set(ctx, date, entries)
		mr.FastForward(2 * time.Minute)

		_, ok := cache.Get(ctx, date)
		assert.False(t, ok)
	})

	t.Run("DatesAreIndependent", func(t *testing.T) {
		cache.Set(ctx, date, entries)

		_, ok := cache.Get(ctx, date.AddDate(0, 0, 1))
		assert.False(t, ok)
	})
}

func TestScheduleCacheDisabled(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2023, time.August, 24, 0, 0, 0, 0, time.UTC)

	// A nil client disables caching without errors.
	cache := NewScheduleCache(nil, time.Minute)
	cache.Set(ctx, date, []models.Entry{{ID: uuid.New()}})
	_, ok := cache.Get(ctx, date)
	assert.False(t, ok)
	cache.Invalidate(ctx, date)
}
