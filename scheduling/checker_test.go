package scheduling

import (
	"context"
	"sort"
	"testing"
	"time"

	"nailstudio-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-memory Repository fixture.
type memoryRepo struct {
	entries []models.Entry
}

func (m *memoryRepo) EntriesOn(ctx context.Context, date time.Time, excludeID uuid.UUID) ([]models.Entry, error) {
	var out []models.Entry
	for _, entry := range m.entries {
		if !entry.Date.Equal(date) {
			continue
		}
		if excludeID != uuid.Nil && entry.ID == excludeID {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].CreatedOn.Before(out[j].CreatedOn)
	})
	return out, nil
}

var day = time.Date(2023, time.August, 24, 0, 0, 0, 0, time.UTC)

func bookedEntry(timeOfDay string, durations ...float64) models.Entry {
	entry := models.Entry{ID: uuid.New(), Date: day, Time: timeOfDay}
	for _, hours := range durations {
		entry.Services = append(entry.Services, models.Service{Duration: hours})
	}
	return entry
}

func TestCanAccept(t *testing.T) {
	ctx := context.Background()

	// Existing booking A occupies [10:00, 13:00).
	entryA := bookedEntry("10:00", 3.0)

	t.Run("RejectsStartInsidePreceding", func(t *testing.T) {
		checker := NewChecker(&memoryRepo{entries: []models.Entry{entryA}})
		candidate := bookedEntry("11:00", 1.0)
		candidate.ID = uuid.Nil

		ok, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("AcceptsFreeSlot", func(t *testing.T) {
		checker := NewChecker(&memoryRepo{entries: []models.Entry{entryA}})
		candidate := bookedEntry("14:00", 1.0)
		candidate.ID = uuid.Nil

		ok, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("AcceptsSlotTouchingBothNeighbors", func(t *testing.T) {
		entryC := bookedEntry("14:00", 1.0)
		checker := NewChecker(&memoryRepo{entries: []models.Entry{entryA, entryC}})
		candidate := bookedEntry("13:00", 1.0) // [13:00, 14:00)
		candidate.ID = uuid.Nil

		ok, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("AcceptsEndTouchingFollowingStart", func(t *testing.T) {
		checker := NewChecker(&memoryRepo{entries: []models.Entry{entryA}})
		candidate := bookedEntry("08:00", 2.0) // ends exactly at 10:00
		candidate.ID = uuid.Nil

		ok, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("RejectsRunningIntoFollowing", func(t *testing.T) {
		checker := NewChecker(&memoryRepo{entries: []models.Entry{entryA}})
		candidate := bookedEntry("09:00", 2.0) // [09:00, 11:00) overlaps A
		candidate.ID = uuid.Nil

		ok, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("UpdateNeverConflictsWithItself", func(t *testing.T) {
		checker := NewChecker(&memoryRepo{entries: []models.Entry{entryA}})
		candidate := entryA // same ID, unchanged time

		ok, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("RejectsEqualStart", func(t *testing.T) {
		checker := NewChecker(&memoryRepo{entries: []models.Entry{entryA}})
		candidate := bookedEntry("10:00", 0.5)
		candidate.ID = uuid.Nil

		ok, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ZeroDurationOnlyBlocksItsInstant", func(t *testing.T) {
		instant := bookedEntry("10:00") // no services, zero duration
		checker := NewChecker(&memoryRepo{entries: []models.Entry{instant}})

		// Starting at the zero-duration entry's instant is fine: its
		// interval has already "ended" when the candidate starts.
		candidate := bookedEntry("10:00", 1.0)
		candidate.ID = uuid.Nil
		ok, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		assert.True(t, ok)

		// But a running interval still swallows the instant.
		covering := bookedEntry("09:30", 1.0) // [09:30, 10:30) covers 10:00
		covering.ID = uuid.Nil
		ok, err = checker.CanAccept(ctx, &covering)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("EqualStartTiesCheckEveryEnd", func(t *testing.T) {
		// A zero-duration entry and a one-hour entry may legally share
		// the 10:00 start. The candidate must be rejected no matter
		// which of the two sorts last.
		tiePair := func(longFirst bool) []models.Entry {
			long := bookedEntry("10:00", 1.0)
			instant := bookedEntry("10:00")
			long.CreatedOn = day.Add(1 * time.Minute)
			instant.CreatedOn = day.Add(2 * time.Minute)
			if !longFirst {
				long.CreatedOn, instant.CreatedOn = instant.CreatedOn, long.CreatedOn
			}
			return []models.Entry{long, instant}
		}

		for name, entries := range map[string][]models.Entry{
			"LongSortsFirst": tiePair(true),
			"LongSortsLast":  tiePair(false),
		} {
			t.Run(name, func(t *testing.T) {
				checker := NewChecker(&memoryRepo{entries: entries})

				candidate := bookedEntry("10:00", 0.5)
				candidate.ID = uuid.Nil
				ok, err := checker.CanAccept(ctx, &candidate)
				require.NoError(t, err)
				assert.False(t, ok)

				after := bookedEntry("11:00", 0.5)
				after.ID = uuid.Nil
				ok, err = checker.CanAccept(ctx, &after)
				require.NoError(t, err)
				assert.True(t, ok)
			})
		}
	})

	t.Run("IdempotentDecision", func(t *testing.T) {
		checker := NewChecker(&memoryRepo{entries: []models.Entry{entryA}})
		candidate := bookedEntry("11:00", 1.0)
		candidate.ID = uuid.Nil

		first, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		second, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("OtherDatesNeverConflict", func(t *testing.T) {
		checker := NewChecker(&memoryRepo{entries: []models.Entry{entryA}})
		candidate := bookedEntry("10:00", 3.0)
		candidate.ID = uuid.Nil
		candidate.Date = day.AddDate(0, 0, 1)

		ok, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

// Accepted candidates keep the full day pairwise non-overlapping.
func TestNoOverlapInvariant(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	checker := NewChecker(repo)

	attempts := []struct {
		timeOfDay string
		duration  float64
	}{
		{"10:00", 3.0},
		{"11:00", 1.0}, // rejected, inside the first
		{"13:00", 1.0},
		{"09:00", 2.0}, // rejected, runs into 10:00
		{"08:00", 2.0},
		{"13:30", 0.5}, // rejected, inside [13:00, 14:00)
		{"14:00", 1.0},
	}

	for _, attempt := range attempts {
		candidate := bookedEntry(attempt.timeOfDay, attempt.duration)
		candidate.ID = uuid.Nil
		ok, err := checker.CanAccept(ctx, &candidate)
		require.NoError(t, err)
		if ok {
			candidate.ID = uuid.New()
			repo.entries = append(repo.entries, candidate)
		}
	}

	require.Len(t, repo.entries, 4)
	for i := range repo.entries {
		a, err := IntervalOf(&repo.entries[i])
		require.NoError(t, err)
		for j := i + 1; j < len(repo.entries); j++ {
			b, err := IntervalOf(&repo.entries[j])
			require.NoError(t, err)
			assert.False(t, a.Overlaps(b),
				"entries at %s and %s overlap", repo.entries[i].Time, repo.entries[j].Time)
		}
	}
}
