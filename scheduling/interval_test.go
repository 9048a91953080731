package scheduling

import (
	"testing"
	"time"

	"nailstudio-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationFor(t *testing.T) {
	assert.Equal(t, 3*time.Hour, DurationFor(3.0))
	assert.Equal(t, 6*time.Minute, DurationFor(0.1))
	assert.Equal(t, 90*time.Minute, DurationFor(1.5))
	assert.Equal(t, time.Duration(0), DurationFor(0))
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2023, time.August, 24, 0, 0, 0, 0, time.UTC)

	t.Run("HourMinute", func(t *testing.T) {
		ts, err := CombineDateTime(date, "10:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.August, 24, 10, 0, 0, 0, time.UTC), ts)
	})

	t.Run("WithSeconds", func(t *testing.T) {
		ts, err := CombineDateTime(date, "10:30:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.August, 24, 10, 30, 0, 0, time.UTC), ts)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := CombineDateTime(date, "25:99")
		assert.Error(t, err)
	})
}

func TestIntervalOf(t *testing.T) {
	date := time.Date(2023, time.August, 24, 0, 0, 0, 0, time.UTC)

	t.Run("SumsServiceDurations", func(t *testing.T) {
		entry := models.Entry{
			Date: date,
			Time: "10:00",
			Services: []models.Service{
				{Duration: 2.0},
				{Duration: 1.0},
			},
		}
		interval, err := IntervalOf(&entry)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.August, 24, 10, 0, 0, 0, time.UTC), interval.Start)
		assert.Equal(t, time.Date(2023, time.August, 24, 13, 0, 0, 0, time.UTC), interval.End)
	})

	t.Run("NoServicesIsInstant", func(t *testing.T) {
		entry := models.Entry{Date: date, Time: "10:00"}
		interval, err := IntervalOf(&entry)
		require.NoError(t, err)
		assert.True(t, interval.End.Equal(interval.Start))
	})

	t.Run("InvalidTime", func(t *testing.T) {
		entry := models.Entry{Date: date, Time: "noon"}
		_, err := IntervalOf(&entry)
		assert.Error(t, err)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	date := time.Date(2023, time.August, 24, 0, 0, 0, 0, time.UTC)
	at := func(hour int) time.Time { return date.Add(time.Duration(hour) * time.Hour) }

	a := Interval{Start: at(10), End: at(13)}

	assert.True(t, a.Overlaps(Interval{Start: at(11), End: at(12)}))
	assert.True(t, a.Overlaps(Interval{Start: at(9), End: at(11)}))
	assert.True(t, a.Overlaps(Interval{Start: at(12), End: at(15)}))

	// Touching at a boundary is not an overlap.
	assert.False(t, a.Overlaps(Interval{Start: at(13), End: at(14)}))
	assert.False(t, a.Overlaps(Interval{Start: at(8), End: at(10)}))
	assert.False(t, a.Overlaps(Interval{Start: at(14), End: at(15)}))
}
