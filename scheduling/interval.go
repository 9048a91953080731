package scheduling

import (
	"fmt"
	"math"
	"time"

	"nailstudio-backend/models"
)

// Layouts accepted for an entry's time-of-day, as submitted or as read back
// from a time column.
var timeLayouts = []string{"15:04:05", "15:04"}

// DurationFor converts decimal hours into a time.Duration, rounded to the
// nearest minute so one-decimal service durations stay exact.
func DurationFor(hours float64) time.Duration {
	return time.Duration(math.Round(hours*60)) * time.Minute
}

// CombineDateTime merges a calendar date and a time-of-day string into a
// single orderable timestamp in the date's location.
func CombineDateTime(date time.Time, timeOfDay string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, timeOfDay); err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, date.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time of day %q", timeOfDay)
}

// Interval is the half-open time range [Start, End) an entry occupies.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Intervals that
// only touch at a boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// IntervalOf derives an entry's interval from its date, time and the summed
// duration of its services. It is a pure function of the entry's current
// field values and must be recomputed after any change to them.
func IntervalOf(entry *models.Entry) (Interval, error) {
	start, err := CombineDateTime(entry.Date, entry.Time)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: start.Add(DurationFor(entry.TotalDuration()))}, nil
}
