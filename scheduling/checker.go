package scheduling

import (
	"context"
	"time"

	"nailstudio-backend/models"

	"github.com/google/uuid"
)

// Repository supplies the existing entries the checker compares against.
type Repository interface {
	// EntriesOn returns all entries on the given date ordered by start time
	// ascending (equal starts broken deterministically), with services
	// preloaded. Entries matching excludeID are omitted so an update never
	// competes with its own persisted state.
	EntriesOn(ctx context.Context, date time.Time, excludeID uuid.UUID) ([]models.Entry, error)
}

// Checker decides whether a candidate entry may coexist with the entries
// already booked on its date. The salon runs a single shared timeline, so at
// most one entry can be in progress at any moment.
type Checker struct {
	repo Repository
}

func NewChecker(repo Repository) *Checker {
	return &Checker{repo: repo}
}

// CanAccept reports whether the candidate's interval is free on its date.
// The candidate's own ID (set on update, zero on create) is excluded from
// the comparison set.
//
// Existing entries are pairwise non-overlapping, an invariant this checker
// itself maintains, so almost all of the day is irrelevant: every entry
// starting at or before the candidate must have finished by the candidate's
// start, and the earliest entry starting after it must not begin before the
// candidate finishes. The preceding side compares against the latest end
// rather than a single nearest entry because a zero-duration entry may
// legally share a start time with a longer one, and which of the two the
// repository returns last is not specified.
func (c *Checker) CanAccept(ctx context.Context, candidate *models.Entry) (bool, error) {
	interval, err := IntervalOf(candidate)
	if err != nil {
		return false, err
	}

	entries, err := c.repo.EntriesOn(ctx, candidate.Date, candidate.ID)
	if err != nil {
		return false, err
	}

	var following *models.Entry
	var latestEnd time.Time
	for i := range entries {
		start, err := CombineDateTime(entries[i].Date, entries[i].Time)
		if err != nil {
			return false, err
		}
		if start.After(interval.Start) {
			following = &entries[i]
			break
		}
		prev, err := IntervalOf(&entries[i])
		if err != nil {
			return false, err
		}
		if prev.End.After(latestEnd) {
			latestEnd = prev.End
		}
	}

	if latestEnd.After(interval.Start) {
		return false, nil
	}

	if following != nil {
		next, err := IntervalOf(following)
		if err != nil {
			return false, err
		}
		if next.Start.Before(interval.End) {
			return false, nil
		}
	}

	return true, nil
}
