package repository

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"nailstudio-backend/models"
	"nailstudio-backend/scheduling"
	"nailstudio-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryRepository persists entries and answers the day-schedule queries the
// conflict checker needs. Reads of a full day go through the Redis cache
// when one is configured.
type EntryRepository struct {
	db    *gorm.DB
	cache *ScheduleCache
}

func NewEntryRepository(db *gorm.DB, cache *ScheduleCache) *EntryRepository {
	return &EntryRepository{db: db, cache: cache}
}

// EntriesOn implements scheduling.Repository: all entries on the date,
// ordered by start time with creation time as the tie breaker, services
// preloaded, excludeID omitted.
func (r *EntryRepository) EntriesOn(ctx context.Context, date time.Time, excludeID uuid.UUID) ([]models.Entry, error) {
	query := r.db.WithContext(ctx).
		Preload("Services").
		Where("date = ?", date.Format(utils.DateLayout)).
		Order("time, created_on")
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var entries []models.Entry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("load entries for %s: %w", date.Format(utils.DateLayout), err)
	}
	return entries, nil
}

// Schedule returns the full day schedule, served from cache when possible.
func (r *EntryRepository) Schedule(ctx context.Context, date time.Time) ([]models.Entry, error) {
	if entries, ok := r.cache.Get(ctx, date); ok {
		return entries, nil
	}
	entries, err := r.EntriesOn(ctx, date, uuid.Nil)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, date, entries)
	return entries, nil
}

// Reserve atomically re-checks the slot and persists the entry. A per-date
// advisory lock serializes concurrent bookings for the same date, so two
// requests for overlapping intervals cannot both pass the check. An entry
// with a non-zero ID is treated as an update and excluded from its own
// comparison set.
func (r *EntryRepository) Reserve(ctx context.Context, entry *models.Entry) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", dateLockKey(entry.Date)).Error; err != nil {
			return fmt.Errorf("acquire date lock: %w", err)
		}

		checker := scheduling.NewChecker(&EntryRepository{db: tx, cache: r.cache})
		ok, err := checker.CanAccept(ctx, entry)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSlotConflict
		}

		if entry.ID == uuid.Nil {
			return tx.Create(entry).Error
		}
		if err := tx.Omit("Services").Save(entry).Error; err != nil {
			return err
		}
		return tx.Model(entry).Association("Services").Replace(entry.Services)
	})
	if err != nil {
		return err
	}
	r.cache.Invalidate(ctx, entry.Date)
	return nil
}

// InvalidateDay drops a cached day schedule. Callers use it when an update
// moves an entry off its previous date.
func (r *EntryRepository) InvalidateDay(ctx context.Context, date time.Time) {
	r.cache.Invalidate(ctx, date)
}

// Delete removes an entry and its service associations. Deletion never
// conflicts with anything.
func (r *EntryRepository) Delete(ctx context.Context, entry *models.Entry) error {
	if err := r.db.WithContext(ctx).Select(clause.Associations).Delete(entry).Error; err != nil {
		return fmt.Errorf("delete entry %s: %w", entry.ID, err)
	}
	r.cache.Invalidate(ctx, entry.Date)
	return nil
}

// dateLockKey maps a calendar date onto a 64-bit advisory lock key.
func dateLockKey(date time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte("entries:" + date.Format(utils.DateLayout)))
	return int64(h.Sum64())
}
