package repository

import (
	"context"
	"encoding/json"
	"time"

	"nailstudio-backend/models"
	"nailstudio-backend/utils"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ScheduleCache keeps the ordered entry list of a single date in Redis. It
// is best effort: any cache failure falls back to the database and is only
// logged at debug level. A nil client disables caching.
type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScheduleCache(client *redis.Client, ttl time.Duration) *ScheduleCache {
	return &ScheduleCache{client: client, ttl: ttl}
}

func scheduleKey(date time.Time) string {
	return "schedule:" + date.Format(utils.DateLayout)
}

func (c *ScheduleCache) Get(ctx context.Context, date time.Time) ([]models.Entry, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, scheduleKey(date)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Debug().Err(err).Str("key", scheduleKey(date)).Msg("schedule cache get failed")
		return nil, false
	}

	var entries []models.Entry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		log.Debug().Err(err).Str("key", scheduleKey(date)).Msg("schedule cache unmarshal failed")
		return nil, false
	}
	return entries, true
}

func (c *ScheduleCache) Set(ctx context.Context, date time.Time, entries []models.Entry) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		log.Debug().Err(err).Msg("schedule cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, scheduleKey(date), data, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Str("key", scheduleKey(date)).Msg("schedule cache set failed")
	}
}

func (c *ScheduleCache) Invalidate(ctx context.Context, date time.Time) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, scheduleKey(date)).Err(); err != nil {
		log.Debug().Err(err).Str("key", scheduleKey(date)).Msg("schedule cache invalidate failed")
	}
}
