package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/app"
)

// RecentCache keeps the newest messages per room in a redis list so the
// history endpoint can skip postgres on the hot path. Everything here is
// best effort; postgres stays the source of truth.
type RecentCache struct {
	rdb   *redis.Client
	log   *slog.Logger
	limit int64
}

// NewRecentCache connects to redis and verifies connectivity
func NewRecentCache(ctx context.Context, cfg app.Config, log *slog.Logger) (*RecentCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RecentCache{rdb: rdb, log: log, limit: int64(cfg.HistoryLimit)}, nil
}

func (c *RecentCache) Close() error { return c.rdb.Close() }

func cacheKey(roomID string) string { return "history:" + roomID }

// Push prepends m to the room's list and trims it to the cache limit
func (c *RecentCache) Push(ctx context.Context, m Message) {
	raw, _ := json.Marshal(m)
	pipe := c.rdb.TxPipeline()
	pipe.LPush(ctx, cacheKey(m.RoomID), raw)
	pipe.LTrim(ctx, cacheKey(m.RoomID), 0, c.limit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Debug("cache.push", "room", m.RoomID, "err", err)
	}
}

// Recent returns cached messages newest first. ok is false when the room
// has no cached list or redis errored.
func (c *RecentCache) Recent(ctx context.Context, roomID string, limit int) ([]Message, bool) {
	if int64(limit) > c.limit {
		return nil, false
	}
	raws, err := c.rdb.LRange(ctx, cacheKey(roomID), 0, int64(limit)-1).Result()
	if err != nil || len(raws) == 0 {
		return nil, false
	}
	out := make([]Message, 0, len(raws))
	for _, raw := range raws {
		var m Message
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, false
		}
		out = append(out, m)
	}
	return out, true
}

// Fill replaces the room's cached list with msgs (newest first)
func (c *RecentCache) Fill(ctx context.Context, roomID string, msgs []Message) {
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, cacheKey(roomID))
	for _, m := range msgs {
		raw, _ := json.Marshal(m)
		pipe.RPush(ctx, cacheKey(roomID), raw)
	}
	pipe.LTrim(ctx, cacheKey(roomID), 0, c.limit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Debug("cache.fill", "room", roomID, "err", err)
	}
}
