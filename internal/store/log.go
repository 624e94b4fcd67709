package store

import (
	"context"
	"log/slog"
)

// MessageLog is the message persistence surface the gateway and the history
// endpoint talk to: a durable postgres append plus a best-effort recent
// cache. cache may be nil, in which case every read hits postgres.
type MessageLog struct {
	db    *Postgres
	cache *RecentCache
	log   *slog.Logger
}

func NewMessageLog(db *Postgres, cache *RecentCache, log *slog.Logger) *MessageLog {
	return &MessageLog{db: db, cache: cache, log: log}
}

// EnsureRoom delegates to the persistent room upsert
func (l *MessageLog) EnsureRoom(ctx context.Context, roomID string) (Room, error) {
	return l.db.EnsureRoom(ctx, roomID)
}

// Append durably records one message, then mirrors it into the recent cache
func (l *MessageLog) Append(ctx context.Context, roomID, senderID, senderName, content string) (Message, error) {
	m, err := l.db.AppendMessage(ctx, roomID, senderID, senderName, content)
	if err != nil {
		return Message{}, err
	}
	if l.cache != nil {
		l.cache.Push(ctx, m)
	}
	return m, nil
}

// History returns the newest messages for a room, newest first, serving from
// the cache when it has the room and backfilling it when it does not
func (l *MessageLog) History(ctx context.Context, roomID string, limit int) ([]Message, error) {
	if l.cache != nil {
		if msgs, ok := l.cache.Recent(ctx, roomID, limit); ok {
			return msgs, nil
		}
	}
	msgs, err := l.db.ListMessages(ctx, roomID, limit)
	if err != nil {
		return nil, err
	}
	if l.cache != nil && len(msgs) > 0 {
		l.cache.Fill(ctx, roomID, msgs)
	}
	return msgs, nil
}
