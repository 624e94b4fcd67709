package store

import (
	"context"
	"fmt"
)

// EnsureRoom upserts the persistent room record for a group identifier.
// Concurrent first joins race on the insert; the conflict clause makes both
// land on the same row.
func (p *Postgres) EnsureRoom(ctx context.Context, name string) (Room, error) {
	row := p.pool.QueryRow(ctx, `
		INSERT INTO chat_rooms (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at
	`, name)

	var r Room
	if err := row.Scan(&r.ID, &r.Name, &r.CreatedAt); err != nil {
		return Room{}, fmt.Errorf("ensure room %s: %w", name, err)
	}
	return r, nil
}
