package store

import (
	"context"
	"fmt"
)

// AppendMessage inserts one message row and returns the persisted record.
// Messages are append-only; there is no update or delete path.
func (p *Postgres) AppendMessage(ctx context.Context, roomID, senderID, senderName, content string) (Message, error) {
	row := p.pool.QueryRow(ctx, `
		INSERT INTO messages (room_name, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, roomID, senderID, content)

	m := Message{RoomID: roomID, SenderID: senderID, Sender: senderName, Content: content}
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		return Message{}, fmt.Errorf("append message: %w", err)
	}
	return m, nil
}

// ListMessages returns the newest messages for a room, newest first
func (p *Postgres) ListMessages(ctx context.Context, roomID string, limit int) ([]Message, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT m.id, m.room_name, m.sender_id, u.username, m.content, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.room_name = $1
		ORDER BY m.created_at DESC
		LIMIT $2
	`, roomID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.Sender, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
