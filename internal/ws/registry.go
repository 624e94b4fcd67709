package ws

import (
	"log/slog"
	"sync"
)

// Registry is the process-wide room table mapping group identifiers to
// member connections. It is an injected dependency of the gateway and
// broadcaster, not package state.
type Registry struct {
	log *slog.Logger

	mu    sync.RWMutex
	rooms map[string]*room
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{log: log, rooms: map[string]*room{}}
}

// Join adds c to the room's member set, creating the room on first join.
// Concurrent first joins for the same identifier converge on one room.
func (g *Registry) Join(roomID string, c *Conn) {
	g.mu.Lock()
	rm := g.rooms[roomID]
	if rm == nil {
		rm = newRoom(roomID)
		g.rooms[roomID] = rm
	}
	g.mu.Unlock()

	rm.add(c)
	g.log.Debug("room.join", "room", roomID, "conn", c.ID(), "members", rm.size())
}

// Leave removes c from the room's member set. Unknown rooms and already
// absent members are no-ops.
func (g *Registry) Leave(roomID string, c *Conn) {
	g.mu.RLock()
	rm := g.rooms[roomID]
	g.mu.RUnlock()
	if rm == nil {
		return
	}

	rm.remove(c)
	g.log.Debug("room.leave", "room", roomID, "conn", c.ID(), "members", rm.size())
}

// Members returns a point-in-time snapshot of the room's connections.
// Unknown rooms have zero members.
func (g *Registry) Members(roomID string) []*Conn {
	g.mu.RLock()
	rm := g.rooms[roomID]
	g.mu.RUnlock()
	if rm == nil {
		return nil
	}
	return rm.snapshot()
}

// Count returns the current member count for a room
func (g *Registry) Count(roomID string) int {
	g.mu.RLock()
	rm := g.rooms[roomID]
	g.mu.RUnlock()
	if rm == nil {
		return 0
	}
	return rm.size()
}

// Rooms returns a snapshot of the known room identifiers. Rooms are never
// reaped here; empty rooms persist until process exit.
func (g *Registry) Rooms() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.rooms))
	for id := range g.rooms {
		out = append(out, id)
	}
	return out
}
