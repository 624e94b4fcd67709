package ws

import "sync"

// room tracks the live member connections for one group identifier.
// Membership only; connection lifetimes belong to their gateway handlers.
type room struct {
	id string

	mu      sync.RWMutex
	members map[*Conn]struct{}
}

func newRoom(id string) *room {
	return &room{id: id, members: map[*Conn]struct{}{}}
}

func (r *room) add(c *Conn) {
	r.mu.Lock()
	r.members[c] = struct{}{}
	r.mu.Unlock()
}

func (r *room) remove(c *Conn) {
	r.mu.Lock()
	delete(r.members, c)
	r.mu.Unlock()
}

// snapshot copies the member set so callers can iterate while membership
// keeps changing underneath
func (r *room) snapshot() []*Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Conn, 0, len(r.members))
	for c := range r.members {
		out = append(out, c)
	}
	return out
}

func (r *room) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}
