package ws

import (
	"log/slog"

	"github.com/Sameer-Awais/nesc-chat-box-backend/pkg/metrics"
)

// Broadcaster fans one frame out to every current member of a room.
type Broadcaster struct {
	log *slog.Logger
	reg *Registry
}

func NewBroadcaster(log *slog.Logger, reg *Registry) *Broadcaster {
	return &Broadcaster{log: log, reg: reg}
}

// Broadcast delivers payload to each member of roomID. A member that cannot
// take the frame (closed connection, full queue) is skipped and counted;
// the remaining members still receive it. Never fails the call.
func (b *Broadcaster) Broadcast(roomID string, payload []byte) {
	members := b.reg.Members(roomID)

	sent := 0
	for _, c := range members {
		if c.TrySend(payload) {
			sent++
			continue
		}
		metrics.DeliveryDrops.Inc()
		b.log.Debug("broadcast.drop", "room", roomID, "conn", c.ID())
	}

	metrics.Broadcasts.Inc()
	b.log.Debug("broadcast", "room", roomID, "members", len(members), "sent", sent)
}
