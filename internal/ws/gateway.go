package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/store"
	"github.com/Sameer-Awais/nesc-chat-box-backend/pkg/metrics"
)

// Store is what the gateway needs from persistence: a durable room record
// per group identifier and an append-only message log.
type Store interface {
	EnsureRoom(ctx context.Context, roomID string) (store.Room, error)
	Append(ctx context.Context, roomID, senderID, senderName, content string) (store.Message, error)
}

// Gateway runs the connection lifecycle: authenticate, join, pump messages,
// and deregister on disconnect.
type Gateway struct {
	log   *slog.Logger
	reg   *Registry
	bcast *Broadcaster
	store Store
	ident IdentityResolver

	sendBuffer int
}

func NewGateway(log *slog.Logger, reg *Registry, bcast *Broadcaster, st Store, ident IdentityResolver, sendBuffer int) *Gateway {
	return &Gateway{log: log, reg: reg, bcast: bcast, store: st, ident: ident, sendBuffer: sendBuffer}
}

// ServeWS handles a new /ws connection for a room.
// Anonymous identities are rejected before the upgrade; they never touch
// the registry or create a room.
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roomName := r.URL.Query().Get("room")
	if roomName == "" {
		http.Error(w, "room required", http.StatusBadRequest)
		return
	}

	ident := g.ident.Resolve(r)
	if ident.Anonymous() {
		g.log.Info("ws.reject.anonymous", "remote", r.RemoteAddr)
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	roomID := RoomID(roomName)
	if _, err := g.store.EnsureRoom(ctx, roomID); err != nil {
		g.log.Error("room.ensure", "room", roomID, "err", err)
		http.Error(w, "room unavailable", http.StatusInternalServerError)
		return
	}

	wsc, err := Accept(w, r)
	if err != nil {
		g.log.Error("ws.accept", "err", err)
		return
	}

	c := NewConn(wsc, ident, roomID, g.sendBuffer)
	g.reg.Join(roomID, c)
	metrics.ActiveConnections.Inc()
	g.log.Info("ws.connect", "user", ident.Name, "room", roomID, "conn", c.ID())

	// Deregistration must run on every exit path, including errors
	// mid-message-handling.
	defer func() {
		g.reg.Leave(roomID, c)
		c.Close()
		metrics.ActiveConnections.Dec()
		g.log.Info("ws.disconnect", "user", ident.Name, "room", roomID, "conn", c.ID())
	}()

	go c.WriteLoop(ctx)

	for {
		data, ok := c.Read(ctx)
		if !ok {
			return
		}
		g.handleInbound(ctx, c, data)
	}
}

// handleInbound processes one application frame from an active connection:
// parse, persist, then fan out. Malformed frames are dropped and the
// connection stays open.
func (g *Gateway) handleInbound(ctx context.Context, c *Conn, data []byte) {
	metrics.MessagesIn.Inc()

	text, err := ParseInbound(data)
	if err != nil {
		metrics.MalformedMessages.Inc()
		g.log.Warn("msg.malformed", "conn", c.ID(), "err", err)
		return
	}

	ident := c.Identity()
	if _, err := g.store.Append(ctx, c.RoomID(), ident.ID, ident.Name, text); err != nil {
		// Policy: the frame still goes out; the durability gap is logged
		// and counted instead of silently ignored.
		metrics.PersistFailures.Inc()
		g.log.Error("msg.persist", "room", c.RoomID(), "sender", ident.ID, "err", err)
	}

	g.bcast.Broadcast(c.RoomID(), EncodeOutbound(text, ident.Name))
}
