package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

// Conn is one live websocket session for one identity in one room. The
// gateway handler that created it owns its lifetime; the registry only
// holds references.
type Conn struct {
	id     string
	ws     *websocket.Conn
	ident  Identity
	roomID string

	out       chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// Accept upgrades HTTP to websocket (allow all origins)
func Accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
}

// NewConn wraps a websocket connection for an identity + room
func NewConn(ws *websocket.Conn, ident Identity, roomID string, buffer int) *Conn {
	if buffer <= 0 {
		buffer = 256
	}
	return &Conn{
		id:     uuid.NewString(),
		ws:     ws,
		ident:  ident,
		roomID: roomID,
		out:    make(chan []byte, buffer),
		done:   make(chan struct{}),
	}
}

func (c *Conn) ID() string         { return c.id }
func (c *Conn) Identity() Identity { return c.ident }
func (c *Conn) RoomID() string     { return c.roomID }

// TrySend queues b for delivery without blocking. Reports false when the
// connection is closed or its queue is full; the caller drops the frame.
func (c *Conn) TrySend(b []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.out <- b:
		return true
	default:
		return false
	}
}

// Read blocks until it receives a text/binary message.
// Returns false if the connection is closed.
func (c *Conn) Read(ctx context.Context) ([]byte, bool) {
	for {
		typ, data, err := c.ws.Read(ctx)
		if err != nil {
			return nil, false
		}
		if typ == websocket.MessageText || typ == websocket.MessageBinary {
			return data, true
		}
	}
}

// WriteLoop drains the outbound queue onto the socket and pings periodically.
// Exits when the connection closes or ctx is cancelled.
func (c *Conn) WriteLoop(ctx context.Context) {
	t := time.NewTicker(20 * time.Second)
	defer t.Stop()

	for {
		select {
		case b := <-c.out:
			_ = c.ws.Write(ctx, websocket.MessageText, b)
		case <-t.C:
			_ = c.ws.Ping(ctx)
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Close tears the connection down at most once. Safe to call from the
// cleanup path and from concurrent disconnect signals.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.ws != nil {
			_ = c.ws.Close(websocket.StatusNormalClosure, "bye")
		}
	})
}
