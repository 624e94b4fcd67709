package ws

import (
	"sync"
	"testing"
)

func TestTrySendAfterCloseFailsQuietly(t *testing.T) {
	c := NewConn(nil, Identity{ID: "a", Name: "a"}, "chat_r", 4)
	if !c.TrySend([]byte("x")) {
		t.Fatal("send to open connection failed")
	}
	c.Close()
	if c.TrySend([]byte("y")) {
		t.Fatal("send to closed connection succeeded")
	}
}

func TestTrySendFullQueue(t *testing.T) {
	c := NewConn(nil, Identity{ID: "a", Name: "a"}, "chat_r", 1)
	if !c.TrySend([]byte("1")) {
		t.Fatal("first send failed")
	}
	if c.TrySend([]byte("2")) {
		t.Fatal("send to full queue succeeded")
	}
}

func TestCloseIsIdempotentUnderConcurrency(t *testing.T) {
	c := NewConn(nil, Identity{ID: "a", Name: "a"}, "chat_r", 4)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Close()
		}()
	}
	wg.Wait()

	select {
	case <-c.done:
	default:
		t.Fatal("done channel not closed")
	}
}
