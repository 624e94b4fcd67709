package ws

import (
	"io"
	"log/slog"
	"sync"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConcurrentFirstJoinsCreateOneRoom(t *testing.T) {
	reg := NewRegistry(testLogger())

	const n = 64
	conns := make([]*Conn, n)
	for i := range conns {
		conns[i] = NewConn(nil, Identity{ID: "u", Name: "u"}, "chat_fresh", 4)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg.Join("chat_fresh", conns[i])
		}(i)
	}
	wg.Wait()

	if got := len(reg.Rooms()); got != 1 {
		t.Fatalf("expected 1 room, got %d", got)
	}
	if got := reg.Count("chat_fresh"); got != n {
		t.Fatalf("expected %d members, got %d", n, got)
	}
}

func TestLeaveRemovesMember(t *testing.T) {
	reg := NewRegistry(testLogger())
	a := NewConn(nil, Identity{ID: "a", Name: "a"}, "chat_r", 4)
	b := NewConn(nil, Identity{ID: "b", Name: "b"}, "chat_r", 4)
	reg.Join("chat_r", a)
	reg.Join("chat_r", b)

	reg.Leave("chat_r", a)

	for _, c := range reg.Members("chat_r") {
		if c == a {
			t.Fatal("members still contains a left connection")
		}
	}
	if got := reg.Count("chat_r"); got != 1 {
		t.Fatalf("expected 1 member, got %d", got)
	}
}

func TestLeaveIsIdempotent(t *testing.T) {
	reg := NewRegistry(testLogger())
	a := NewConn(nil, Identity{ID: "a", Name: "a"}, "chat_r", 4)

	// Never joined, unknown room, repeated leave: all no-ops
	reg.Leave("chat_r", a)
	reg.Join("chat_r", a)
	reg.Leave("chat_r", a)
	reg.Leave("chat_r", a)
	reg.Leave("chat_other", a)

	if got := reg.Count("chat_r"); got != 0 {
		t.Fatalf("expected 0 members, got %d", got)
	}
}

func TestMembersOfUnknownRoomIsEmpty(t *testing.T) {
	reg := NewRegistry(testLogger())
	if got := reg.Members("chat_nowhere"); len(got) != 0 {
		t.Fatalf("expected no members, got %d", len(got))
	}
	if got := reg.Count("chat_nowhere"); got != 0 {
		t.Fatalf("expected count 0, got %d", got)
	}
}

func TestMembersIsASnapshot(t *testing.T) {
	reg := NewRegistry(testLogger())
	a := NewConn(nil, Identity{ID: "a", Name: "a"}, "chat_r", 4)
	reg.Join("chat_r", a)

	snap := reg.Members("chat_r")
	reg.Leave("chat_r", a)

	// The snapshot taken before the leave keeps its view
	if len(snap) != 1 || snap[0] != a {
		t.Fatalf("snapshot mutated by later leave: %v", snap)
	}
	if got := reg.Count("chat_r"); got != 0 {
		t.Fatalf("expected 0 live members, got %d", got)
	}
}

func TestConcurrentJoinLeaveRace(t *testing.T) {
	reg := NewRegistry(testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := NewConn(nil, Identity{ID: "u", Name: "u"}, "chat_busy", 4)
			reg.Join("chat_busy", c)
			_ = reg.Members("chat_busy")
			reg.Leave("chat_busy", c)
		}()
	}
	wg.Wait()

	if got := reg.Count("chat_busy"); got != 0 {
		t.Fatalf("expected empty room after churn, got %d members", got)
	}
}
