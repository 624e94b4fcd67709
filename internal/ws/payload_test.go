package ws

import "testing"

func TestRoomIDDerivation(t *testing.T) {
	cases := map[string]string{
		"lobby":   "chat_lobby",
		"general": "chat_general",
		"":        "chat_",
	}
	for name, want := range cases {
		if got := RoomID(name); got != want {
			t.Errorf("RoomID(%q) = %q, want %q", name, got, want)
		}
		// Deterministic: same name always maps to the same identifier
		if RoomID(name) != RoomID(name) {
			t.Errorf("RoomID(%q) not deterministic", name)
		}
	}
}

func TestParseInbound(t *testing.T) {
	text, err := ParseInbound([]byte(`{"message":"hi"}`))
	if err != nil {
		t.Fatalf("valid frame rejected: %v", err)
	}
	if text != "hi" {
		t.Fatalf("expected %q, got %q", "hi", text)
	}
}

func TestParseInboundEmptyMessageIsValid(t *testing.T) {
	text, err := ParseInbound([]byte(`{"message":""}`))
	if err != nil {
		t.Fatalf("empty message rejected: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestParseInboundMalformed(t *testing.T) {
	cases := []string{
		`{"msg":"hi"}`,
		`{}`,
		`not json`,
		`[]`,
		``,
	}
	for _, in := range cases {
		if _, err := ParseInbound([]byte(in)); err == nil {
			t.Errorf("ParseInbound(%q) accepted a malformed frame", in)
		}
	}
}

func TestEncodeOutboundShape(t *testing.T) {
	got := string(EncodeOutbound("hi", "alice"))
	want := `{"message":"hi","sender":"alice"}`
	if got != want {
		t.Fatalf("frame = %s, want %s", got, want)
	}
}
