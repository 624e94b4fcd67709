package ws

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RoomID derives the group identifier for an external room name. The same
// scheme keys the persisted room records, so it must never change shape.
func RoomID(name string) string { return "chat_" + name }

type inboundFrame struct {
	Message *string `json:"message"`
}

type outboundFrame struct {
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// ParseInbound extracts the message text from a client frame.
// A frame without the message key is malformed, an empty string is not.
func ParseInbound(data []byte) (string, error) {
	var f inboundFrame
	if err := json.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("decode frame: %w", err)
	}
	if f.Message == nil {
		return "", errors.New("missing message key")
	}
	return *f.Message, nil
}

// EncodeOutbound builds the broadcast frame for a message and sender name
func EncodeOutbound(message, sender string) []byte {
	b, _ := json.Marshal(outboundFrame{Message: message, Sender: sender})
	return b
}
