package store

import "time"

type Room struct {
	ID        string
	Name      string // group identifier, e.g. chat_lobby
	CreatedAt time.Time
}

type Message struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	SenderID  string    `json:"senderId"`
	Sender    string    `json:"sender"` // sender username at append time
	Content   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
