package httpx

import (
	"net/http"
	"time"

	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/store"
	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/ws"
)

type HistoryAPI struct {
	Log   *store.MessageLog
	Limit int
}

type messageDTO struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"createdAt"`
}

// Recent returns the newest messages for a room, newest first
func (a *HistoryAPI) Recent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		http.Error(w, "room required", http.StatusBadRequest)
		return
	}

	msgs, err := a.Log.History(r.Context(), ws.RoomID(name), a.Limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]messageDTO, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, messageDTO{ID: m.ID, Message: m.Content, Sender: m.Sender, CreatedAt: m.CreatedAt})
	}
	writeJSON(w, resp)
}
