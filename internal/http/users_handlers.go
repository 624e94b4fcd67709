package httpx

import (
	"net/http"

	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/store"
)

type UsersAPI struct{ DB *store.Postgres }

// List returns up to 100 registered users
func (a *UsersAPI) List(w http.ResponseWriter, r *http.Request) {
	users, err := a.DB.ListUsers(r.Context(), 100)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]userDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, userDTO{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	writeJSON(w, resp)
}
