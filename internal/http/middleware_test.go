package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/app"
	"github.com/Sameer-Awais/nesc-chat-box-backend/pkg/auth"
)

func TestAuthMiddleware(t *testing.T) {
	j := auth.New("s")
	mw := NewMiddleware(app.Config{CORSAllow: []string{"*"}}, j)

	var gotUID string
	h := mw.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUID = auth.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// No token
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d, want 401", rec.Code)
	}

	// Bad token
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d, want 401", rec.Code)
	}

	// Valid token passes the user ID downstream
	tok, err := j.Sign("u1", "alice", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token status = %d, want 200", rec.Code)
	}
	if gotUID != "u1" {
		t.Fatalf("context user = %q, want u1", gotUID)
	}
}
