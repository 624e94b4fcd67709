package httpx

import (
	"log/slog"
	"net/http"

	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/app"
	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/store"
	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/ws"
	"github.com/Sameer-Awais/nesc-chat-box-backend/pkg/auth"
	"github.com/Sameer-Awais/nesc-chat-box-backend/pkg/metrics"
)

// NewRouter wires up all HTTP routes, middleware, and handlers
func NewRouter(cfg app.Config, logger *slog.Logger, gw *ws.Gateway, db *store.Postgres, msgs *store.MessageLog) http.Handler {
	j := auth.New(cfg.JWTSecret)
	mw := NewMiddleware(cfg, j)

	authAPI := &AuthAPI{DB: db, JWT: j}
	usersAPI := &UsersAPI{DB: db}
	historyAPI := &HistoryAPI{Log: msgs, Limit: cfg.HistoryLimit}

	mux := http.NewServeMux()

	// Health / readiness / metrics
	mux.Handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/readyz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/metrics", metrics.Handler())

	// WebSocket endpoint; the gateway does its own auth since browsers
	// cannot set headers on the upgrade request
	mux.Handle("/ws", http.HandlerFunc(gw.ServeWS))

	// Auth endpoints
	mux.Handle("POST /api/auth/register", http.HandlerFunc(authAPI.Register))
	mux.Handle("POST /api/auth/login", http.HandlerFunc(authAPI.Login))
	mux.Handle("GET /api/auth/me", mw.Auth(http.HandlerFunc(authAPI.Me)))

	// Chat CRUD glue (JWT-protected)
	mux.Handle("GET /api/users", mw.Auth(http.HandlerFunc(usersAPI.List)))
	mux.Handle("GET /api/rooms/{name}/messages", mw.Auth(http.HandlerFunc(historyAPI.Recent)))

	// CORS + rate limit applied globally
	return mw.Wrap(mux)
}
