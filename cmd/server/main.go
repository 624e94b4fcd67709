package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/app"
	httpx "github.com/Sameer-Awais/nesc-chat-box-backend/internal/http"
	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/store"
	"github.com/Sameer-Awais/nesc-chat-box-backend/internal/ws"
	"github.com/Sameer-Awais/nesc-chat-box-backend/pkg/auth"
)

func main() {
	// Load local .env (dev only)
	_ = godotenv.Load()

	cfg := app.LoadConfig()
	logger := app.NewLogger(cfg.Env)

	// Cancel on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Postgres connection + migrations
	pg, err := store.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("postgres connect", "err", err)
		log.Fatal(err)
	}
	defer pg.Close()
	if err := store.RunMigrations(ctx, pg, logger); err != nil {
		logger.Error("migrations", "err", err)
		log.Fatal(err)
	}

	// Redis recent-history cache; the relay runs without it
	cache, err := store.NewRecentCache(ctx, cfg, logger)
	if err != nil {
		logger.Warn("redis connect, history cache disabled", "err", err)
		cache = nil
	} else {
		defer cache.Close()
	}
	msgs := store.NewMessageLog(pg, cache, logger)

	// Room registry + broadcaster + session gateway
	registry := ws.NewRegistry(logger)
	broadcaster := ws.NewBroadcaster(logger, registry)
	resolver := ws.NewJWTResolver(auth.New(cfg.JWTSecret))
	gateway := ws.NewGateway(logger, registry, broadcaster, msgs, resolver, cfg.SendBuffer)

	// HTTP + WS router
	router := httpx.NewRouter(cfg, logger, gateway, pg, msgs)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("server.listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server.crash", "err", err)
			cancel()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	logger.Info("server.shutdown.start")

	// shutdown
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	_ = srv.Shutdown(shutdownCtx)

	logger.Info("server.shutdown.complete")
	_ = os.Stdout.Sync()
}
