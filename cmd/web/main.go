package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"smarthub/internal/cache"
	"smarthub/internal/config"
	"smarthub/internal/database"
	"smarthub/internal/feed"
	"smarthub/internal/hubapi"
	jwtsvc "smarthub/internal/pkg/jwt"
	"smarthub/internal/repository"
	"smarthub/internal/server"
	"smarthub/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	kv, closeKV := openStateStore(ctx, cfg)
	defer closeKV()

	sessions := session.NewProvider(session.NewStore(kv))
	backend := hubapi.NewClient(cfg.APIBase,
		hubapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		hubapi.WithStatusMethod(cfg.BookingStatusMethod),
	)

	hub := feed.NewHub()
	feeds := feed.NewManager(backend, feed.Options{
		Interval: cfg.FeedInterval,
		FailOpen: cfg.FeedFailOpen,
		Logf:     log.Printf,
	}, hub, cfg.FeedIdleTimeout)
	unsubscribe := sessions.Subscribe(feeds.HandleSessionEvent)
	go feeds.Run(ctx, time.Minute)

	r := server.NewRouter(server.Deps{
		Config:   cfg,
		Tokens:   jwtsvc.New(cfg.ClientSecret, cfg.ClientTTL),
		Sessions: sessions,
		Backend:  backend,
		Hub:      hub,
		Feeds:    feeds,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("web: listening on %s (backend %s)", cfg.HTTPAddr, cfg.APIBase)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("web: server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("web: shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("web: shutdown failed: %v", err)
	}
	unsubscribe()
	feeds.Close()
	hub.CloseAll()
}

// openStateStore returns the per-client KV selected by STATE_STORE.
func openStateStore(ctx context.Context, cfg *config.Config) (session.KV, func()) {
	if cfg.StateStore == config.StateStoreRedis {
		rs := cache.NewRedisState(cfg.Redis, cfg.StateRetention)
		if err := rs.Ping(ctx); err != nil {
			log.Fatalf("redis: %v", err)
		}
		log.Printf("web: client state in redis at %s", cfg.Redis.Addr)
		return rs, func() { _ = rs.Close() }
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}
	return repository.NewClientStateRepository(db), func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
