package main

import (
	"context"
	"log"
	"time"

	"smarthub/internal/config"
	"smarthub/internal/database"
	"smarthub/internal/repository"
)

// state_cleanup purges client state rows untouched for STATE_RETENTION.
// Redis-backed deployments expire keys on their own and need no cleanup.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.StateStore != config.StateStoreSQL {
		log.Printf("state cleanup skipped: STATE_STORE=%s", cfg.StateStore)
		return
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := repository.NewClientStateRepository(db).DeleteOlderThan(ctx, cfg.StateRetention)
	if err != nil {
		log.Fatalf("cleanup client_state failed: %v", err)
	}

	log.Printf("state cleanup completed: client_state=%d retention=%s", n, cfg.StateRetention)
}
