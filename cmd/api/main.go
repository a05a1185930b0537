package main

import (
	"context"
	"log"

	"cvmatch-backend/internal/accounts"
	"cvmatch-backend/internal/analysis/gemini"
	"cvmatch-backend/internal/history"
	"cvmatch-backend/internal/server"
	"cvmatch-backend/internal/session"
	"cvmatch-backend/internal/shared/config"
	"cvmatch-backend/internal/shared/kv"
)

func main() {
	cfg := config.Load()

	backend, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("store error: %v", err)
	}

	client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini error: %v", err)
	}

	ctrl := session.New(accounts.NewStore(backend), history.NewStore(backend), client, backend)
	r := server.NewRouter(cfg, ctrl)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func buildStore(cfg config.Config) (kv.Store, error) {
	if cfg.StorePath == "" {
		log.Printf("STORE_PATH empty; using in-memory store")
		return kv.NewMemoryStore(), nil
	}
	return kv.NewSQLiteStore(cfg.StorePath)
}
