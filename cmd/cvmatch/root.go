package main

import (
	"context"

	"github.com/spf13/cobra"

	"cvmatch-backend/internal/accounts"
	"cvmatch-backend/internal/analysis"
	"cvmatch-backend/internal/analysis/gemini"
	"cvmatch-backend/internal/history"
	"cvmatch-backend/internal/session"
	"cvmatch-backend/internal/shared/config"
	"cvmatch-backend/internal/shared/kv"
)

var storePath string

var rootCmd = &cobra.Command{
	Use:   "cvmatch",
	Short: "CV match analyzer: score a CV against a job description",
	Long:  "cvmatch sends a CV and a job description to Gemini and prints a structured match report: score, strengths, per-requirement ratings, missing ATS keywords and next steps.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "path to the local store (default: STORE_PATH env var or ./data/cvmatch.db)")
}

// newController wires the stores and, when withAnalyzer is set, the Gemini
// client. Commands that never analyze get a placeholder client so they work
// without an API key.
func newController(ctx context.Context, withAnalyzer bool) (*session.Controller, func(), error) {
	cfg := config.Load()
	if storePath != "" {
		cfg.StorePath = storePath
	}

	var backend kv.Store
	cleanup := func() {}
	if cfg.StorePath == "" {
		backend = kv.NewMemoryStore()
	} else {
		sqlite, err := kv.NewSQLiteStore(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		backend = sqlite
		cleanup = func() { _ = sqlite.Close() }
	}

	var client analysis.Client = analysis.PlaceholderClient{}
	if withAnalyzer {
		geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		client = geminiClient
	}

	ctrl := session.New(accounts.NewStore(backend), history.NewStore(backend), client, backend)
	return ctrl, cleanup, nil
}
