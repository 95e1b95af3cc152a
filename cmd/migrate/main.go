package main

import (
	"context"
	"log/slog"
	"os"

	"flashbooth/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
)

// Applies the declarative schema in migrations/ to the configured database
// using the atlas CLI. Atlas diffs the live schema against the desired one,
// so re-running after a schema change migrates in place.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	devURL := os.Getenv("ATLAS_DEV_URL")
	if devURL == "" {
		devURL = "docker://postgres/16/dev"
	}

	ctx := context.Background()
	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          "file://migrations/001_initial_schema.sql",
		DevURL:      devURL,
		AutoApprove: true,
	})
	if err != nil {
		slog.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	slog.Info("schema applied",
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
	)
}
