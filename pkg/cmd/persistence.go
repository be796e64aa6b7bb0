// Package cmd wires shared infrastructure for the weft binaries.
package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/weftlabs/weft/pkg/persistence"
	"github.com/weftlabs/weft/pkg/persistence/file"
	"github.com/weftlabs/weft/pkg/persistence/postgres"
)

// NewPersistence selects a store from the database URL scheme: postgres:// for
// PostgreSQL, anything else is treated as a file path.
func NewPersistence(ctx context.Context, logger *slog.Logger, databaseURL string) persistence.Persistence {
	switch parseProvider(databaseURL) {
	case "postgres", "postgresql":
		store, err := postgres.NewPersistence(ctx, databaseURL)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to initialize postgres persistence", "error", err)
			panic(err)
		}

		return store
	default:
		return file.NewPersistence(databaseURL)
	}
}

func parseProvider(databaseURL string) string {
	scheme, _, found := strings.Cut(databaseURL, "://")
	if !found {
		return "file"
	}

	return scheme
}
