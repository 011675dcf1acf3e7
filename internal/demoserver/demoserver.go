// Package demoserver hosts a local stand-in for the distributor API,
// serving the pet catalog behind the same API-key check the real
// service performs. It exists for development and end-to-end tests.
package demoserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/emvolvovsky-bot/PetMatch/internal/distrib"
	"github.com/emvolvovsky-bot/PetMatch/internal/web"
	"github.com/emvolvovsky-bot/PetMatch/internal/web/errs"
	"github.com/emvolvovsky-bot/PetMatch/internal/web/middleware"
	"github.com/emvolvovsky-bot/PetMatch/internal/web/mux"
)

// Config holds configuration for the demo server.
type Config struct {
	// Addr is the address the server listens on.
	Addr string

	// APIKey is the key clients must present in the X-API-Key header.
	APIKey string

	// File is the CSV file served at /pets.csv.
	File string
}

// DefaultConfig returns a Config with local-dev defaults.
func DefaultConfig() Config {
	return Config{
		Addr:   ":9999",
		APIKey: "local-dev-key",
		File:   "pets.csv",
	}
}

// New builds the HTTP application serving the stub distributor routes.
func New(cfg Config, log *slog.Logger) *mux.App {
	app := mux.New(
		mux.WithLogger(log),
		mux.WithMiddleware(
			middleware.Logger(log),
			middleware.Errors(log),
			middleware.Panics(),
		),
	)

	app.Get("/healthz", health)
	app.Get("/pets.csv", serveCatalog(cfg.File), middleware.APIKey(distrib.APIKeyHeader, cfg.APIKey))

	return app
}

func health(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	status := struct {
		Status string `json:"status"`
	}{
		Status: "ok",
	}

	return web.RespondJSON(ctx, w, http.StatusOK, status)
}

// serveCatalog streams the configured file with an explicit
// Content-Length so clients can verify the byte count.
func serveCatalog(path string) mux.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		ctx, span := mux.AddSpan(ctx, "demoserver.servecatalog", attribute.String("file", path))
		defer span.End()

		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errs.New(http.StatusNotFound, fmt.Errorf("catalog file not found"))
			}

			return errs.NewInternal(fmt.Errorf("opening catalog: %w", err))
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return errs.NewInternal(fmt.Errorf("stating catalog: %w", err))
		}

		mux.SetStatusCode(ctx, http.StatusOK)

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
		w.WriteHeader(http.StatusOK)

		if _, err := io.Copy(w, f); err != nil {
			return fmt.Errorf("streaming catalog: %w", err)
		}

		return nil
	}
}
