// Command demoserver runs a local stand-in for the distributor API.
// Usage: go run ./cmd/demoserver [-addr :9999] [-key local-dev-key] [-file pets.csv]
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/emvolvovsky-bot/PetMatch/internal/demoserver"
	"github.com/emvolvovsky-bot/PetMatch/internal/web/server"
)

func main() {
	cfg := demoserver.DefaultConfig()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.StringVar(&cfg.APIKey, "key", cfg.APIKey, "API key required in the X-API-Key header")
	flag.StringVar(&cfg.File, "file", cfg.File, "CSV file served at /pets.csv")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	app := demoserver.New(cfg, log)

	srv := server.New(app, server.WithHost(cfg.Addr), server.WithLogger(log))
	if err := srv.Run(); err != nil {
		log.Error("demoserver stopped", "error", err)
		os.Exit(1)
	}
}
