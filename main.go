package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/pollroster/cliparse"
	"github.com/danielhkuo/pollroster/db"
	"github.com/danielhkuo/pollroster/middleware"
	"github.com/danielhkuo/pollroster/models"
	"github.com/danielhkuo/pollroster/polls"
	"github.com/danielhkuo/pollroster/roster"
	"github.com/danielhkuo/pollroster/router"
)

func main() {
	var err error

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the storage backend (creates the kv table for SQL backends)
	backend, err := db.Open(context.Background(), cfg)
	if err != nil {
		slog.Error("storage backend failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer backend.Close()
	slog.Info("Storage ready", "type", cfg.DatabaseType)

	store := polls.NewStore(backend)

	// Load the voter roster, if any
	var records []models.VoterRecord
	if cfg.RosterPath != "" {
		records, err = roster.LoadFile(cfg.RosterPath)
		if err != nil {
			slog.Error("roster load failed", "path", cfg.RosterPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Roster loaded", "path", cfg.RosterPath, "records", len(records))
	}
	dash := roster.NewDashboard(records)

	// Create router
	mux := router.NewRouter(store, dash, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "origin", cfg.PublicOrigin)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
