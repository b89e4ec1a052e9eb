package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Soumyadipgithub/voteverse-eth/auth"
	"github.com/Soumyadipgithub/voteverse-eth/cliparse"
	"github.com/Soumyadipgithub/voteverse-eth/registry"
	"github.com/Soumyadipgithub/voteverse-eth/router"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Build the in-memory election registry. State resets to the demo seed
	// on every restart; that is the whole point of this service.
	reg := registry.New(registry.Options{
		CreateDelay:  cfg.CreateDelay,
		ActionDelay:  cfg.ActionDelay,
		TickInterval: cfg.TickInterval,
		SeedDemo:     cfg.SeedDemo,
	})

	sessions := auth.NewSessions(cfg.SessionTTL)

	// Start the status watcher
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reg.Run(ctx)

	// Create router
	mux := router.NewRouter(reg, sessions, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
