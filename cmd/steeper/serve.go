// Serve command: runs the reference REST server over the sqlite store.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/steepworks/steeper/internal/sqlite"
	"github.com/steepworks/steeper/internal/teaserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tea REST server",
	Long: `Serve runs the reference REST server for the api/teas surface over
the embedded sqlite store. Configuration comes from STEEPER_* environment
variables (PORT, DB_PATH, LOG_LEVEL); --locator overrides the database
path.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := teaserver.LoadConfig()
	if err != nil {
		return fmt.Errorf("load server config: %w", err)
	}
	if flagLocator != "" {
		cfg.DBPath = flagLocator
	}

	setupLogger(cfg.LogLevel)

	store := sqlite.NewStore()
	if err := store.Initialize(cmd.Context(), cfg.DBPath); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: teaserver.NewRouter(store),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "db", cfg.DBPath)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

// setupLogger installs a slog text handler at the configured level.
func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
