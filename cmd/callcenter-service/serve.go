package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// serveCmd returns the serve command
func serveCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Connect to the configured database (and Redis and Kafka when enabled),
migrate and seed it when configured to, and serve the REST API until
SIGINT or SIGTERM is received.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			appLogger := newLogger(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg, appLogger)
			if err != nil {
				appLogger.Error("Failed to start service", "error", err)
				return err
			}

			server := a.server()
			serverErr := make(chan error, 1)
			go func() {
				appLogger.Info("Service starting", "name", cfg.Application.Name, "version", cfg.Application.Version, "port", cfg.Server.Port)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			select {
			case err := <-serverErr:
				if err != nil {
					appLogger.Error("Failed to start server", "error", err)
					a.close(context.Background())
					return err
				}
			case <-ctx.Done():
			}
			appLogger.Info("Shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
			defer cancel()

			err = server.Shutdown(shutdownCtx)
			if err != nil {
				appLogger.Error("Server forced to shutdown", "error", err)
			}
			a.close(shutdownCtx)

			appLogger.Info("Server exited")
			return err
		},
	}
}
