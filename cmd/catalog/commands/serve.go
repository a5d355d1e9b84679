package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

var (
	// Serve flags
	autoMigrate bool
)

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "Apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	app, cleanup, err := initialize(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	log := app.Logger
	log.Info("Starting service",
		interfaces.String("version", config.GetServiceVersion(&app.Config.Service)),
		interfaces.String("environment", app.Config.Service.Environment),
	)

	if autoMigrate {
		if err := app.Migrator.Migrate(); err != nil {
			return err
		}
	}

	server := app.Server()
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", interfaces.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Service.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", interfaces.Error(err))
		return err
	}

	log.Info("Service stopped")
	return nil
}
