package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/router"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "seed sample data when the database is empty")
	return cmd
}

func (a *app) serve(ctx context.Context, seed bool) error {
	conf := a.configuration
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := a.openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if seed {
		if err := seedDatabase(ctx, db, false); err != nil {
			return err
		}
	}

	engine := router.New(router.Dependencies{
		DB:                 db,
		Logger:             log.StandardLogger(),
		Metrics:            metrics.New(""),
		CORSAllowedOrigins: conf.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:    conf.Address(),
		Handler: engine,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", conf.Address())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.WithField("timeout", conf.ShutdownTimeout.String()).Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
