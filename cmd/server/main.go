package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patient-management-service/internal/config"
	"patient-management-service/internal/database"
	"patient-management-service/internal/fms"
	"patient-management-service/internal/handler"
	"patient-management-service/internal/logging"
	"patient-management-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pms",
		Short: "Patient management service with FMS billing hand-off",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the patients, services, medicines, rooms and audit_logs tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			logger := logging.New(cfg)

			db, err := database.Connect(cfg, logger)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			logger.Info().Msg("migration completed")
			return nil
		},
	}
}

func runServer() error {
	// 1. Load configuration
	cfg := config.LoadConfig()
	logger := logging.New(cfg)
	logger.Info().Str("fms_url", cfg.FMS.URL).Msg("configuration loaded")

	// 2. Prepare the database handle; sessions are opened per request
	db, err := database.Connect(cfg, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	conns := database.NewProvider(db)

	// 3. Initialize services
	patientService := service.NewPatientService(conns, logger)
	fmsService := service.NewFMSService(conns, fms.NewClient(cfg.FMS.URL, logger), logger)

	// 4. Setup router
	gin.SetMode(cfg.Server.GinMode)
	router := handler.NewRouter(cfg, logger,
		handler.NewPatientHandler(patientService, fmsService),
		handler.NewHealthHandler(conns),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// 5. Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	stats := conns.Stats()
	logger.Info().Int64("acquired", stats.Acquired).Int64("released", stats.Released).Msg("server exited")
	return nil
}
