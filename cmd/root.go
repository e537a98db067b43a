package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"avrental/internal/core/config"
	"avrental/internal/core/container"
	"avrental/internal/core/logger"
	"avrental/internal/core/routes"
	"avrental/internal/database"
	"avrental/internal/middleware"
	"avrental/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run migrations manually.",
		Long:  `Applies every pending migration from the given directory and exits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
			defer log.Sync()

			migrationDir, _ := cmd.Flags().GetString("dir")
			if migrationDir == "" {
				migrationDir = cfg.MigrationsDir
			}

			if err := database.RunMigrations(cfg.DatabaseURL, migrationDir, log); err != nil {
				log.Error("migration failed", zap.Error(err))
				return fmt.Errorf("migrate database: %w", err)
			}

			return nil
		},
	}
	cmd.Flags().String("dir", "", "Directory containing the migration files (defaults to MIGRATIONS_DIR)")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			runMigrations, _ := cmd.Flags().GetBool("migrate")
			return serve(cmd.Context(), cfg, runMigrations || cfg.RunMigrations)
		},
	}
	cmd.Flags().Bool("migrate", false, "Apply pending migrations before serving")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, runMigrations bool) error {
	log := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir, log); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	db, err := database.NewPostgresConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	log.Info("connected to the database")

	if err := validation.RegisterEnumValidators(); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	health := middleware.NewHealth(cfg.Version, db)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		middleware.RequestLogger(log.Named("http")),
		middleware.RecoveryMiddleware(log),
		middleware.TimeoutMiddleware(cfg.RequestTimeout),
	)
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
		go cleanupLoop(ctx, limiter)
	}

	c := container.NewAppContainer(db, log, reg)
	routes.RegisterRoutes(router, c)
	routes.RegisterUtilityRoutes(router, health, reg, log)

	server := &http.Server{
		Addr:    cfg.AppHost,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.AppHost), zap.String("version", cfg.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			health.SetStatus(middleware.StatusDown)
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	health.SetStatus(middleware.StatusShuttingDown)
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func cleanupLoop(ctx context.Context, limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Cleanup()
		}
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "avrental",
		Short:        "AV rental inventory, quoting and availability service",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newMigrateCmd(), newServeCmd())
	return rootCmd
}

func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
