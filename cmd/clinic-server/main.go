package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/medbandalert/clinic/internal/config"
	"github.com/medbandalert/clinic/internal/domain/billing"
	"github.com/medbandalert/clinic/internal/domain/checkin"
	"github.com/medbandalert/clinic/internal/domain/dashboard"
	"github.com/medbandalert/clinic/internal/domain/notification"
	"github.com/medbandalert/clinic/internal/domain/patient"
	"github.com/medbandalert/clinic/internal/domain/staff"
	"github.com/medbandalert/clinic/internal/domain/wristband"
	"github.com/medbandalert/clinic/internal/platform/auth"
	"github.com/medbandalert/clinic/internal/platform/db"
	"github.com/medbandalert/clinic/internal/platform/middleware"
)

const migrationsDir = "migrations"

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-server",
		Short: "Clinic management console API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
	}

	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations()
		},
	}

	migrateStatusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrationStatus()
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the initial admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			return seedAdmin(username, password)
		},
	}
	seedCmd.Flags().String("username", "admin", "admin username")
	seedCmd.Flags().String("password", "", "admin password (required)")

	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func setupLogger(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	}
	return logger
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := setupLogger(cfg)
	log.Logger = logger

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()
	logger.Info().Msg("database connected")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	jwtCfg := auth.JWTConfig{
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: time.Duration(cfg.TokenTTLHours) * time.Hour,
	}

	// Repositories and services.
	wristbandSvc := wristband.NewWristbandService(wristband.NewWristbandRepoPG(pool))
	patientSvc := patient.NewPatientService(patient.NewPatientRepoPG(pool), wristbandSvc)
	checkinSvc := checkin.NewCheckInService(checkin.NewCheckInRepoPG(pool))
	billSvc := billing.NewBillService(billing.NewBillRepoPG(pool))
	notificationSvc := notification.NewNotificationService(notification.NewNotificationRepoPG(pool))
	staffSvc := staff.NewStaffService(staff.NewStaffRepoPG(pool))
	dashboardSvc := dashboard.NewDashboardService(
		patientSvc.Count,
		wristbandSvc.CountActive,
		checkinSvc.CountToday,
	)

	// Login is the only unauthenticated API route.
	public := e.Group("/api/v1")
	staff.NewStaffHandler(staffSvc, jwtCfg).RegisterRoutes(public)

	api := e.Group("/api/v1")
	if cfg.IsDev() && cfg.JWTSecret == "" {
		logger.Warn().Msg("JWT_SECRET not set, using dev auth")
		api.Use(auth.DevAuthMiddleware())
	} else {
		api.Use(auth.JWTMiddleware(jwtCfg))
	}

	patient.NewPatientHandler(patientSvc).RegisterRoutes(api)
	wristband.NewWristbandHandler(wristbandSvc).RegisterRoutes(api)
	checkin.NewCheckInHandler(checkinSvc).RegisterRoutes(api)
	billing.NewBillHandler(billSvc).RegisterRoutes(api)
	notification.NewNotificationHandler(notificationSvc).RegisterRoutes(api)
	dashboard.NewDashboardHandler(dashboardSvc).RegisterRoutes(api)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func runMigrations() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(cfg)
	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	migrator := db.NewMigrator(pool, migrationsDir)
	applied, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info().Int("applied", applied).Msg("migrations applied")
	return nil
}

func migrationStatus() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	migrator := db.NewMigrator(pool, migrationsDir)
	statuses, err := migrator.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}
	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Printf("%3d  %-40s %s\n", s.Version, s.Name, state)
	}
	return nil
}

func seedAdmin(username, password string) error {
	if password == "" {
		return fmt.Errorf("--password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(cfg)
	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	svc := staff.NewStaffService(staff.NewStaffRepoPG(pool))
	acct, err := svc.CreateAccount(ctx, username, password, staff.RoleAdmin)
	if err != nil {
		return err
	}
	logger.Info().Str("username", acct.Username).Msg("admin account created")
	return nil
}
