package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mammoscan/mammoscan/internal/config"
	"github.com/mammoscan/mammoscan/internal/domain/analysis"
	"github.com/mammoscan/mammoscan/internal/domain/identity"
	"github.com/mammoscan/mammoscan/internal/domain/profile"
	"github.com/mammoscan/mammoscan/internal/platform/ai"
	"github.com/mammoscan/mammoscan/internal/platform/auth"
	"github.com/mammoscan/mammoscan/internal/platform/db"
	"github.com/mammoscan/mammoscan/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mammoscan-server",
		Short: "Breast Cancer Detection API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(initdbCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func initdbCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.EnsureSchema(ctx, pool); err != nil {
				return err
			}
			cmd.Println("schema applied")
			return nil
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.ValidateServe(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	issuer := auth.NewTokenIssuer(cfg.JWTSecret)
	aiClient := ai.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(cfg.BodyLimit, cfg.UploadLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))
	e.Use(auth.Middleware(issuer))

	// Repositories and services
	userRepo := identity.NewRepoPG(pool)
	identitySvc := identity.NewService(userRepo, issuer)

	historyRepo := profile.NewRepoPG(pool)
	profileSvc := profile.NewService(historyRepo)

	analysisRepo := analysis.NewRepoPG(pool)
	analysisSvc := analysis.NewService(analysisRepo, aiClient, analysis.NewKeywordClassifier())

	// Routes
	api := e.Group("/api")
	identity.NewHandler(identitySvc).RegisterRoutes(api)
	profile.NewHandler(profileSvc).RegisterRoutes(api)
	analysis.NewHandler(analysisSvc).RegisterRoutes(api)

	root := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Breast Cancer Detection API"})
	}
	api.GET("", root)
	api.GET("/", root)

	e.GET("/health", db.HealthHandler(pool))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
