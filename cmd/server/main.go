package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hangman/internal/api"
	"hangman/internal/factory"
	"hangman/internal/mailer"
	redisstorage "hangman/internal/storage/redis"
)

func main() {
	// Load .env if present; real environment takes precedence
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Configure SES if a sender address is set
	if fromEmail := os.Getenv("SES_FROM_EMAIL"); fromEmail != "" {
		sesCfg := mailer.SESConfig{
			Region:    os.Getenv("SES_REGION"),
			FromEmail: fromEmail,
			FromName:  os.Getenv("SES_FROM_NAME"),
		}
		if sesCfg.Region == "" {
			sesCfg.Region = "us-east-1"
		}
		ses, err := mailer.NewSES(context.Background(), sesCfg, logger)
		if err != nil {
			logger.Error("failed to create SES mailer", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg.Mailer = ses
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		UserService:     app.UserService,
		GameController:  app.GameController,
		ScoreService:    app.ScoreService,
		ReminderService: app.ReminderService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Run the reminder scan on an interval if configured
	if raw := os.Getenv("REMINDER_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil || interval <= 0 {
			logger.Error("invalid REMINDER_INTERVAL", slog.String("value", raw))
			os.Exit(1)
		}
		go runReminderLoop(ctx, app, interval, logger)
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// runReminderLoop periodically emails users with unfinished games
func runReminderLoop(ctx context.Context, app *factory.App, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("reminder loop started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := app.ReminderService.Scan(ctx); err != nil {
				logger.Error("reminder scan failed", slog.String("error", err.Error()))
			}
		}
	}
}
