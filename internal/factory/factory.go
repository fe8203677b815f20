package factory

import (
	"errors"
	"io"
	"log/slog"

	"hangman/internal/dependencies/clock"
	"hangman/internal/dependencies/random"
	"hangman/internal/mailer"
	"hangman/internal/services/game"
	"hangman/internal/services/reminder"
	"hangman/internal/services/score"
	"hangman/internal/services/user"
	"hangman/internal/storage"
	"hangman/internal/storage/memory"
	redisstorage "hangman/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Mailer mailer.Mailer

	// Services
	UserService     *user.Service
	GameController  *game.Controller
	ScoreService    *score.Service
	ReminderService *reminder.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Mailer delivers reminder emails (optional)
	// If nil, email delivery is disabled
	Mailer mailer.Mailer
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	ml := cfg.Mailer
	if ml == nil {
		ml = mailer.NewDisabled(logger)
	}

	return newWithDependencies(store, clk, rnd, ml, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, ml mailer.Mailer, logger *slog.Logger) *App {
	// Create services
	userService := user.New(store, logger)
	gameController := game.NewController(store, clk, rnd, logger)
	scoreService := score.New(store)
	reminderService := reminder.New(store, ml, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Mailer:          ml,
		UserService:     userService,
		GameController:  gameController,
		ScoreService:    scoreService,
		ReminderService: reminderService,
	}
}
