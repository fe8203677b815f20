package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"hangman/internal/api/apierr"
	"hangman/internal/api/handler"
	"hangman/internal/middleware"
	"hangman/internal/services/game"
	"hangman/internal/services/reminder"
	"hangman/internal/services/score"
	"hangman/internal/services/user"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	UserService     *user.Service
	GameController  *game.Controller
	ScoreService    *score.Service
	ReminderService *reminder.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.UserService)
	gameHandler := handler.NewGameHandler(cfg.GameController)
	scoreHandler := handler.NewScoreHandler(cfg.ScoreService)
	jobHandler := handler.NewJobHandler(cfg.ReminderService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, panicHandler)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// User routes
	api.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/users/{name}", userHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{name}/games", gameHandler.UserGames).Methods(http.MethodGet)
	api.HandleFunc("/users/{name}/games/{key}", gameHandler.Cancel).Methods(http.MethodDelete)
	api.HandleFunc("/rankings", userHandler.Rankings).Methods(http.MethodGet)

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{key}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{key}/move", gameHandler.Move).Methods(http.MethodPut)
	api.HandleFunc("/games/{key}/history", gameHandler.History).Methods(http.MethodGet)

	// Leaderboard routes
	api.HandleFunc("/scores", scoreHandler.HighScores).Methods(http.MethodGet)

	// Job routes
	api.HandleFunc("/jobs/reminder", jobHandler.Reminder).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
