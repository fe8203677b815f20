package storage

import (
	"context"

	"hangman/internal/model"
)

// Storage defines the interface for data persistence.
// Each write is atomic per entity; no cross-entity transactions are
// provided (or assumed by callers).
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, name string) (*model.User, error)
	UserExists(ctx context.Context, name string) (bool, error)
	// ListUsersByPerformance returns all users ordered by performance
	// percentage, descending
	ListUsersByPerformance(ctx context.Context) ([]*model.User, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, key model.GameKey) (*model.Game, error)
	// GetGames multi-gets games by key; keys that don't resolve are skipped
	GetGames(ctx context.Context, keys []model.GameKey) ([]*model.Game, error)
	DeleteGame(ctx context.Context, key model.GameKey) error

	// Score operations
	SaveScore(ctx context.Context, score *model.Score) error
	// ListScoresByAttempts returns scores ordered by attempts remaining,
	// descending. A limit <= 0 returns all scores.
	ListScoresByAttempts(ctx context.Context, limit int) ([]*model.Score, error)
}
