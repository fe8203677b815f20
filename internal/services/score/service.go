package score

import (
	"context"

	"hangman/internal/model"
	"hangman/internal/storage"
)

// Service serves leaderboard queries over completed games
type Service struct {
	storage storage.Storage
}

// New creates a new score Service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// HighScores returns scores ordered by attempts remaining at completion,
// descending (more attempts left is better). A limit <= 0 returns all.
func (s *Service) HighScores(ctx context.Context, limit int) ([]*model.Score, error) {
	return s.storage.ListScoresByAttempts(ctx, limit)
}
