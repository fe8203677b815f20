package memory

import (
	"context"
	"sort"
	"sync"

	"hangman/internal/model"
	"hangman/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users  map[string]*model.User
	games  map[model.GameKey]*model.Game
	scores map[string]*model.Score
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:  make(map[string]*model.User),
		games:  make(map[model.GameKey]*model.Game),
		scores: make(map[string]*model.Score),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Name] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, name string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[name]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) UserExists(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[name]
	return ok, nil
}

func (s *Storage) ListUsersByPerformance(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Performance != users[j].Performance {
			return users[i].Performance > users[j].Performance
		}
		return users[i].Name < users[j].Name
	})
	return users, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.Key] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, key model.GameKey) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[key]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) GetGames(ctx context.Context, keys []model.GameKey) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]*model.Game, 0, len(keys))
	for _, key := range keys {
		if game, ok := s.games[key]; ok {
			games = append(games, game)
		}
	}
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, key model.GameKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, key)
	return nil
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[score.ID] = score
	return nil
}

func (s *Storage) ListScoresByAttempts(ctx context.Context, limit int) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scores := make([]*model.Score, 0, len(s.scores))
	for _, sc := range s.scores {
		scores = append(scores, sc)
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].AttemptsRemaining != scores[j].AttemptsRemaining {
			return scores[i].AttemptsRemaining > scores[j].AttemptsRemaining
		}
		return scores[i].Date.Before(scores[j].Date)
	})

	if limit > 0 && limit < len(scores) {
		scores = scores[:limit]
	}
	return scores, nil
}
