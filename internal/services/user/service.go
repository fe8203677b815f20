package user

import (
	"context"
	"log/slog"

	"hangman/internal/model"
	"hangman/internal/storage"
)

// Service handles user registration, lookup, and rankings
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new user Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Create registers a new user. Names are unique; uniqueness is enforced
// by an existence check before the insert, not by the storage layer.
func (s *Service) Create(ctx context.Context, name, email string) (*model.User, error) {
	exists, err := s.storage.UserExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrUserExists
	}

	user := &model.User{
		Name:           name,
		Email:          email,
		ActiveGameKeys: []model.GameKey{},
	}
	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", slog.String("user", name))
	return user, nil
}

// Get looks up a user by name
func (s *Service) Get(ctx context.Context, name string) (*model.User, error) {
	return s.storage.GetUser(ctx, name)
}

// Rankings returns all users ordered by performance percentage, descending
func (s *Service) Rankings(ctx context.Context) ([]*model.User, error) {
	return s.storage.ListUsersByPerformance(ctx)
}
