package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"hangman/internal/mailer"
	"hangman/internal/storage"
)

const reminderSubject = "This is a reminder from HangmanApi!"

// Service emails users who have unfinished games
type Service struct {
	storage storage.Storage
	mailer  mailer.Mailer
	logger  *slog.Logger
}

// New creates a new reminder Service
func New(storage storage.Storage, mailer mailer.Mailer, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		mailer:  mailer,
		logger:  logger,
	}
}

// Scan walks every user and sends one reminder email per unfinished game
// for users with an email address on file. Delivery failures are logged
// and skipped so one bad address doesn't stall the whole run. It returns
// the number of emails sent.
func (s *Service) Scan(ctx context.Context) (int, error) {
	users, err := s.storage.ListUsersByPerformance(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	sent := 0
	for _, user := range users {
		if user.Email == "" || len(user.ActiveGameKeys) == 0 {
			continue
		}

		games, err := s.storage.GetGames(ctx, user.ActiveGameKeys)
		if err != nil {
			s.logger.Error("failed to load active games for reminder",
				slog.String("user", user.Name),
				slog.Any("error", err),
			)
			continue
		}

		for _, game := range games {
			if game.GameOver {
				continue
			}

			body := fmt.Sprintf(
				"Hello %s, ready to finish your game? Your topic was %s, and you still have %d attempts left!",
				user.Name, game.Topic, game.AttemptsRemaining,
			)
			if err := s.mailer.Send(ctx, user.Email, reminderSubject, body); err != nil {
				s.logger.Error("failed to send reminder email",
					slog.String("user", user.Name),
					slog.String("game_key", game.Key.String()),
					slog.Any("error", err),
				)
				continue
			}
			sent++
		}
	}

	s.logger.Info("reminder scan complete", slog.Int("sent", sent))
	return sent, nil
}
