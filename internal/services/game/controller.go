package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"hangman/internal/dependencies/clock"
	"hangman/internal/dependencies/random"
	"hangman/internal/model"
	"hangman/internal/storage"
)

const gameKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages the hangman game lifecycle: creation, move
// evaluation, the end-game transition, and cancellation
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// NewGame creates a game for an existing user. The answer is lowercased
// at creation so guesses (which are lowercased on submission) can always
// reveal it. attemptsRemaining <= 0 falls back to the default of 6.
func (c *Controller) NewGame(ctx context.Context, userName, topic, answer string, attemptsRemaining int) (*model.Game, error) {
	user, err := c.storage.GetUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return nil, model.ErrInvalidAnswer
	}

	if attemptsRemaining <= 0 {
		attemptsRemaining = model.DefaultAttempts
	}

	game := &model.Game{
		Key:               model.GameKey(c.random.String(12, gameKeyAlphabet)),
		UserName:          user.Name,
		Topic:             topic,
		Answer:            answer,
		AttemptsRemaining: attemptsRemaining,
		Hidden:            model.NewHidden(answer),
		Guesses:           []string{},
		CreatedAt:         c.clock.Now(),
	}
	game.AddHistory("Good luck playing Hangman!", "NONE")

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_key", string(game.Key)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	user.ActiveGameKeys = append(user.ActiveGameKeys, game.Key)
	if err := c.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_key", string(game.Key)),
		slog.String("user", user.Name),
		slog.String("topic", topic),
		slog.Int("attempts", attemptsRemaining),
	)

	return game, nil
}

// GetGame retrieves a game by key
func (c *Controller) GetGame(ctx context.Context, key model.GameKey) (*model.Game, error) {
	return c.storage.GetGame(ctx, key)
}

// MakeMove evaluates one guess against a game and returns the updated
// game plus an outcome message. Rejected guesses (non-letter, multi-char,
// duplicate) are normal outcomes, not errors; every path is recorded in
// the game's history.
//
// Classification order is authoritative: a numeric single character is
// rejected as "not a letter" before the length check, and a duplicate
// guess is caught before the in-answer check.
func (c *Controller) MakeMove(ctx context.Context, key model.GameKey, rawGuess string) (*model.Game, string, error) {
	game, err := c.storage.GetGame(ctx, key)
	if err != nil {
		return nil, "", err
	}

	if game.GameOver {
		msg := "Game already over!"
		game.AddHistory(msg, "NONE")
		if err := c.storage.SaveGame(ctx, game); err != nil {
			return nil, "", err
		}
		return game, msg, nil
	}

	guess := strings.ToLower(rawGuess)

	var msg string
	switch {
	case isDigits(guess):
		msg = "Please enter a letter."

	case len(guess) != 1:
		msg = "Please enter a single letter!"

	case game.HasGuessed(guess):
		msg = fmt.Sprintf("You already guessed that! You have %d tries", game.AttemptsRemaining)

	case !strings.Contains(game.Answer, guess):
		game.AttemptsRemaining--
		game.Guesses = append(game.Guesses, guess)
		if game.AttemptsRemaining < 1 {
			if err := c.endGame(ctx, game, false); err != nil {
				return nil, "", err
			}
			msg = "Game over! You LOSE"
		} else {
			msg = fmt.Sprintf("Nope Sorry! You have %d tries", game.AttemptsRemaining)
		}

	default:
		game.Guesses = append(game.Guesses, guess)
		game.Reveal(guess)
		if game.Revealed() {
			if err := c.endGame(ctx, game, true); err != nil {
				return nil, "", err
			}
			msg = fmt.Sprintf("CONGRATS You WON! The secret was %s", game.Answer)
		} else {
			msg = "Nice! Looks like you guessed right"
		}
	}

	game.AddHistory(msg, guess)
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, "", err
	}
	return game, msg, nil
}

// endGame performs the one-way end-of-game transition: flips the
// game-over flag, settles the owning user's record, and writes the
// immutable score. The three entity writes are separate; the store
// offers no cross-entity transaction.
func (c *Controller) endGame(ctx context.Context, game *model.Game, won bool) error {
	game.GameOver = true

	user, err := c.storage.GetUser(ctx, game.UserName)
	if err != nil {
		return err
	}

	if !user.RemoveActiveGame(game.Key) {
		c.logger.Warn("finished game was not in the user's active list",
			slog.String("game_key", string(game.Key)),
			slog.String("user", user.Name),
		)
	}
	user.RecordResult(won)

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}
	if err := c.storage.SaveUser(ctx, user); err != nil {
		return err
	}

	score := &model.Score{
		ID:                uuid.NewString(),
		GameKey:           game.Key,
		UserName:          user.Name,
		Date:              c.clock.Now(),
		Won:               won,
		AttemptsRemaining: game.AttemptsRemaining,
	}
	if err := c.storage.SaveScore(ctx, score); err != nil {
		return err
	}

	c.logger.Info("game finished",
		slog.String("game_key", string(game.Key)),
		slog.String("user", user.Name),
		slog.Bool("won", won),
		slog.Int("attempts_remaining", game.AttemptsRemaining),
	)

	return nil
}

// CancelGame deletes a not-yet-finished game and removes it from the
// owning user's active list. Completed games cannot be cancelled.
func (c *Controller) CancelGame(ctx context.Context, userName string, key model.GameKey) error {
	user, err := c.storage.GetUser(ctx, userName)
	if err != nil {
		return err
	}

	game, err := c.storage.GetGame(ctx, key)
	if err != nil {
		return err
	}
	if game.UserName != user.Name {
		return model.ErrGameNotFound
	}
	if game.GameOver {
		return model.ErrGameAlreadyOver
	}

	if !user.RemoveActiveGame(key) {
		c.logger.Warn("cancelled game was not in the user's active list",
			slog.String("game_key", string(key)),
			slog.String("user", user.Name),
		)
	}

	if err := c.storage.DeleteGame(ctx, key); err != nil {
		return err
	}
	if err := c.storage.SaveUser(ctx, user); err != nil {
		return err
	}

	c.logger.Info("game cancelled",
		slog.String("game_key", string(key)),
		slog.String("user", user.Name),
	)

	return nil
}

// ActiveGames returns a user's unfinished games
func (c *Controller) ActiveGames(ctx context.Context, userName string) ([]*model.Game, error) {
	user, err := c.storage.GetUser(ctx, userName)
	if err != nil {
		return nil, err
	}
	return c.storage.GetGames(ctx, user.ActiveGameKeys)
}

// History returns a game's move log
func (c *Controller) History(ctx context.Context, key model.GameKey) ([]model.HistoryEntry, error) {
	game, err := c.storage.GetGame(ctx, key)
	if err != nil {
		return nil, err
	}
	return game.History, nil
}

// isDigits reports whether s is non-empty and entirely numeric
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
