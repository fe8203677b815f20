package model

import (
	"time"
)

// GameKey is the opaque identifier external callers use to address a game
type GameKey string

func (k GameKey) String() string {
	return string(k)
}

// DefaultAttempts is the number of wrong guesses allowed when a game
// doesn't specify its own limit
const DefaultAttempts = 6

// Placeholder cells in the revealed-state sequence
const (
	HiddenBlank = "_" // unrevealed letter
	HiddenSpace = "," // space in the answer
)

// HistoryEntry records the outcome of one submitted move
type HistoryEntry struct {
	Message string `json:"message"`
	Guess   string `json:"guess"`
}

// Game is a single in-progress or completed hangman session
type Game struct {
	Key               GameKey        `json:"key"`
	UserName          string         `json:"user_name"`
	Topic             string         `json:"topic"`
	Answer            string         `json:"answer"`
	AttemptsRemaining int            `json:"attempts_remaining"`
	Hidden            []string       `json:"hidden"`
	Guesses           []string       `json:"guesses"`
	GameOver          bool           `json:"game_over"`
	CreatedAt         time.Time      `json:"created_at"`
	History           []HistoryEntry `json:"history"`
}

// NewHidden derives the revealed-state sequence for an answer:
// one cell per character, "," for spaces and "_" for everything else
func NewHidden(answer string) []string {
	hidden := make([]string, 0, len(answer))
	for i := 0; i < len(answer); i++ {
		if answer[i] == ' ' {
			hidden = append(hidden, HiddenSpace)
		} else {
			hidden = append(hidden, HiddenBlank)
		}
	}
	return hidden
}

// HasGuessed reports whether guess was already submitted for this game
func (g *Game) HasGuessed(guess string) bool {
	for _, prev := range g.Guesses {
		if prev == guess {
			return true
		}
	}
	return false
}

// Reveal fills in every position of the hidden sequence whose answer
// character equals the guess (all occurrences, not just the first)
func (g *Game) Reveal(guess string) {
	for i := 0; i < len(g.Answer); i++ {
		if string(g.Answer[i]) == guess {
			g.Hidden[i] = guess
		}
	}
}

// Revealed reports whether no unrevealed placeholder remains
func (g *Game) Revealed() bool {
	for _, cell := range g.Hidden {
		if cell == HiddenBlank {
			return false
		}
	}
	return true
}

// AddHistory appends a move record to the game's history log
func (g *Game) AddHistory(message, guess string) {
	g.History = append(g.History, HistoryEntry{Message: message, Guess: guess})
}
