package model

import "time"

// Score is the immutable record of one completed game's outcome.
// Created exactly once when a game ends; never mutated afterward.
type Score struct {
	ID                string    `json:"id"`
	GameKey           GameKey   `json:"game_key"`
	UserName          string    `json:"user_name"`
	Date              time.Time `json:"date"`
	Won               bool      `json:"won"`
	AttemptsRemaining int       `json:"attempts_remaining"`
}
