package response

import (
	"hangman/internal/model"
)

// dateFormat is the display format for game creation timestamps
const dateFormat = "2006-01-02 03:04:05 PM"

// Message is a simple confirmation response
type Message struct {
	Message string `json:"message"`
}

// GameState represents a game in API responses
type GameState struct {
	Key               string   `json:"key"`
	AttemptsRemaining int      `json:"attempts_remaining"`
	GameOver          bool     `json:"game_over"`
	Message           string   `json:"message"`
	UserName          string   `json:"user_name"`
	Topic             string   `json:"topic"`
	Hidden            []string `json:"hidden"`
	Guesses           []string `json:"guesses"`
	DateCreated       string   `json:"date_created"`
}

// GameStateFromModel converts a model.Game to a GameState. The answer is
// deliberately left out so clients can't peek at it.
func GameStateFromModel(g *model.Game, message string) GameState {
	return GameState{
		Key:               g.Key.String(),
		AttemptsRemaining: g.AttemptsRemaining,
		GameOver:          g.GameOver,
		Message:           message,
		UserName:          g.UserName,
		Topic:             g.Topic,
		Hidden:            g.Hidden,
		Guesses:           g.Guesses,
		DateCreated:       g.CreatedAt.Format(dateFormat),
	}
}

// GameList represents a set of games in API responses
type GameList struct {
	Games   []GameState `json:"games"`
	Message string      `json:"message"`
}

// GameListFromModel converts a slice of model.Game to a GameList
func GameListFromModel(games []*model.Game, message string) GameList {
	items := make([]GameState, len(games))
	for i, g := range games {
		items[i] = GameStateFromModel(g, "")
	}
	return GameList{Games: items, Message: message}
}

// HistoryEntry is one submitted move and the outcome it produced
type HistoryEntry struct {
	Message string `json:"message"`
	Guess   string `json:"guess"`
}

// History is the move-by-move log of a single game
type History struct {
	Key     string         `json:"key"`
	History []HistoryEntry `json:"history"`
}

// HistoryFromModel converts a game's history log
func HistoryFromModel(key model.GameKey, entries []model.HistoryEntry) History {
	items := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		items[i] = HistoryEntry{Message: e.Message, Guess: e.Guess}
	}
	return History{Key: key.String(), History: items}
}

// User represents a user in API responses
type User struct {
	Name        string  `json:"name"`
	Email       string  `json:"email,omitempty"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Performance float64 `json:"performance"`
	ActiveGames int     `json:"active_games"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		Name:        u.Name,
		Email:       u.Email,
		Wins:        u.Wins,
		Losses:      u.Losses,
		Performance: u.Performance,
		ActiveGames: len(u.ActiveGameKeys),
	}
}

// UserList represents the performance rankings
type UserList struct {
	Users []User `json:"users"`
}

// UserListFromModel converts a slice of model.User to a UserList
func UserListFromModel(users []*model.User) UserList {
	items := make([]User, len(users))
	for i, u := range users {
		items[i] = UserFromModel(u)
	}
	return UserList{Users: items}
}

// Score represents a completed game result in API responses
type Score struct {
	UserName          string `json:"user_name"`
	Date              string `json:"date"`
	Won               bool   `json:"won"`
	AttemptsRemaining int    `json:"attempts_remaining"`
}

// ScoreFromModel converts a model.Score to a response Score
func ScoreFromModel(s *model.Score) Score {
	return Score{
		UserName:          s.UserName,
		Date:              s.Date.Format(dateFormat),
		Won:               s.Won,
		AttemptsRemaining: s.AttemptsRemaining,
	}
}

// ScoreList represents the leaderboard
type ScoreList struct {
	Scores []Score `json:"scores"`
}

// ScoreListFromModel converts a slice of model.Score to a ScoreList
func ScoreListFromModel(scores []*model.Score) ScoreList {
	items := make([]Score, len(scores))
	for i, s := range scores {
		items[i] = ScoreFromModel(s)
	}
	return ScoreList{Scores: items}
}

// ReminderResult reports the outcome of a reminder scan
type ReminderResult struct {
	Sent int `json:"sent"`
}
