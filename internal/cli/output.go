package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case MessageResult:
		o.printMessageResult(v)
	case GameState:
		o.printGameState(v)
	case GameList:
		o.printGameList(v)
	case History:
		o.printHistory(v)
	case User:
		o.printUser(v)
	case UserList:
		o.printUserList(v)
	case ScoreList:
		o.printScoreList(v)
	case ReminderResult:
		o.printReminderResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MessageResult response type (matches API)
type MessageResult struct {
	Message string `json:"message"`
}

// GameState response type
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

// GameList response type
type GameList struct {
	Games   []GameState `json:"games"`
	Message string      `json:"message"`
}

// HistoryEntry response type
type HistoryEntry struct {
	Message string `json:"message"`
	Guess   string `json:"guess"`
}

// History response type
type History struct {
	Key     string         `json:"key"`
	History []HistoryEntry `json:"history"`
}

// User response type
type User struct {
	Name        string  `json:"name"`
	Email       string  `json:"email,omitempty"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Performance float64 `json:"performance"`
	ActiveGames int     `json:"active_games"`
}

// UserList response type
type UserList struct {
	Users []User `json:"users"`
}

// Score response type
type Score struct {
	UserName          string `json:"user_name"`
	Date              string `json:"date"`
	Won               bool   `json:"won"`
	AttemptsRemaining int    `json:"attempts_remaining"`
}

// ScoreList response type
type ScoreList struct {
	Scores []Score `json:"scores"`
}

// ReminderResult response type
type ReminderResult struct {
	Sent int `json:"sent"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printMessageResult(m MessageResult) {
	fmt.Println(m.Message)
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.Key)
	fmt.Printf("Player: %s\n", g.UserName)
	if g.Topic != "" {
		fmt.Printf("Topic: %s\n", g.Topic)
	}
	fmt.Printf("Word: %s\n", strings.Join(g.Hidden, " "))
	fmt.Printf("Attempts left: %d\n", g.AttemptsRemaining)
	if len(g.Guesses) > 0 {
		fmt.Printf("Guessed: %s\n", strings.Join(g.Guesses, ", "))
	}
	if g.GameOver {
		fmt.Println("Game over")
	}
	if g.Message != "" {
		fmt.Printf("\n%s\n", g.Message)
	}
}

func (o *Output) printGameList(l GameList) {
	fmt.Printf("Active games (%d):\n", len(l.Games))
	for _, g := range l.Games {
		fmt.Printf("  - %s: %s (topic: %s, %d attempts left)\n",
			g.Key, strings.Join(g.Hidden, " "), g.Topic, g.AttemptsRemaining)
	}
}

func (o *Output) printHistory(h History) {
	fmt.Printf("History for %s:\n", h.Key)
	for _, e := range h.History {
		fmt.Printf("  %s: %s\n", e.Guess, e.Message)
	}
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s\n", u.Name)
	if u.Email != "" {
		fmt.Printf("Email: %s\n", u.Email)
	}
	fmt.Printf("Wins: %d\n", u.Wins)
	fmt.Printf("Losses: %d\n", u.Losses)
	fmt.Printf("Performance: %.1f%%\n", u.Performance)
	fmt.Printf("Active games: %d\n", u.ActiveGames)
}

func (o *Output) printUserList(l UserList) {
	fmt.Printf("Rankings (%d):\n", len(l.Users))
	for i, u := range l.Users {
		fmt.Printf("  %d. %s - %.1f%% (%dW/%dL)\n", i+1, u.Name, u.Performance, u.Wins, u.Losses)
	}
}

func (o *Output) printScoreList(l ScoreList) {
	fmt.Printf("High scores (%d):\n", len(l.Scores))
	for i, s := range l.Scores {
		result := "lost"
		if s.Won {
			result = "won"
		}
		fmt.Printf("  %d. %s - %s with %d attempts left (%s)\n",
			i+1, s.UserName, result, s.AttemptsRemaining, s.Date)
	}
}

func (o *Output) printReminderResult(r ReminderResult) {
	fmt.Printf("Reminders sent: %d\n", r.Sent)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
