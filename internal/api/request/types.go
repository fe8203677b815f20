package request

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// NewGameRequest is the request body for starting a game
type NewGameRequest struct {
	Name              string `json:"name"`
	Topic             string `json:"topic"`
	Answer            string `json:"answer"`
	AttemptsRemaining int    `json:"attempts_remaining,omitempty"`
}

// MakeMoveRequest is the request body for submitting a guess
type MakeMoveRequest struct {
	Guess string `json:"guess"`
}
