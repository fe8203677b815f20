package model

// User is a registered player's profile and aggregate win/loss record
type User struct {
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	ActiveGameKeys []GameKey `json:"active_game_keys"`
	Wins           int       `json:"wins"`
	Losses         int       `json:"losses"`
	Performance    float64   `json:"performance"`
}

// RecordResult folds a completed game into the win/loss counters and
// recomputes the performance percentage
func (u *User) RecordResult(won bool) {
	if won {
		u.Wins++
	} else {
		u.Losses++
	}

	total := u.Wins + u.Losses
	if total > 0 {
		u.Performance = float64(u.Wins) / float64(total) * 100
	}
}

// HasActiveGame reports whether key is in the user's active game list
func (u *User) HasActiveGame(key GameKey) bool {
	for _, k := range u.ActiveGameKeys {
		if k == key {
			return true
		}
	}
	return false
}

// RemoveActiveGame removes key from the active game list.
// Returns false if the key was not present.
func (u *User) RemoveActiveGame(key GameKey) bool {
	for i, k := range u.ActiveGameKeys {
		if k == key {
			u.ActiveGameKeys = append(u.ActiveGameKeys[:i], u.ActiveGameKeys[i+1:]...)
			return true
		}
	}
	return false
}
