package redis

import (
	"fmt"

	"hangman/internal/model"
)

// Key prefix for all hangman data
const keyPrefix = "hangman"

// userKey returns the Redis key for a User
func userKey(name string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, name)
}

// gameKey returns the Redis key for a Game
func gameKey(key model.GameKey) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, key)
}

// scoreKey returns the Redis key for a Score
func scoreKey(id string) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, id)
}

// usersByPerformanceKey returns the Redis key for the ZSET indexing
// user names by performance percentage
func usersByPerformanceKey() string {
	return fmt.Sprintf("%s:idx:users_by_performance", keyPrefix)
}

// scoresByAttemptsKey returns the Redis key for the ZSET indexing
// score IDs by attempts remaining at completion
func scoresByAttemptsKey() string {
	return fmt.Sprintf("%s:idx:scores_by_attempts", keyPrefix)
}
