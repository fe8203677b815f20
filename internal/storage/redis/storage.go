package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"hangman/internal/model"
	"hangman/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Entities are stored as JSON values; the ordered scans (users by
// performance, scores by attempts remaining) are served from ZSET
// indexes maintained alongside each write.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Pipeline the value write with the performance index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.Name), data, 0)
	pipe.ZAdd(ctx, usersByPerformanceKey(), redis.Z{
		Score:  user.Performance,
		Member: user.Name,
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, name string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) UserExists(ctx context.Context, name string) (bool, error) {
	exists, err := s.client.Exists(ctx, userKey(name)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *Storage) ListUsersByPerformance(ctx context.Context) ([]*model.User, error) {
	names, err := s.client.ZRevRange(ctx, usersByPerformanceKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return []*model.User{}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = userKey(name)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Index entry without a value; skip
		}
		var user model.User
		if err := json.Unmarshal([]byte(val.(string)), &user); err != nil {
			continue
		}
		users = append(users, &user)
	}
	return users, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gameKey(game.Key), data, 0).Err()
}

func (s *Storage) GetGame(ctx context.Context, key model.GameKey) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) GetGames(ctx context.Context, keys []model.GameKey) ([]*model.Game, error) {
	if len(keys) == 0 {
		return []*model.Game{}, nil
	}

	redisKeys := make([]string, len(keys))
	for i, key := range keys {
		redisKeys[i] = gameKey(key)
	}

	values, err := s.client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Dangling key; skip
		}
		var game model.Game
		if err := json.Unmarshal([]byte(val.(string)), &game); err != nil {
			continue
		}
		games = append(games, &game)
	}
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, key model.GameKey) error {
	return s.client.Del(ctx, gameKey(key)).Err()
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	// Pipeline the value write with the attempts index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, scoreKey(score.ID), data, 0)
	pipe.ZAdd(ctx, scoresByAttemptsKey(), redis.Z{
		Score:  float64(score.AttemptsRemaining),
		Member: score.ID,
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListScoresByAttempts(ctx context.Context, limit int) ([]*model.Score, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	ids, err := s.client.ZRevRange(ctx, scoresByAttemptsKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Score{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = scoreKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]*model.Score, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var score model.Score
		if err := json.Unmarshal([]byte(val.(string)), &score); err != nil {
			continue
		}
		scores = append(scores, &score)
	}
	return scores, nil
}
