package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix  = "farkle:game:"
	turnsKeySuffix = ":turns"
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL applied to every key a game owns. Zero keeps keys forever.
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

func gameKey(gameID string) string {
	return gameKeyPrefix + gameID
}

func turnsKey(gameID string) string {
	return gameKeyPrefix + gameID + turnsKeySuffix
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, gameKey(input.Game.ID), gameJSON, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.Get(ctx, gameKey(input.GameID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// AppendTurn pushes a finished turn onto the game's history list
func (r *redisRepository) AppendTurn(ctx context.Context, input *AppendTurnInput) error {
	if input == nil || input.Turn == nil {
		return errors.New("input and turn cannot be nil")
	}

	if input.Turn.GameID == "" {
		return errors.New("turn game ID cannot be empty")
	}

	turnJSON, err := json.Marshal(input.Turn)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	key := turnsKey(input.Turn.GameID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, turnJSON)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}

	return nil
}

// GetTurns retrieves the turn history of a game from Redis
func (r *redisRepository) GetTurns(ctx context.Context, input *GetTurnsInput) (*GetTurnsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	entries, err := r.client.LRange(ctx, turnsKey(input.GameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get turns: %w", err)
	}

	turns := make([]*models.Turn, 0, len(entries))
	for i, entry := range entries {
		var turn models.Turn
		if err := json.Unmarshal([]byte(entry), &turn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn %d: %w", i, err)
		}
		turns = append(turns, &turn)
	}

	return &GetTurnsOutput{
		Turns: turns,
	}, nil
}
