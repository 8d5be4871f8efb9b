package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/farkle/internal/models"
)

// memoryRepository implements the Repository interface in process memory.
// Values are stored encoded so callers never share state with the store.
type memoryRepository struct {
	mu    sync.RWMutex
	games map[string][]byte
	turns map[string][][]byte
}

// NewMemory creates an in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games: make(map[string][]byte),
		turns: make(map[string][][]byte),
	}
}

// SaveGame stores a copy of the game
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	data, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[input.Game.ID] = data

	return nil
}

// GetGame returns a copy of the stored game
func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	data, ok := r.games[input.GameID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}

	var game models.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// AppendTurn adds a copy of the turn to the game's history
func (r *memoryRepository) AppendTurn(ctx context.Context, input *AppendTurnInput) error {
	if input == nil || input.Turn == nil {
		return errors.New("input and turn cannot be nil")
	}

	if input.Turn.GameID == "" {
		return errors.New("turn game ID cannot be empty")
	}

	data, err := json.Marshal(input.Turn)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.turns[input.Turn.GameID] = append(r.turns[input.Turn.GameID], data)

	return nil
}

// GetTurns returns copies of the game's turns in play order
func (r *memoryRepository) GetTurns(ctx context.Context, input *GetTurnsInput) (*GetTurnsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	entries := r.turns[input.GameID]
	r.mu.RUnlock()

	turns := make([]*models.Turn, 0, len(entries))
	for i, entry := range entries {
		var turn models.Turn
		if err := json.Unmarshal(entry, &turn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn %d: %w", i, err)
		}
		turns = append(turns, &turn)
	}

	return &GetTurnsOutput{
		Turns: turns,
	}, nil
}
