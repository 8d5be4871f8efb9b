package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/farkle/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/farkle/internal/models"
)

// Repository defines the interface for game snapshot storage
type Repository interface {
	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// AppendTurn adds a finished turn to the game's history
	AppendTurn(ctx context.Context, input *AppendTurnInput) error

	// GetTurns retrieves a game's turn history in play order
	GetTurns(ctx context.Context, input *GetTurnsInput) (*GetTurnsOutput, error)
}
