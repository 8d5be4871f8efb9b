package game

import (
	"errors"

	"github.com/KirkDiggler/farkle/internal/models"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type AppendTurnInput struct {
	Turn *models.Turn
}

type GetTurnsInput struct {
	GameID string
}

type GetTurnsOutput struct {
	Turns []*models.Turn
}
