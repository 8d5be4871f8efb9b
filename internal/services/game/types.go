package game

import (
	"github.com/KirkDiggler/farkle/internal/common/clock"
	"github.com/KirkDiggler/farkle/internal/common/uuid"
	"github.com/KirkDiggler/farkle/internal/dice"
	"github.com/KirkDiggler/farkle/internal/models"
	gameRepo "github.com/KirkDiggler/farkle/internal/repositories/game"
)

// MinPlayers is the smallest table a game can be played at
const MinPlayers = 2

// Decision is the active player's choice after a scoring roll
type Decision string

const (
	// DecisionRoll throws the remaining dice again
	DecisionRoll Decision = "roll"

	// DecisionHold banks the running score and ends the turn
	DecisionHold Decision = "hold"
)

// Config holds configuration for the game service
type Config struct {
	// Rules used when NewGame is not given any. Zero value means DefaultRules.
	Rules models.Rules

	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

// NewGameInput contains parameters for creating a new game
type NewGameInput struct {
	// PlayerNames seats one player per name, in order
	PlayerNames []string

	// PlayerCount seats that many players named "Player N". Ignored when
	// PlayerNames is set.
	PlayerCount int

	// Rules override the service defaults when set
	Rules *models.Rules
}

// NewGameOutput contains the result of creating a new game
type NewGameOutput struct {
	Game *models.Game
}

// PlayTurnInput contains parameters for playing one turn
type PlayTurnInput struct {
	GameID string

	// Decider answers roll or hold for the active player
	Decider Decider

	// Listener is optional
	Listener Listener
}

// PlayTurnOutput contains the result of playing one turn
type PlayTurnOutput struct {
	// Game is the state after the turn was applied
	Game *models.Game

	// Player is the player who took the turn, after scoring
	Player *models.Player

	// Turn is the finished turn
	Turn *models.Turn

	// FinalRoundStarted indicates this turn took the player to the winning score first
	FinalRoundStarted bool

	// GameOver indicates this was the last turn of the game
	GameOver bool
}

// PlayInput contains parameters for playing a whole game
type PlayInput struct {
	GameID   string
	Decider  Decider
	Listener Listener
}

// PlayOutput contains the result of a finished game
type PlayOutput struct {
	Game      *models.Game
	Standings []*Standing
	Winner    *Standing
}

// GetStandingsInput contains parameters for ranking a game's players
type GetStandingsInput struct {
	GameID string
}

// GetStandingsOutput contains the ranked players
type GetStandingsOutput struct {
	Standings []*Standing

	// Winner is only set once the game is completed
	Winner *Standing
}

// GetTurnHistoryInput contains parameters for reading turn history
type GetTurnHistoryInput struct {
	GameID string

	// PlayerID limits the history to one player when set
	PlayerID string
}

// GetTurnHistoryOutput contains finished turns in play order
type GetTurnHistoryOutput struct {
	Turns []*models.Turn
}

// Standing is one row of the scoreboard
type Standing struct {
	Rank             int
	PlayerID         string
	PlayerName       string
	Seat             int
	Score            int
	Entered          bool
	TurnsPlayed      int
	ReachedWinningAt int
}

// DecideInput is what a Decider sees when asked to roll or hold
type DecideInput struct {
	Game   *models.Game
	Player *models.Player
	Turn   *models.Turn
}

// RollEvent describes a scored roll
type RollEvent struct {
	Game   *models.Game
	Player *models.Player
	Turn   *models.Turn
	Roll   *models.Roll

	// MustRoll indicates the player has not entered yet and will roll again
	// without being asked
	MustRoll bool
}

// TurnEndedEvent describes a finished turn
type TurnEndedEvent struct {
	Game   *models.Game
	Player *models.Player
	Turn   *models.Turn

	// JustEntered indicates this turn took the player past the entry threshold
	JustEntered bool
}

// FinalRoundEvent describes the start of the final round
type FinalRoundEvent struct {
	Game    *models.Game
	Trigger *models.Player
}
