package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/farkle/internal/services/game Service,Decider,Listener

import "context"

// Service defines the interface for game operations
type Service interface {
	// NewGame seats the players and stores a fresh game
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// PlayTurn plays the active player's turn to completion
	PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error)

	// Play plays turns until the game is over
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// GetStandings ranks the players of a game
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// GetTurnHistory returns the finished turns of a game
	GetTurnHistory(ctx context.Context, input *GetTurnHistoryInput) (*GetTurnHistoryOutput, error)
}

// Decider chooses whether the active player keeps rolling or banks.
// It is only consulted when holding is allowed.
type Decider interface {
	Decide(ctx context.Context, input *DecideInput) (Decision, error)
}

// Listener is told about turn progress as it happens
type Listener interface {
	// RollMade is called after every roll has been scored
	RollMade(ctx context.Context, event *RollEvent)

	// TurnEnded is called once a turn has been banked or farkled
	TurnEnded(ctx context.Context, event *TurnEndedEvent)

	// FinalRoundStarted is called when a player first reaches the winning score
	FinalRoundStarted(ctx context.Context, event *FinalRoundEvent)
}
