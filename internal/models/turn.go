package models

import (
	"time"
)

// TurnState represents where a turn is in its lifecycle
type TurnState string

const (
	// TurnStateRolling indicates dice are about to be thrown
	TurnStateRolling TurnState = "rolling"

	// TurnStateScored indicates the last roll scored and the player may
	// continue or hold
	TurnStateScored TurnState = "scored"

	// TurnStateFarkled indicates the last roll scored nothing and the turn
	// score was lost
	TurnStateFarkled TurnState = "farkled"

	// TurnStateBanked indicates the player held and the running score was
	// added to their total
	TurnStateBanked TurnState = "banked"
)

// IsOver reports whether the turn has ended
func (s TurnState) IsOver() bool {
	return s == TurnStateFarkled || s == TurnStateBanked
}

// Turn is a single player's turn and, once over, its history record
type Turn struct {
	// GameID is the game the turn belongs to
	GameID string

	// PlayerID is the player who took the turn
	PlayerID string

	// Sequence is the 1-based turn number within the game
	Sequence int

	// State is the current state of the turn
	State TurnState

	// RunningScore is the score accumulated this turn. It is zero after a farkle.
	RunningScore int

	// Forfeited is the running score lost to a farkle
	Forfeited int

	// DiceRemaining is the number of dice the next roll will throw
	DiceRemaining int

	// Rolls are every throw made this turn, in order
	Rolls []*Roll

	// TotalAfter is the player's total once the turn ended
	TotalAfter int

	// EndedAt is when the turn ended
	EndedAt time.Time
}

// LastRoll returns the most recent roll of the turn
func (t *Turn) LastRoll() *Roll {
	if len(t.Rolls) == 0 {
		return nil
	}
	return t.Rolls[len(t.Rolls)-1]
}

// Points returns what the turn added to the player's total
func (t *Turn) Points() int {
	if t.State != TurnStateBanked {
		return 0
	}
	return t.RunningScore
}
