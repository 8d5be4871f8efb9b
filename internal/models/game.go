package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates players are taking turns
	GameStatusActive GameStatus = "active"

	// GameStatusFinalRound indicates a player reached the winning score and
	// everyone else is taking their last turn
	GameStatusFinalRound GameStatus = "final_round"

	// GameStatusCompleted indicates the game is over
	GameStatusCompleted GameStatus = "completed"
)

// IsCompleted reports whether no more turns can be played
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// IsFinalRound reports whether the final round is underway
func (s GameStatus) IsFinalRound() bool {
	return s == GameStatusFinalRound
}

// Rules holds the thresholds a game is played with
type Rules struct {
	// EntryThreshold is the score a player must bank at once before their
	// points count
	EntryThreshold int `json:"entry_threshold" yaml:"entry_threshold"`

	// WinningScore triggers the final round once a player's total reaches it
	WinningScore int `json:"winning_score" yaml:"winning_score"`

	// DiceCount is the number of dice rolled at the start of a turn
	DiceCount int `json:"dice_count" yaml:"dice_count"`
}

// DefaultRules returns the standard 1000 / 10000 / six dice rules
func DefaultRules() Rules {
	return Rules{
		EntryThreshold: 1000,
		WinningScore:   10000,
		DiceCount:      6,
	}
}

// Game represents a Farkle game session
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current state of the game
	Status GameStatus

	// Rules are the thresholds this game is played with
	Rules Rules

	// Players in seat order. A player's Seat is its index here.
	Players []*Player

	// ActiveIndex is the seat of the player whose turn is next
	ActiveIndex int

	// FinalRound is set once a player first reaches the winning score
	FinalRound bool

	// FinalRoundSeat is the seat of the player who triggered the final round
	FinalRoundSeat int

	// WinnerID is set when the game completes
	WinnerID string

	// TurnCount is the number of turns started so far
	TurnCount int

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// ActivePlayer returns the player whose turn is next
func (g *Game) ActivePlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.ActiveIndex%len(g.Players)]
}

// PlayerByID looks up a player by ID
func (g *Game) PlayerByID(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
