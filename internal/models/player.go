package models

// Player represents a participant in a game
type Player struct {
	// ID is the unique identifier of the player
	ID string

	// Name is the display name of the player
	Name string

	// Seat is the player's position in turn order
	Seat int

	// Score is the banked total. It never decreases.
	Score int

	// Entered is set once the player banks a turn that takes them to the
	// entry threshold. It never reverts.
	Entered bool

	// TurnsPlayed counts completed turns, farkles included
	TurnsPlayed int

	// ReachedWinningAt is the turn sequence at which Score first reached the
	// winning score, zero if it never has
	ReachedWinningAt int
}

// CanHold reports whether the player may bank a running score. A player who
// has not entered must keep rolling until total plus running score meets the
// entry threshold.
func (p *Player) CanHold(running, entryThreshold int) bool {
	return p.Entered || p.Score+running >= entryThreshold
}
