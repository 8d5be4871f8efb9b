package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound     GameError = "game not found"
	ErrGameOver         GameError = "game is already over"
	ErrNotEnoughPlayers GameError = "a game needs at least two players"
	ErrInvalidRules     GameError = "invalid game rules"
	ErrInvalidRoll      GameError = "dice roller produced an invalid roll"
	ErrNilDecider       GameError = "decider cannot be nil"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilGameRepo      GameError = "game repository cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrEmptyGameID      GameError = "game ID cannot be empty"
)
