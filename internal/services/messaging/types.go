package messaging

import (
	"github.com/KirkDiggler/farkle/internal/dice"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// Error types understood by GetErrorMessage
const (
	ErrorTypeInvalidPlayerCount = "invalid_player_count"
	ErrorTypeInvalidDecision    = "invalid_decision"
	ErrorTypeRulesUnavailable   = "rules_unavailable"
)

// GetRollMessageInput contains the input for GetRollMessage
type GetRollMessageInput struct {
	PlayerName string

	// Score is what the roll itself was worth
	Score int

	// RunningScore is the turn total after the roll
	RunningScore int

	// Forfeited is the turn total lost when the roll farkled
	Forfeited int

	// DiceRemaining is how many dice the next roll throws
	DiceRemaining int

	Farkle   bool
	HotDice  bool
	MustRoll bool
}

// GetRollMessageOutput contains the output for GetRollMessage
type GetRollMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetTurnEndMessageInput contains the input for GetTurnEndMessage
type GetTurnEndMessageInput struct {
	PlayerName string
	Points     int
	Total      int
	Farkled    bool

	// JustEntered indicates this turn took the player past the entry threshold
	JustEntered bool
}

// GetTurnEndMessageOutput contains the output for GetTurnEndMessage
type GetTurnEndMessageOutput struct {
	Message string
}

// GetFinalRoundMessageInput contains the input for GetFinalRoundMessage
type GetFinalRoundMessageInput struct {
	PlayerName   string
	Score        int
	WinningScore int
}

// GetFinalRoundMessageOutput contains the output for GetFinalRoundMessage
type GetFinalRoundMessageOutput struct {
	Title   string
	Message string
}

// GetGameOverMessageInput contains the input for GetGameOverMessage
type GetGameOverMessageInput struct {
	WinnerName string
	Score      int
}

// GetGameOverMessageOutput contains the output for GetGameOverMessage
type GetGameOverMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Roller picks among equivalent messages
	Roller dice.Roller
}
