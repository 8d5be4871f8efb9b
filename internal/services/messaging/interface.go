package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRollMessage returns a comment on a single roll
	GetRollMessage(ctx context.Context, input *GetRollMessageInput) (*GetRollMessageOutput, error)

	// GetTurnEndMessage returns a comment on a finished turn
	GetTurnEndMessage(ctx context.Context, input *GetTurnEndMessageInput) (*GetTurnEndMessageOutput, error)

	// GetFinalRoundMessage returns the announcement for the start of the final round
	GetFinalRoundMessage(ctx context.Context, input *GetFinalRoundMessageInput) (*GetFinalRoundMessageOutput, error)

	// GetGameOverMessage returns the announcement of the winner
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
