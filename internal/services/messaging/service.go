package messaging

import (
	"context"
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/farkle/internal/dice"
)

// service implements the Service interface
type service struct {
	roller  dice.Roller
	printer *message.Printer
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	if config.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	return &service{
		roller:  config.Roller,
		printer: message.NewPrinter(language.English),
	}, nil
}

// pick returns one of messages at random
func (s *service) pick(messages []string) string {
	return messages[s.roller.Roll(len(messages))-1]
}

// GetRollMessage returns a comment on a single roll
func (s *service) GetRollMessage(ctx context.Context, input *GetRollMessageInput) (*GetRollMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	p := s.printer
	var messages []string
	tone := ToneNeutral

	switch {
	case input.Farkle && input.Forfeited > 0:
		tone = ToneFunny
		messages = []string{
			p.Sprintf("FARKLE! %s watches %d points roll off the table.", input.PlayerName, input.Forfeited),
			p.Sprintf("Farkle! %d points, gone. %s should have held.", input.Forfeited, input.PlayerName),
			p.Sprintf("The dice giveth and the dice taketh away. %s loses %d.", input.PlayerName, input.Forfeited),
		}
	case input.Farkle:
		tone = ToneFunny
		messages = []string{
			p.Sprintf("FARKLE! Nothing scores for %s.", input.PlayerName),
			p.Sprintf("Farkle! %s comes up empty.", input.PlayerName),
			p.Sprintf("Not a single point. Farkle for %s.", input.PlayerName),
		}
	case input.HotDice:
		tone = ToneCelebration
		messages = []string{
			p.Sprintf("HOT DICE! Every die scored. %s picks up all %d again.", input.PlayerName, input.DiceRemaining),
			p.Sprintf("Hot dice! %s is on %d and has a full hand to throw.", input.PlayerName, input.RunningScore),
			p.Sprintf("All dice scored! %s keeps the streak alive at %d.", input.PlayerName, input.RunningScore),
		}
	case input.MustRoll:
		tone = ToneEncouraging
		messages = []string{
			p.Sprintf("%d this turn, not enough to get on the board yet. Keep rolling!", input.RunningScore),
			p.Sprintf("%s needs more to enter the game. Roll again!", input.PlayerName),
			p.Sprintf("Still short of the entry score with %d. The dice go again.", input.RunningScore),
		}
	default:
		messages = []string{
			p.Sprintf("%d points! %s is on %d this turn.", input.Score, input.PlayerName, input.RunningScore),
			p.Sprintf("That's %d. Turn total: %d.", input.Score, input.RunningScore),
			p.Sprintf("%s scores %d, running total %d.", input.PlayerName, input.Score, input.RunningScore),
		}
	}

	return &GetRollMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetTurnEndMessage returns a comment on a finished turn
func (s *service) GetTurnEndMessage(ctx context.Context, input *GetTurnEndMessageInput) (*GetTurnEndMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	p := s.printer
	var messages []string

	switch {
	case input.Farkled:
		messages = []string{
			p.Sprintf("%s ends the turn with nothing and stays on %d.", input.PlayerName, input.Total),
			p.Sprintf("No points banked. %s still has %d.", input.PlayerName, input.Total),
		}
	case input.JustEntered:
		messages = []string{
			p.Sprintf("%s is on the board with %d!", input.PlayerName, input.Total),
			p.Sprintf("Welcome to the game, %s! %d banked.", input.PlayerName, input.Points),
		}
	default:
		messages = []string{
			p.Sprintf("%s banks %d and now has %d.", input.PlayerName, input.Points, input.Total),
			p.Sprintf("%d banked. %s is up to %d.", input.Points, input.PlayerName, input.Total),
		}
	}

	return &GetTurnEndMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetFinalRoundMessage returns the announcement for the start of the final round
func (s *service) GetFinalRoundMessage(ctx context.Context, input *GetFinalRoundMessageInput) (*GetFinalRoundMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	p := s.printer
	messages := []string{
		p.Sprintf("%s has reached %d! Everyone else gets one last turn.", input.PlayerName, input.Score),
		p.Sprintf("%d points for %s. This is the final round, make it count.", input.Score, input.PlayerName),
		p.Sprintf("%s crossed %d. One more turn each to catch up!", input.PlayerName, input.WinningScore),
	}

	return &GetFinalRoundMessageOutput{
		Title:   "FINAL ROUND",
		Message: s.pick(messages),
	}, nil
}

// GetGameOverMessage returns the announcement of the winner
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	p := s.printer
	messages := []string{
		p.Sprintf("%s wins with %d points!", input.WinnerName, input.Score),
		p.Sprintf("Game over! %s takes it with %d.", input.WinnerName, input.Score),
		p.Sprintf("The dice have spoken: %s is the champion at %d.", input.WinnerName, input.Score),
	}

	return &GetGameOverMessageOutput{
		Title:   "GAME OVER",
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneNeutral
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeInvalidPlayerCount:
		messages = []string{
			"Farkle needs at least two players. Enter a whole number, 2 or more.",
			"That's not a table. Please enter a number of players, at least 2.",
		}
	case ErrorTypeInvalidDecision:
		messages = []string{
			"Please answer roll or hold.",
			"Didn't catch that. Type roll (r) or hold (h).",
		}
	case ErrorTypeRulesUnavailable:
		messages = []string{
			"The rules are missing, but the dice are not. Let's play.",
		}
	default:
		messages = []string{
			"Something went wrong. The dice are confused.",
			"Oops! That didn't work.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
