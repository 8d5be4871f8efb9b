package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/farkle/internal/services/game"
	"github.com/KirkDiggler/farkle/internal/services/messaging"
)

const (
	playerCountPrompt = "How many players? "
	decisionPrompt    = "Roll again or hold? (roll/hold) "
)

// ParsePlayerCount parses a player count of at least 2
func ParsePlayerCount(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < game.MinPlayers {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlayerCount, strings.TrimSpace(line))
	}
	return n, nil
}

// ParseDecision maps an answer to roll or hold
func ParseDecision(line string) (game.Decision, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "roll", "r", "yes", "y":
		return game.DecisionRoll, nil
	case "hold", "h", "no", "n":
		return game.DecisionHold, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDecision, strings.TrimSpace(line))
	}
}

// PromptPlayerCount asks for the number of players until a valid answer is
// given or the attempts run out
func (h *Handler) PromptPlayerCount(ctx context.Context) (int, error) {
	return retry.DoWithData(
		func() (int, error) {
			line, err := h.readLine(playerCountPrompt)
			if err != nil {
				return 0, retry.Unrecoverable(err)
			}

			n, err := ParsePlayerCount(line)
			if err != nil {
				h.showError(ctx, messaging.ErrorTypeInvalidPlayerCount)
				return 0, err
			}
			return n, nil
		},
		h.retryOptions(ctx)...,
	)
}

// Decide asks the active player whether to roll again. Malformed answers are
// re-prompted and fall back to hold once the attempts run out.
func (h *Handler) Decide(ctx context.Context, input *game.DecideInput) (game.Decision, error) {
	h.printer.Fprintf(h.out, "%s, you have %d on the table and %d dice to throw.\n",
		input.Player.Name, input.Turn.RunningScore, input.Turn.DiceRemaining)

	decision, err := retry.DoWithData(
		func() (game.Decision, error) {
			line, err := h.readLine(decisionPrompt)
			if err != nil {
				return "", retry.Unrecoverable(err)
			}

			decision, err := ParseDecision(line)
			if err != nil {
				h.showError(ctx, messaging.ErrorTypeInvalidDecision)
				return "", err
			}
			return decision, nil
		},
		h.retryOptions(ctx)...,
	)
	if err != nil {
		if errors.Is(err, ErrInvalidDecision) {
			log.Warn().
				Str("player_id", input.Player.ID).
				Uint("attempts", h.attempts).
				Msg("no valid answer, holding")
			fmt.Fprintln(h.out, "Holding.")
			return game.DecisionHold, nil
		}
		return "", err
	}

	return decision, nil
}

func (h *Handler) retryOptions(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(h.attempts),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	}
}

// readLine reads one answer. End of input and interrupts both close input.
func (h *Handler) readLine(prompt string) (string, error) {
	h.reader.SetPrompt(prompt)

	line, err := h.reader.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return line, nil
}

func (h *Handler) showError(ctx context.Context, errorType string) {
	out, err := h.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: errorType})
	if err != nil {
		log.Warn().Err(err).Str("error_type", errorType).Msg("failed to get error message")
		return
	}
	fmt.Fprintln(h.out, out.Message)
}
