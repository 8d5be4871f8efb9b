package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/KirkDiggler/farkle/internal/services/game"
	"github.com/KirkDiggler/farkle/internal/services/messaging"
)

// ConsoleError is a custom error type for console input errors
type ConsoleError string

// Error implements the error interface
func (e ConsoleError) Error() string {
	return string(e)
}

const (
	ErrInvalidPlayerCount ConsoleError = "player count must be a whole number of at least 2"
	ErrInvalidDecision    ConsoleError = "answer roll or hold"
	ErrInputClosed        ConsoleError = "input closed"
)

// LineReader reads one line of user input after showing a prompt.
// *readline.Instance satisfies it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Config holds the configuration for the console handler
type Config struct {
	Reader LineReader
	Writer io.Writer

	GameService      game.Service
	MessagingService messaging.Service

	// RulesFile is shown before the game starts. It may be missing.
	RulesFile string

	// PromptAttempts bounds re-prompting on malformed input
	PromptAttempts uint
}

// Handler plays a game on a text console. It is the game's Decider and
// Listener.
type Handler struct {
	reader    LineReader
	out       io.Writer
	printer   *message.Printer
	games     game.Service
	messages  messaging.Service
	rulesFile string
	attempts  uint
}

// New creates a new console handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Reader == nil {
		return nil, errors.New("reader cannot be nil")
	}

	if cfg.Writer == nil {
		return nil, errors.New("writer cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Handler{
		reader:    cfg.Reader,
		out:       cfg.Writer,
		printer:   message.NewPrinter(language.English),
		games:     cfg.GameService,
		messages:  cfg.MessagingService,
		rulesFile: cfg.RulesFile,
		attempts:  max(cfg.PromptAttempts, 1),
	}, nil
}

// RunInput is the input for Run
type RunInput struct {
	// PlayerCount skips the prompt when at least 2
	PlayerCount int

	// Rules overrides the game service defaults
	Rules *models.Rules
}

// RunOutput is the output for Run
type RunOutput struct {
	Game      *models.Game
	Standings []*game.Standing
	Winner    *game.Standing

	// Abandoned is set when input closed before the game finished
	Abandoned bool
}

// Run shows the rules, seats the players and plays a game to the end
func (h *Handler) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	h.ShowRules(ctx)

	count := input.PlayerCount
	if count < game.MinPlayers {
		var err error
		count, err = h.PromptPlayerCount(ctx)
		if err != nil {
			return nil, err
		}
	}

	created, err := h.games.NewGame(ctx, &game.NewGameInput{
		PlayerCount: count,
		Rules:       input.Rules,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	rules := created.Game.Rules
	h.printer.Fprintf(h.out, "\nStarting a game for %d players. Get on the board with %d, first to %d wins.\n",
		count, rules.EntryThreshold, rules.WinningScore)

	played, err := h.games.Play(ctx, &game.PlayInput{
		GameID:   created.Game.ID,
		Decider:  h,
		Listener: h,
	})
	if err != nil {
		if errors.Is(err, ErrInputClosed) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(h.out, "\nGame abandoned.")
			log.Info().Str("game_id", created.Game.ID).Msg("game abandoned")
			return &RunOutput{
				Game:      created.Game,
				Abandoned: true,
			}, nil
		}
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	h.renderGameOver(ctx, played)

	return &RunOutput{
		Game:      played.Game,
		Standings: played.Standings,
		Winner:    played.Winner,
	}, nil
}
