package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/farkle/internal/common/clock"
	"github.com/KirkDiggler/farkle/internal/common/uuid"
	"github.com/KirkDiggler/farkle/internal/config"
	"github.com/KirkDiggler/farkle/internal/dice"
	"github.com/KirkDiggler/farkle/internal/handlers/console"
	gameRepo "github.com/KirkDiggler/farkle/internal/repositories/game"
	gameService "github.com/KirkDiggler/farkle/internal/services/game"
	"github.com/KirkDiggler/farkle/internal/services/messaging"
)

func main() {
	os.Exit(run())
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func newGameRepo(cfg *config.Config) (gameRepo.Repository, error) {
	if cfg.RedisAddr == "" {
		return gameRepo.NewMemory(), nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	repo, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.SnapshotTTL,
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("addr", cfg.RedisAddr).Msg("saving game snapshots to redis")
	return repo, nil
}

// newRollers returns the dice for play and a separate cup for picking
// messages, so a seeded game replays the same whatever prose is shown.
func newRollers(cfg *config.Config) (play, flavour dice.Roller) {
	return dice.New(&dice.Config{Seed: cfg.Seed}), dice.New(nil)
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 1
	}
	setupLogging(cfg.Debug)

	if cfg.Players != 0 && cfg.Players < gameService.MinPlayers {
		log.Error().Int("players", cfg.Players).Msg("FARKLE_PLAYERS must be at least 2")
		return 1
	}

	rules, err := config.LoadRuleset(cfg.RulesetFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to load ruleset")
		return 1
	}

	repo, err := newGameRepo(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to create game repository")
		return 1
	}

	roller, flavour := newRollers(cfg)

	games, err := gameService.New(&gameService.Config{
		Rules:         rules,
		GameRepo:      repo,
		DiceRoller:    roller,
		Clock:         clock.System{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create game service")
		return 1
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{Roller: flavour})
	if err != nil {
		log.Error().Err(err).Msg("failed to create messaging service")
		return 1
	}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:         cfg.HistoryFile,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to open console")
		return 1
	}
	defer rl.Close()

	handler, err := console.New(&console.Config{
		Reader:           rl,
		Writer:           rl.Stdout(),
		GameService:      games,
		MessagingService: messages,
		RulesFile:        cfg.RulesFile,
		PromptAttempts:   cfg.PromptAttempts,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create console handler")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := handler.Run(ctx, &console.RunInput{PlayerCount: cfg.Players})
	if err != nil {
		log.Error().Err(err).Msg("game ended with an error")
		return 1
	}

	if !out.Abandoned {
		log.Info().Str("game_id", out.Game.ID).Str("winner", out.Winner.PlayerName).Msg("game over")
	}

	return 0
}
