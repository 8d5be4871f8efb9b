package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/KirkDiggler/farkle/internal/common/clock"
	"github.com/KirkDiggler/farkle/internal/common/uuid"
	"github.com/KirkDiggler/farkle/internal/dice"
	"github.com/KirkDiggler/farkle/internal/models"
	gameRepo "github.com/KirkDiggler/farkle/internal/repositories/game"
)

// service implements the Service interface
type service struct {
	rules         models.Rules
	gameRepo      gameRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.Generator
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	rules := cfg.Rules
	if rules == (models.Rules{}) {
		rules = models.DefaultRules()
	}
	if err := validateRules(rules); err != nil {
		return nil, err
	}

	return &service{
		rules:         rules,
		gameRepo:      cfg.GameRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

func validateRules(rules models.Rules) error {
	if rules.EntryThreshold < 0 || rules.WinningScore <= 0 {
		return fmt.Errorf("%w: thresholds must be positive", ErrInvalidRules)
	}

	if rules.DiceCount < 1 || rules.DiceCount > dice.Sides {
		return fmt.Errorf("%w: dice count must be between 1 and %d", ErrInvalidRules, dice.Sides)
	}

	return nil
}

// NewGame seats the players and stores a fresh game
func (s *service) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	names := input.PlayerNames
	if len(names) == 0 {
		names = lo.Times(max(input.PlayerCount, 0), func(i int) string {
			return fmt.Sprintf("Player %d", i+1)
		})
	}

	if len(names) < MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	rules := s.rules
	if input.Rules != nil {
		if err := validateRules(*input.Rules); err != nil {
			return nil, err
		}
		rules = *input.Rules
	}

	players := make([]*models.Player, len(names))
	for seat, name := range names {
		players[seat] = &models.Player{
			ID:   s.uuidGenerator.NewID(),
			Name: name,
			Seat: seat,
		}
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuidGenerator.NewID(),
		Status:    models.GameStatusActive,
		Rules:     rules,
		Players:   players,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Info().
		Str("game_id", game.ID).
		Int("players", len(players)).
		Int("entry_threshold", rules.EntryThreshold).
		Int("winning_score", rules.WinningScore).
		Msg("game created")

	return &NewGameOutput{
		Game: game,
	}, nil
}

// PlayTurn plays the active player's turn, applies the result and advances
// play to the next seat
func (s *service) PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Decider == nil {
		return nil, ErrNilDecider
	}

	listener := input.Listener
	if listener == nil {
		listener = nopListener{}
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status.IsCompleted() {
		return nil, ErrGameOver
	}

	player := game.ActivePlayer()
	game.TurnCount++

	turn := &models.Turn{
		GameID:        game.ID,
		PlayerID:      player.ID,
		Sequence:      game.TurnCount,
		State:         models.TurnStateRolling,
		DiceRemaining: game.Rules.DiceCount,
		Rolls:         []*models.Roll{},
	}

	if err := s.playTurn(ctx, game, player, turn, input.Decider, listener); err != nil {
		return nil, err
	}

	justEntered := s.applyTurn(game, player, turn)
	listener.TurnEnded(ctx, &TurnEndedEvent{
		Game:        game,
		Player:      player,
		Turn:        turn,
		JustEntered: justEntered,
	})

	output := &PlayTurnOutput{
		Game:   game,
		Player: player,
		Turn:   turn,
	}

	if !game.FinalRound && player.Score >= game.Rules.WinningScore {
		game.FinalRound = true
		game.FinalRoundSeat = player.Seat
		game.Status = models.GameStatusFinalRound
		output.FinalRoundStarted = true

		log.Info().
			Str("game_id", game.ID).
			Str("player_id", player.ID).
			Int("score", player.Score).
			Msg("final round triggered")

		listener.FinalRoundStarted(ctx, &FinalRoundEvent{
			Game:    game,
			Trigger: player,
		})
	}

	game.ActiveIndex = (game.ActiveIndex + 1) % len(game.Players)

	// Play is back with whoever triggered the final round: everyone else has
	// had their last turn
	if game.FinalRound && game.ActiveIndex == game.FinalRoundSeat {
		game.Status = models.GameStatusCompleted
		game.WinnerID = rankPlayers(game.Players)[0].PlayerID
		output.GameOver = true

		log.Info().
			Str("game_id", game.ID).
			Str("winner_id", game.WinnerID).
			Int("turns", game.TurnCount).
			Msg("game completed")
	}

	game.UpdatedAt = turn.EndedAt

	if err := s.gameRepo.AppendTurn(ctx, &gameRepo.AppendTurnInput{Turn: turn}); err != nil {
		return nil, fmt.Errorf("failed to record turn: %w", err)
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return output, nil
}

// applyTurn moves a finished turn's points onto the player. It reports
// whether the player entered the game with this turn.
func (s *service) applyTurn(game *models.Game, player *models.Player, turn *models.Turn) bool {
	justEntered := false
	if turn.State == models.TurnStateBanked {
		player.Score += turn.RunningScore
		justEntered = !player.Entered
		player.Entered = true
	}

	player.TurnsPlayed++
	if player.ReachedWinningAt == 0 && player.Score >= game.Rules.WinningScore {
		player.ReachedWinningAt = turn.Sequence
	}

	turn.TotalAfter = player.Score
	turn.EndedAt = s.clock.Now()

	log.Debug().
		Str("game_id", game.ID).
		Str("player_id", player.ID).
		Str("outcome", string(turn.State)).
		Int("points", turn.Points()).
		Int("total", player.Score).
		Int("rolls", len(turn.Rolls)).
		Msg("turn ended")

	return justEntered
}

// Play plays turns until the game is over
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		turnOutput, err := s.PlayTurn(ctx, &PlayTurnInput{
			GameID:   input.GameID,
			Decider:  input.Decider,
			Listener: input.Listener,
		})
		if err != nil {
			return nil, err
		}

		if turnOutput.GameOver {
			standings := rankPlayers(turnOutput.Game.Players)
			return &PlayOutput{
				Game:      turnOutput.Game,
				Standings: standings,
				Winner:    standings[0],
			}, nil
		}
	}
}

// GetStandings ranks the players of a game
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	standings := rankPlayers(game.Players)
	output := &GetStandingsOutput{
		Standings: standings,
	}
	if game.Status.IsCompleted() {
		output.Winner = standings[0]
	}

	return output, nil
}

// GetTurnHistory returns the finished turns of a game
func (s *service) GetTurnHistory(ctx context.Context, input *GetTurnHistoryInput) (*GetTurnHistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if _, err := s.getGame(ctx, input.GameID); err != nil {
		return nil, err
	}

	turnsOutput, err := s.gameRepo.GetTurns(ctx, &gameRepo.GetTurnsInput{GameID: input.GameID})
	if err != nil {
		return nil, fmt.Errorf("failed to get turns: %w", err)
	}

	turns := turnsOutput.Turns
	if input.PlayerID != "" {
		turns = lo.Filter(turns, func(t *models.Turn, _ int) bool {
			return t.PlayerID == input.PlayerID
		})
	}

	return &GetTurnHistoryOutput{
		Turns: turns,
	}, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	if gameID == "" {
		return nil, ErrEmptyGameID
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}
