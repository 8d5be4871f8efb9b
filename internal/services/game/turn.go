package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/KirkDiggler/farkle/internal/scoring"
)

// playTurn drives a turn from its first roll until it is banked or farkled.
// Points are not applied to the player here.
func (s *service) playTurn(ctx context.Context, game *models.Game, player *models.Player, turn *models.Turn, decider Decider, listener Listener) error {
	forced := false

	for {
		values := s.diceRoller.RollDice(turn.DiceRemaining)
		if len(values) != turn.DiceRemaining {
			return fmt.Errorf("%w: wanted %d dice, got %d", ErrInvalidRoll, turn.DiceRemaining, len(values))
		}
		if err := scoring.Validate(values); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRoll, err)
		}

		result := scoring.Score(values)
		roll := &models.Roll{
			Dice:     values,
			Score:    result.Score,
			Consumed: result.Consumed,
			Forced:   forced,
		}
		turn.Rolls = append(turn.Rolls, roll)

		if result.Farkle() {
			roll.Farkle = true
			turn.Forfeited = turn.RunningScore
			turn.RunningScore = 0
			turn.State = models.TurnStateFarkled

			log.Debug().
				Str("game_id", game.ID).
				Str("player_id", player.ID).
				Ints("dice", values).
				Int("forfeited", turn.Forfeited).
				Msg("farkle")

			listener.RollMade(ctx, &RollEvent{Game: game, Player: player, Turn: turn, Roll: roll})
			return nil
		}

		turn.RunningScore += result.Score
		turn.DiceRemaining -= len(result.Consumed)
		if turn.DiceRemaining == 0 {
			turn.DiceRemaining = game.Rules.DiceCount
			roll.HotDice = true
		}
		turn.State = models.TurnStateScored

		mustRoll := !player.CanHold(turn.RunningScore, game.Rules.EntryThreshold)
		listener.RollMade(ctx, &RollEvent{Game: game, Player: player, Turn: turn, Roll: roll, MustRoll: mustRoll})

		if mustRoll {
			forced = true
			turn.State = models.TurnStateRolling
			continue
		}

		decision, err := decider.Decide(ctx, &DecideInput{
			Game:   game,
			Player: player,
			Turn:   turn,
		})
		if err != nil {
			return fmt.Errorf("failed to get decision: %w", err)
		}

		if decision != DecisionRoll {
			turn.State = models.TurnStateBanked
			return nil
		}

		forced = false
		turn.State = models.TurnStateRolling
	}
}

type nopListener struct{}

func (nopListener) RollMade(context.Context, *RollEvent)                {}
func (nopListener) TurnEnded(context.Context, *TurnEndedEvent)          {}
func (nopListener) FinalRoundStarted(context.Context, *FinalRoundEvent) {}
