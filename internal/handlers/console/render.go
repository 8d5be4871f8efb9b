package console

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/KirkDiggler/farkle/internal/services/game"
	"github.com/KirkDiggler/farkle/internal/services/messaging"
)

// ShowRules prints the rules text. A missing file is logged and play goes on.
func (h *Handler) ShowRules(ctx context.Context) bool {
	if h.rulesFile == "" {
		return false
	}

	data, err := os.ReadFile(h.rulesFile)
	if err != nil {
		log.Warn().Err(err).Str("path", h.rulesFile).Msg("rules unavailable")
		h.showError(ctx, messaging.ErrorTypeRulesUnavailable)
		return false
	}

	fmt.Fprintln(h.out, strings.TrimRight(string(data), "\n"))
	return true
}

// RollMade renders a roll
func (h *Handler) RollMade(ctx context.Context, event *game.RollEvent) {
	dice := strings.Join(lo.Map(event.Roll.Dice, func(d int, _ int) string {
		return fmt.Sprint(d)
	}), " ")

	h.printer.Fprintf(h.out, "%s rolled: %s\n", event.Player.Name, dice)
	if !event.Roll.Farkle {
		h.printer.Fprintf(h.out, "Roll score: %d  Turn total: %d\n", event.Roll.Score, event.Turn.RunningScore)
	}

	out, err := h.messages.GetRollMessage(ctx, &messaging.GetRollMessageInput{
		PlayerName:    event.Player.Name,
		Score:         event.Roll.Score,
		RunningScore:  event.Turn.RunningScore,
		Forfeited:     event.Turn.Forfeited,
		DiceRemaining: event.Turn.DiceRemaining,
		Farkle:        event.Roll.Farkle,
		HotDice:       event.Roll.HotDice,
		MustRoll:      event.MustRoll,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to get roll message")
		return
	}
	fmt.Fprintln(h.out, out.Message)
}

// TurnEnded renders the end of a turn
func (h *Handler) TurnEnded(ctx context.Context, event *game.TurnEndedEvent) {
	out, err := h.messages.GetTurnEndMessage(ctx, &messaging.GetTurnEndMessageInput{
		PlayerName:  event.Player.Name,
		Points:      event.Turn.Points(),
		Total:       event.Player.Score,
		Farkled:     event.Turn.State == models.TurnStateFarkled,
		JustEntered: event.JustEntered,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to get turn end message")
		return
	}
	fmt.Fprintf(h.out, "%s\n\n", out.Message)
}

// FinalRoundStarted announces the final round
func (h *Handler) FinalRoundStarted(ctx context.Context, event *game.FinalRoundEvent) {
	out, err := h.messages.GetFinalRoundMessage(ctx, &messaging.GetFinalRoundMessageInput{
		PlayerName:   event.Trigger.Name,
		Score:        event.Trigger.Score,
		WinningScore: event.Game.Rules.WinningScore,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to get final round message")
		return
	}
	fmt.Fprintf(h.out, "*** %s ***\n%s\n\n", out.Title, out.Message)
}

func (h *Handler) renderGameOver(ctx context.Context, played *game.PlayOutput) {
	out, err := h.messages.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
		WinnerName: played.Winner.PlayerName,
		Score:      played.Winner.Score,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to get game over message")
	} else {
		fmt.Fprintf(h.out, "*** %s ***\n%s\n", out.Title, out.Message)
	}

	fmt.Fprintln(h.out, "\nFinal scores:")
	for _, standing := range played.Standings {
		h.printer.Fprintf(h.out, "%d. %-12s %7d  (%d turns)\n",
			standing.Rank, standing.PlayerName, standing.Score, standing.TurnsPlayed)
	}
}
