package game

import (
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/KirkDiggler/farkle/internal/models"
)

// rankPlayers orders players for the scoreboard: highest score first, ties
// go to whoever reached the winning score earliest, then to the lower seat.
func rankPlayers(players []*models.Player) []*Standing {
	standings := lo.Map(players, func(p *models.Player, _ int) *Standing {
		return &Standing{
			PlayerID:         p.ID,
			PlayerName:       p.Name,
			Seat:             p.Seat,
			Score:            p.Score,
			Entered:          p.Entered,
			TurnsPlayed:      p.TurnsPlayed,
			ReachedWinningAt: p.ReachedWinningAt,
		}
	})

	slices.SortStableFunc(standings, func(a, b *Standing) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(reachedKey(a), reachedKey(b)); c != 0 {
			return c
		}
		return cmp.Compare(a.Seat, b.Seat)
	})

	for i, standing := range standings {
		standing.Rank = i + 1
	}

	return standings
}

// reachedKey sorts players who never reached the winning score last
func reachedKey(s *Standing) int {
	if s.ReachedWinningAt == 0 {
		return math.MaxInt
	}
	return s.ReachedWinningAt
}
