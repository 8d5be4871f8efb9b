// Package scoring maps a roll of Farkle dice to points.
//
// Policy: every complete triple of a face scores face×100, except a triple
// of ones which scores 1000. Six of a face forms two triples. Ones and fives
// left over after forming triples score 100 and 50 each. Any other leftover
// die scores nothing and is not consumed.
package scoring

import (
	"errors"
	"slices"

	"github.com/samber/lo"
)

const (
	minFace    = 1
	maxFace    = 6
	tripleSize = 3

	singleOnePoints  = 100
	singleFivePoints = 50
	tripleOnesPoints = 1000
	tripleMultiplier = 100
)

// ErrInvalidDie is returned by Validate for a face outside [1,6]
var ErrInvalidDie = errors.New("die value must be between 1 and 6")

// ErrTooManyDice is returned by Validate when more than six dice are given
var ErrTooManyDice = errors.New("a roll holds at most six dice")

// GroupKind names the scoring combination a group of dice formed
type GroupKind string

const (
	// GroupKindTriple is three dice of the same face
	GroupKindTriple GroupKind = "triple"

	// GroupKindSingle is a lone one or five
	GroupKindSingle GroupKind = "single"
)

// Group is a set of dice that scored together
type Group struct {
	Kind   GroupKind
	Face   int
	Dice   []int
	Points int
}

// Result is the outcome of scoring one roll
type Result struct {
	// Score is the total points of all groups
	Score int

	// Consumed holds every die that contributed to Score, ordered by face
	Consumed []int

	// Residual holds the dice that scored nothing, ordered by face
	Residual []int

	// Groups lists the scoring combinations in face order, triples first
	Groups []Group
}

// Farkle reports whether the roll scored nothing
func (r Result) Farkle() bool {
	return r.Score == 0
}

// Validate checks that dice is a legal roll
func Validate(dice []int) error {
	if len(dice) > maxFace {
		return ErrTooManyDice
	}
	for _, d := range dice {
		if d < minFace || d > maxFace {
			return ErrInvalidDie
		}
	}
	return nil
}

// Score scores a roll. Callers are expected to Validate untrusted input;
// faces outside [1,6] are never counted.
func Score(dice []int) Result {
	counts := lo.CountValues(dice)

	result := Result{
		Consumed: []int{},
		Residual: []int{},
	}
	for face := minFace; face <= maxFace; face++ {
		n := counts[face]

		for ; n >= tripleSize; n -= tripleSize {
			result.add(Group{
				Kind:   GroupKindTriple,
				Face:   face,
				Dice:   slices.Repeat([]int{face}, tripleSize),
				Points: triplePoints(face),
			})
		}

		if points := singlePoints(face); points > 0 {
			for ; n > 0; n-- {
				result.add(Group{
					Kind:   GroupKindSingle,
					Face:   face,
					Dice:   []int{face},
					Points: points,
				})
			}
		}

		result.Residual = append(result.Residual, slices.Repeat([]int{face}, n)...)
	}

	return result
}

func (r *Result) add(g Group) {
	r.Groups = append(r.Groups, g)
	r.Consumed = append(r.Consumed, g.Dice...)
	r.Score += g.Points
}

func triplePoints(face int) int {
	if face == 1 {
		return tripleOnesPoints
	}
	return face * tripleMultiplier
}

func singlePoints(face int) int {
	switch face {
	case 1:
		return singleOnePoints
	case 5:
		return singleFivePoints
	}
	return 0
}
