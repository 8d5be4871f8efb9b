package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/farkle/internal/dice Roller

import (
	"math/rand"

	"lukechampine.com/frand"
)

// Sides is the number of faces on a Farkle die
const Sides = 6

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a single value in [1, sides]
	Roll(sides int) int

	// RollDice rolls count six-sided dice
	RollDice(count int) []int
}

// Config for the dice cup
type Config struct {
	// Optional seed. Zero means unseeded, cryptographically random rolls.
	Seed int64
}

// Cup rolls dice from a single random source.
type Cup struct {
	intn func(n int) int
}

// New creates a dice cup. A non-zero seed makes every roll reproducible.
func New(cfg *Config) *Cup {
	if cfg != nil && cfg.Seed != 0 {
		random := rand.New(rand.NewSource(cfg.Seed))
		return &Cup{intn: random.Intn}
	}

	return &Cup{intn: frand.Intn}
}

// Roll generates a random dice roll with the specified number of sides
func (c *Cup) Roll(sides int) int {
	if sides < 1 {
		sides = Sides
	}
	return c.intn(sides) + 1
}

// RollDice rolls count six-sided dice. A non-positive count yields no dice.
func (c *Cup) RollDice(count int) []int {
	if count <= 0 {
		return []int{}
	}

	values := make([]int, count)
	for i := range values {
		values[i] = c.Roll(Sides)
	}
	return values
}
