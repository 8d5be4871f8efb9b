package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator hands out identifiers for games and players.
type Generator interface {
	NewID() string
}

// Random generates version 4 UUIDs.
type Random struct{}

// New returns a UUID backed generator
func New() *Random {
	return &Random{}
}

// NewID returns a new random UUID string
func (r *Random) NewID() string {
	return uuid.NewString()
}

// Sequence generates predictable IDs of the form "<prefix>-<n>", starting at 1.
type Sequence struct {
	Prefix string
	next   int
}

// NewID returns the next ID in the sequence
func (s *Sequence) NewID() string {
	s.next++
	return fmt.Sprintf("%s-%d", s.Prefix, s.next)
}
