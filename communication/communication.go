// Package communication defines the wire format for playing over HTTP:
// a serializable view of the game, encoded actions, and the chooser
// protocol a decision server implements.
package communication

import (
	"golang.org/x/exp/rand"
)

// Chooser picks one of the offered actions by index into the list.
type Chooser interface {
	Choose(view StateView, actions []ActionMsg, descriptions []string) (int, error)
}

// RandomChooser picks uniformly among the offered actions. It works on
// the wire types alone, so it can serve remote games without access to
// the engine's state.
type RandomChooser struct {
	rng *rand.Rand
}

func NewRandomChooser(seed uint64) *RandomChooser {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return &RandomChooser{rng: rand.New(src)}
}

func (c *RandomChooser) Choose(view StateView, actions []ActionMsg, descriptions []string) (int, error) {
	if len(actions) == 0 {
		return 0, ErrNoChoices
	}
	return c.rng.Intn(len(actions)), nil
}
