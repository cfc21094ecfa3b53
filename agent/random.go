package agent

import (
	"golang.org/x/exp/rand"

	"raiders/game"
)

// Random plays a uniformly random legal action.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return &Random{rng: rand.New(src)}
}

func (a *Random) Name() string { return "random" }

func (a *Random) ChooseAction(gs *game.GameState, legal []game.Action) (game.Action, error) {
	if len(legal) == 0 {
		return nil, ErrNoActions
	}
	return legal[a.rng.Intn(len(legal))], nil
}
