package agent

import (
	"golang.org/x/exp/rand"

	"raiders/game"
)

// Greedy raids whenever it can and retrieves its worker when it holds
// none, placing at random otherwise. Raiding on sight drains plunder
// fast, so greedy games reliably reach an end condition.
type Greedy struct {
	rng *rand.Rand
}

func NewGreedy(seed uint64) *Greedy {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return &Greedy{rng: rand.New(src)}
}

func (a *Greedy) Name() string { return "greedy" }

func (a *Greedy) ChooseAction(gs *game.GameState, legal []game.Action) (game.Action, error) {
	if len(legal) == 0 {
		return nil, ErrNoActions
	}
	var raids, pickups []game.Action
	for _, act := range legal {
		switch act.(type) {
		case game.Raid:
			raids = append(raids, act)
		case game.PickupWorker:
			pickups = append(pickups, act)
		}
	}
	if len(raids) > 0 {
		return raids[a.rng.Intn(len(raids))], nil
	}
	if len(pickups) > 0 {
		return pickups[a.rng.Intn(len(pickups))], nil
	}
	return legal[a.rng.Intn(len(legal))], nil
}
