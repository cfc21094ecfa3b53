package agent

import (
	"math"

	"golang.org/x/exp/rand"

	"raiders/game"
)

// Collector counts simulation work during a search.
type Collector interface {
	AddPlayouts(n int)
	AddDecision()
}

type nopCollector struct{}

func (nopCollector) AddPlayouts(int) {}
func (nopCollector) AddDecision()    {}

type option func(r *Rollout)

func WithPlayouts(n int) option {
	return func(r *Rollout) {
		r.playouts = n
	}
}

// WithDepth bounds each playout to the given number of moves.
func WithDepth(moves int) option {
	return func(r *Rollout) {
		r.depth = moves
	}
}

func WithSeed(seed uint64) option {
	return func(r *Rollout) {
		r.src.Seed(seed)
	}
}

func WithEvaluate(evaluate game.Evaluate) option {
	return func(r *Rollout) {
		r.evaluate = evaluate
	}
}

func WithCollector(c Collector) option {
	return func(r *Rollout) {
		r.collector = c
	}
}

// Rollout scores every legal action by playing random continuations
// from the resulting state and picks the best average outcome. Playout
// tails past the depth bound are judged by the evaluate function.
type Rollout struct {
	playouts  int
	depth     int
	evaluate  game.Evaluate
	collector Collector
	src       *rand.PCGSource
	rng       *rand.Rand
}

func NewRollout(options ...option) *Rollout {
	src := &rand.PCGSource{}
	src.Seed(1)
	r := &Rollout{
		playouts:  16,
		depth:     30,
		evaluate:  game.EvaluateScore,
		collector: nopCollector{},
		src:       src,
	}
	r.rng = rand.New(src)
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Rollout) Name() string { return "rollout" }

func (r *Rollout) ChooseAction(gs *game.GameState, legal []game.Action) (game.Action, error) {
	if len(legal) == 0 {
		return nil, ErrNoActions
	}
	defer r.collector.AddDecision()
	if len(legal) == 1 {
		return legal[0], nil
	}

	mover := gs.Current
	best := 0
	bestScore := math.Inf(-1)
	for i, action := range legal {
		total := 0.0
		for p := 0; p < r.playouts; p++ {
			sim := gs.Copy()
			sim.Reseed(r.rng.Uint64())
			action.Execute(sim)
			sim.CheckEndConditions()
			r.playout(sim)
			total += r.evaluate(sim, mover)
		}
		r.collector.AddPlayouts(r.playouts)
		if score := total / float64(r.playouts); score > bestScore {
			bestScore = score
			best = i
		}
	}
	return legal[best], nil
}

// playout follows a random policy until the game ends or the move
// budget runs out.
func (r *Rollout) playout(sim *game.GameState) {
	for moves := 0; moves < r.depth && !sim.Ended; moves++ {
		actions := sim.Rules.LegalActions(sim)
		if len(actions) == 0 {
			return
		}
		actions[r.rng.Intn(len(actions))].Execute(sim)
		sim.CheckEndConditions()
	}
}
