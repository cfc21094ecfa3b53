package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"raiders/game"
)

// MaxMoves caps a driven game when no move limit is given.
const MaxMoves = 10000

var (
	// ErrGameOver is returned when an action arrives after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrIllegalAction is returned when an action fails its legality check.
	ErrIllegalAction = errors.New("illegal action")
)

// DecisionSource picks one action from the legal set, for the player
// whose turn it is. Implementations must return an element of legal.
type DecisionSource interface {
	ChooseAction(gs *game.GameState, legal []game.Action) (game.Action, error)
	Name() string
}

// Step records one applied action together with a snapshot of the
// state after the action and end-of-game evaluation.
type Step struct {
	Action game.Action
	State  *game.GameState
	Hash   uint64
}

// Engine owns a single game from setup to scoring. It validates and
// applies actions, journals every step, and can drive a full game from
// a set of decision sources.
type Engine struct {
	catalog *game.Catalog
	rules   *game.Rules
	names   []string
	seed    uint64

	state   *game.GameState
	history []Step
}

// New sets up a game for the named players. The same catalog, names
// and seed always produce the same game.
func New(cat *game.Catalog, names []string, seed uint64, opts ...game.RulesOption) (*Engine, error) {
	e := &Engine{
		catalog: cat,
		rules:   game.NewRules(cat, opts...),
		names:   names,
		seed:    seed,
	}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset rebuilds the initial state from the engine's catalog and seed
// and clears the history.
func (e *Engine) Reset() error {
	state, err := game.NewGameState(e.catalog, e.rules, e.names, e.seed)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	e.state = state
	e.history = nil
	return nil
}

// State returns the live game state.
func (e *Engine) State() *game.GameState {
	return e.state
}

// LegalActions lists the current player's legal actions, nil once the
// game has ended.
func (e *Engine) LegalActions() []game.Action {
	return e.rules.LegalActions(e.state)
}

func (e *Engine) IsLegal(a game.Action) bool {
	if e.state.Ended {
		return false
	}
	return a.IsLegal(e.state)
}

// TakeAction validates and applies one action, then evaluates the end
// conditions and appends the step to the history.
func (e *Engine) TakeAction(a game.Action) error {
	if e.state.Ended {
		return fmt.Errorf("%w: %s", ErrGameOver, a.Describe())
	}
	if !a.IsLegal(e.state) {
		return fmt.Errorf("%w: %s", ErrIllegalAction, a.Describe())
	}
	a.Execute(e.state)
	e.state.CheckEndConditions()
	e.history = append(e.history, Step{
		Action: a,
		State:  e.state.Copy(),
		Hash:   e.state.Hash(),
	})
	return nil
}

func (e *Engine) IsGameOver() bool {
	return e.state.Ended
}

// Winner returns the winning player's ID, or -1 while the game is
// still running.
func (e *Engine) Winner() int {
	if !e.state.Ended {
		return -1
	}
	return e.state.Winner
}

// Scores maps each player ID to their current final score.
func (e *Engine) Scores() map[int]int {
	return e.state.Scores()
}

// History returns the applied steps in order. The returned slice is
// shared; callers must not modify it.
func (e *Engine) History() []Step {
	return e.history
}

// Run drives the game to completion, asking sources[p] for player p's
// moves. It stops after maxMoves applied actions (MaxMoves if zero or
// negative) and returns the winner, or -1 when the cap was hit first.
func (e *Engine) Run(sources []DecisionSource, maxMoves int) (int, error) {
	if len(sources) != len(e.state.Players) {
		return -1, fmt.Errorf("run: %d decision sources for %d players", len(sources), len(e.state.Players))
	}
	if maxMoves <= 0 {
		maxMoves = MaxMoves
	}

	log.Info().Msgf("starting a %d player game, player %d first", len(sources), e.state.Current)

	moves := 0
	for !e.state.Ended && moves < maxMoves {
		current := e.state.Current
		legal := e.LegalActions()
		if len(legal) == 0 {
			log.Warn().Msgf("player %d has no legal actions, stopping the game", current)
			break
		}

		source := sources[current]
		action, err := source.ChooseAction(e.state, legal)
		if err != nil {
			return -1, fmt.Errorf("run: %s on move %d: %w", source.Name(), moves+1, err)
		}
		if err := e.TakeAction(action); err != nil {
			return -1, fmt.Errorf("run: %s on move %d: %w", source.Name(), moves+1, err)
		}
		moves++

		log.Debug().Msgf("move %d: %s", moves, action.Describe())
	}

	if e.state.Ended {
		log.Info().Msgf("player %d wins with %d points after %d moves", e.state.Winner, e.state.Scores()[e.state.Winner], moves)
	} else {
		log.Info().Msgf("no winner after %d moves", moves)
	}
	return e.Winner(), nil
}
