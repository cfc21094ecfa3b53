package agent

import (
	"errors"

	"raiders/game"
)

// Agent picks one action for the player to move. Implementations must
// return an element of legal.
type Agent interface {
	ChooseAction(gs *game.GameState, legal []game.Action) (game.Action, error)
	Name() string
}

// ErrNoActions is returned when an agent is asked to choose from an
// empty action list.
var ErrNoActions = errors.New("no legal actions to choose from")
