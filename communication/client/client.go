// Package client plays against a remote decision server, turning each
// choice into one HTTP round trip.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"raiders/communication"
	"raiders/game"
)

// Agent forwards every decision to a remote chooser over HTTP. It
// satisfies the local agent interface, so remote and local players can
// mix in one game.
type Agent struct {
	baseURL string
	name    string
	client  *http.Client
}

func New(baseURL, name string) *Agent {
	return &Agent{
		baseURL: baseURL,
		name:    name,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (a *Agent) Name() string { return a.name }

func (a *Agent) ChooseAction(gs *game.GameState, legal []game.Action) (game.Action, error) {
	if len(legal) == 0 {
		return nil, communication.ErrNoChoices
	}

	req := communication.ChooseRequest{
		View:         communication.NewStateView(gs),
		Actions:      make([]communication.ActionMsg, len(legal)),
		Descriptions: make([]string, len(legal)),
	}
	for i, action := range legal {
		msg, err := communication.EncodeAction(action)
		if err != nil {
			return nil, fmt.Errorf("encode action %d: %w", i, err)
		}
		req.Actions[i] = msg
		req.Descriptions[i] = action.Describe()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal choose request: %w", err)
	}

	resp, err := a.client.Post(a.baseURL+"/v1/choose", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("post choose request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("remote chooser returned status %d: %s", resp.StatusCode, out)
	}

	var choice communication.ChooseResponse
	if err := json.NewDecoder(resp.Body).Decode(&choice); err != nil {
		return nil, fmt.Errorf("decode choose response: %w", err)
	}
	if choice.Choice < 0 || choice.Choice >= len(legal) {
		return nil, fmt.Errorf("remote chooser picked %d of %d actions", choice.Choice, len(legal))
	}
	return legal[choice.Choice], nil
}
