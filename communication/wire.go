package communication

import (
	"errors"
	"fmt"

	"raiders/game"
)

// ErrNoChoices is returned when a choose request offers no actions.
var ErrNoChoices = errors.New("no actions offered")

// Action type tags on the wire.
const (
	ActionPlace    = "place-worker"
	ActionPickup   = "pickup-worker"
	ActionHire     = "hire-crew"
	ActionTownHall = "play-town-hall"
	ActionRaid     = "raid"
)

// ActionMsg is the wire form of a single action. Type selects which of
// the remaining fields are meaningful.
type ActionMsg struct {
	Type        string   `json:"type"`
	Player      int      `json:"player"`
	Building    string   `json:"building,omitempty"`
	Card        string   `json:"card,omitempty"`
	DiscardCrew string   `json:"discard_crew,omitempty"`
	Location    string   `json:"location,omitempty"`
	Sublocation string   `json:"sublocation,omitempty"`
	Crew        []string `json:"crew,omitempty"`
}

func EncodeAction(a game.Action) (ActionMsg, error) {
	switch act := a.(type) {
	case game.PlaceWorker:
		return ActionMsg{Type: ActionPlace, Player: act.PlayerID, Building: act.BuildingID}, nil
	case game.PickupWorker:
		return ActionMsg{Type: ActionPickup, Player: act.PlayerID, Building: act.BuildingID}, nil
	case game.HireCrew:
		return ActionMsg{Type: ActionHire, Player: act.PlayerID, Card: act.CardID, DiscardCrew: act.DiscardCrewID}, nil
	case game.PlayCardTownHall:
		return ActionMsg{Type: ActionTownHall, Player: act.PlayerID, Card: act.CardID}, nil
	case game.Raid:
		return ActionMsg{Type: ActionRaid, Player: act.PlayerID, Location: act.LocationID, Sublocation: act.SublocationID, Crew: act.CrewIDs}, nil
	default:
		return ActionMsg{}, fmt.Errorf("cannot encode action type %T", a)
	}
}

func DecodeAction(msg ActionMsg) (game.Action, error) {
	switch msg.Type {
	case ActionPlace:
		return game.PlaceWorker{PlayerID: msg.Player, BuildingID: msg.Building}, nil
	case ActionPickup:
		return game.PickupWorker{PlayerID: msg.Player, BuildingID: msg.Building}, nil
	case ActionHire:
		return game.HireCrew{PlayerID: msg.Player, CardID: msg.Card, DiscardCrewID: msg.DiscardCrew}, nil
	case ActionTownHall:
		return game.PlayCardTownHall{PlayerID: msg.Player, CardID: msg.Card}, nil
	case ActionRaid:
		return game.Raid{PlayerID: msg.Player, LocationID: msg.Location, SublocationID: msg.Sublocation, CrewIDs: msg.Crew}, nil
	default:
		return nil, fmt.Errorf("cannot decode action type %q", msg.Type)
	}
}

// PlayerView is the wire form of one player's position.
type PlayerView struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Resources map[string]int `json:"resources"`
	Armour    int            `json:"armour"`
	Valkyries int            `json:"valkyries"`
	VP        int            `json:"vp"`
	Score     int            `json:"score"`
	Hand      []string       `json:"hand"`
	Crew      []string       `json:"crew"`
	Offerings []string       `json:"offerings"`
	Worker    string         `json:"worker,omitempty"`
	Placed    string         `json:"placed,omitempty"`
	Used      []string       `json:"used,omitempty"`
	HasActed  bool           `json:"has_acted"`
}

type PlacementView struct {
	Building string `json:"building"`
	Color    string `json:"color"`
	Owner    int    `json:"owner"`
}

type SpotView struct {
	Location    string         `json:"location"`
	Sublocation string         `json:"sublocation"`
	Plunder     map[string]int `json:"plunder"`
	Occupant    string         `json:"occupant,omitempty"`
}

// StateView is a full snapshot of a game on the wire. Hidden zone
// contents travel as sizes only; cards and tiles travel as IDs that
// resolve against the shared catalog.
type StateView struct {
	Round        int             `json:"round"`
	Current      int             `json:"current"`
	FirstOfRound int             `json:"first_of_round"`
	Phase        string          `json:"phase"`
	Players      []PlayerView    `json:"players"`
	Placements   []PlacementView `json:"placements"`
	Spots        []SpotView      `json:"spots"`
	Offerings    []string        `json:"offerings"`
	DeckSize     int             `json:"deck_size"`
	DiscardSize  int             `json:"discard_size"`
	StackSize    int             `json:"stack_size"`
	Ended        bool            `json:"ended"`
	Winner       int             `json:"winner"`
	Hash         uint64          `json:"hash,string"`
}

// NewStateView snapshots a state for the wire.
func NewStateView(gs *game.GameState) StateView {
	view := StateView{
		Round:        gs.Round,
		Current:      gs.Current,
		FirstOfRound: gs.FirstOfRound,
		Phase:        gs.Phase.String(),
		DeckSize:     gs.DeckSize(),
		DiscardSize:  gs.DiscardSize(),
		StackSize:    len(gs.OfferingStack),
		Ended:        gs.Ended,
		Winner:       gs.Winner,
		Hash:         gs.Hash(),
	}

	for _, p := range gs.Players {
		view.Players = append(view.Players, PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			Resources: resourceCounts(p.Resources),
			Armour:    p.Armour,
			Valkyries: p.Valkyries,
			VP:        p.VP,
			Score:     p.FinalVP(),
			Hand:      cardIDs(p.Hand),
			Crew:      cardIDs(p.Crew),
			Offerings: tileIDs(p.Offerings),
			Worker:    string(p.WorkerInHand),
			Placed:    p.PlacedBuilding,
			Used:      p.UsedBuildings,
			HasActed:  p.HasActed,
		})
	}

	for _, pl := range gs.Placements {
		view.Placements = append(view.Placements, PlacementView{
			Building: pl.BuildingID,
			Color:    string(pl.Color),
			Owner:    pl.Owner,
		})
	}

	for _, s := range gs.RaidSpots {
		view.Spots = append(view.Spots, SpotView{
			Location:    s.LocationID,
			Sublocation: s.SublocationID,
			Plunder:     resourceCounts(s.Plunder),
			Occupant:    string(s.Occupant),
		})
	}

	view.Offerings = tileIDs(gs.VisibleOfferings)
	return view
}

// ChooseRequest asks a chooser to pick one of the offered actions.
// Actions and Descriptions are index-aligned.
type ChooseRequest struct {
	View         StateView   `json:"view"`
	Actions      []ActionMsg `json:"actions"`
	Descriptions []string    `json:"descriptions"`
}

// ChooseResponse carries the chosen index into ChooseRequest.Actions.
type ChooseResponse struct {
	Choice int `json:"choice"`
}

func resourceCounts(rs game.ResourceSet) map[string]int {
	counts := make(map[string]int, len(rs))
	for r, n := range rs {
		if n != 0 {
			counts[string(r)] = n
		}
	}
	return counts
}

func cardIDs(cards []*game.TownsfolkCard) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func tileIDs(tiles []*game.OfferingTile) []string {
	ids := make([]string, len(tiles))
	for i, t := range tiles {
		ids[i] = t.ID
	}
	return ids
}
