package game

import (
	"fmt"
	"strings"

	"raiders/utils"
)

// Action is one player intent. IsLegal is a side-effect-free predicate;
// Execute mutates the state and returns it, and assumes IsLegal held
// when called. The facade re-validates before every execution, so ad
// hoc callers must do the same.
type Action interface {
	Player() int
	IsLegal(gs *GameState) bool
	Execute(gs *GameState) *GameState
	Describe() string
}

// PlaceWorker puts the held worker on a village building and resolves
// the building's effect.
type PlaceWorker struct {
	PlayerID   int
	BuildingID string
}

func (a PlaceWorker) Player() int { return a.PlayerID }

func (a PlaceWorker) IsLegal(gs *GameState) bool {
	p := gs.Player(a.PlayerID)
	if p == nil || !p.HoldsWorker() || p.PlacedBuilding != "" {
		return false
	}
	b, ok := gs.Catalog.Building(a.BuildingID)
	if !ok {
		return false
	}
	if !b.Allows(p.WorkerInHand) {
		return false
	}
	return len(gs.WorkersAt(b.ID)) < b.Slots
}

func (a PlaceWorker) Execute(gs *GameState) *GameState {
	p := gs.Player(a.PlayerID)
	b, _ := gs.Catalog.Building(a.BuildingID)
	color := p.WorkerInHand
	gs.Placements = append(gs.Placements, WorkerPlacement{
		BuildingID: b.ID,
		Color:      color,
		Owner:      p.ID,
	})
	p.PlacedBuilding = b.ID
	p.WorkerInHand = ""
	gs.Rules.ResolveEffect(gs, p, b.Effect, color)
	p.UsedBuildings = append(p.UsedBuildings, b.ID)
	return gs
}

func (a PlaceWorker) Describe() string {
	return fmt.Sprintf("player %d places a worker at %s", a.PlayerID, a.BuildingID)
}

// PickupWorker recovers the first worker standing at a building (any
// owner, neutral included), resolves the building's effect with the
// picked color and ends the turn.
type PickupWorker struct {
	PlayerID   int
	BuildingID string
}

func (a PickupWorker) Player() int { return a.PlayerID }

func (a PickupWorker) IsLegal(gs *GameState) bool {
	p := gs.Player(a.PlayerID)
	if p == nil || p.HoldsWorker() || p.PlacedBuilding == "" {
		return false
	}
	if a.BuildingID == p.PlacedBuilding || p.UsedBuilding(a.BuildingID) {
		return false
	}
	b, ok := gs.Catalog.Building(a.BuildingID)
	if !ok {
		return false
	}
	return len(gs.WorkersAt(b.ID)) > 0
}

func (a PickupWorker) Execute(gs *GameState) *GameState {
	p := gs.Player(a.PlayerID)
	b, _ := gs.Catalog.Building(a.BuildingID)
	pl, ok := gs.takeWorkerAt(b.ID)
	if !ok {
		return gs
	}
	p.WorkerInHand = pl.Color
	gs.Rules.ResolveEffect(gs, p, b.Effect, pl.Color)
	p.UsedBuildings = append(p.UsedBuildings, b.ID)
	gs.endTurn()
	return gs
}

func (a PickupWorker) Describe() string {
	return fmt.Sprintf("player %d picks up a worker from %s", a.PlayerID, a.BuildingID)
}

// HireCrew moves a card from hand to crew for its silver cost. Hiring
// past the crew cap requires naming a crew card to discard; a crew
// holds at most one hero.
type HireCrew struct {
	PlayerID      int
	CardID        string
	DiscardCrewID string // optional
}

func (a HireCrew) Player() int { return a.PlayerID }

func (a HireCrew) IsLegal(gs *GameState) bool {
	p := gs.Player(a.PlayerID)
	if p == nil {
		return false
	}
	idx := cardIndex(p.Hand, a.CardID)
	if idx < 0 {
		return false
	}
	card := p.Hand[idx]
	if p.Amount(Silver) < card.Cost {
		return false
	}
	if card.Hero && p.HasHeroInCrew() {
		return false
	}
	if len(p.Crew) >= CrewLimit && a.DiscardCrewID == "" {
		return false
	}
	if a.DiscardCrewID != "" && cardIndex(p.Crew, a.DiscardCrewID) < 0 {
		return false
	}
	return true
}

func (a HireCrew) Execute(gs *GameState) *GameState {
	p := gs.Player(a.PlayerID)
	idx := cardIndex(p.Hand, a.CardID)
	card := p.Hand[idx]
	p.Hand = utils.RemoveAt(p.Hand, idx)
	if a.DiscardCrewID != "" {
		if ci := cardIndex(p.Crew, a.DiscardCrewID); ci >= 0 {
			gs.DiscardCard(p.Crew[ci])
			p.Crew = utils.RemoveAt(p.Crew, ci)
		}
	}
	p.Gain(Silver, -card.Cost)
	p.Crew = append(p.Crew, card)
	return gs
}

func (a HireCrew) Describe() string {
	if a.DiscardCrewID != "" {
		return fmt.Sprintf("player %d hires %s, discarding %s from crew", a.PlayerID, a.CardID, a.DiscardCrewID)
	}
	return fmt.Sprintf("player %d hires %s", a.PlayerID, a.CardID)
}

// PlayCardTownHall discards a card from hand or crew and resolves its
// town hall effect. Heroes cannot be played this way.
type PlayCardTownHall struct {
	PlayerID int
	CardID   string
}

func (a PlayCardTownHall) Player() int { return a.PlayerID }

func (a PlayCardTownHall) IsLegal(gs *GameState) bool {
	p := gs.Player(a.PlayerID)
	if p == nil {
		return false
	}
	card := a.find(p)
	if card == nil {
		return false
	}
	if card.Hero {
		return false
	}
	if _, hero := card.TownHall.(HeroNoDiscard); hero {
		return false
	}
	return true
}

func (a PlayCardTownHall) find(p *PlayerState) *TownsfolkCard {
	if idx := cardIndex(p.Hand, a.CardID); idx >= 0 {
		return p.Hand[idx]
	}
	if idx := cardIndex(p.Crew, a.CardID); idx >= 0 {
		return p.Crew[idx]
	}
	return nil
}

func (a PlayCardTownHall) Execute(gs *GameState) *GameState {
	p := gs.Player(a.PlayerID)
	var card *TownsfolkCard
	if idx := cardIndex(p.Hand, a.CardID); idx >= 0 {
		card = p.Hand[idx]
		p.Hand = utils.RemoveAt(p.Hand, idx)
	} else if idx := cardIndex(p.Crew, a.CardID); idx >= 0 {
		card = p.Crew[idx]
		p.Crew = utils.RemoveAt(p.Crew, idx)
	} else {
		return gs
	}
	gs.DiscardCard(card)
	gs.Rules.ResolveEffect(gs, p, card.TownHall, "")
	return gs
}

func (a PlayCardTownHall) Describe() string {
	return fmt.Sprintf("player %d plays %s at the town hall", a.PlayerID, a.CardID)
}

// Raid spends the held worker on a raid sublocation: pay the location's
// costs, roll its dice on top of crew strength, score the tier table,
// take the whole remaining plunder and end the turn. A raid is the
// entire turn; no pickup follows.
type Raid struct {
	PlayerID      int
	LocationID    string
	SublocationID string
	CrewIDs       []string
}

func (a Raid) Player() int { return a.PlayerID }

func (a Raid) IsLegal(gs *GameState) bool {
	p := gs.Player(a.PlayerID)
	if p == nil || !p.HoldsWorker() || p.PlacedBuilding != "" {
		return false
	}
	loc, ok := gs.Catalog.Location(a.LocationID)
	if !ok {
		return false
	}
	if !loc.Allows(p.WorkerInHand) {
		return false
	}
	if len(a.CrewIDs) < loc.Requirements.MinCrew {
		return false
	}
	if !ownsCrew(p, a.CrewIDs) {
		return false
	}
	if p.Amount(Provisions) < loc.Requirements.Provisions || p.Amount(Gold) < loc.Requirements.Gold {
		return false
	}
	spot := gs.RaidSpotAt(a.LocationID, a.SublocationID)
	return spot != nil && !spot.Plunder.IsEmpty()
}

func (a Raid) Execute(gs *GameState) *GameState {
	p := gs.Player(a.PlayerID)
	loc, _ := gs.Catalog.Location(a.LocationID)
	spot := gs.RaidSpotAt(a.LocationID, a.SublocationID)

	p.Gain(Provisions, -loc.Requirements.Provisions)
	p.Gain(Gold, -loc.Requirements.Gold)

	strength := gs.Rules.CrewStrength(p, a.CrewIDs, loc) + gs.rollDice(loc.Dice)
	p.VP += loc.VPFor(strength)

	p.GainSet(spot.Plunder)
	spot.Plunder = ResourceSet{}
	spot.Occupant = p.WorkerInHand
	p.WorkerInHand = ""

	gs.endTurn()
	return gs
}

func (a Raid) Describe() string {
	return fmt.Sprintf("player %d raids %s/%s with crew [%s]",
		a.PlayerID, a.LocationID, a.SublocationID, strings.Join(a.CrewIDs, " "))
}

// ownsCrew checks every named id against the player's crew, multiset
// style: two identical ids need two copies in crew.
func ownsCrew(p *PlayerState, ids []string) bool {
	remaining := append([]*TownsfolkCard(nil), p.Crew...)
	for _, id := range ids {
		idx := cardIndex(remaining, id)
		if idx < 0 {
			return false
		}
		remaining = utils.RemoveAt(remaining, idx)
	}
	return true
}
