package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"raiders/utils"
)

// Decider supplies the player decisions that effect resolution needs.
// The default implementation preserves the engine's placeholder policy:
// first option for grants and offerings, uniform random for tributes. A
// future interactive layer swaps this in without touching rules logic.
type Decider interface {
	// PickGrant chooses one bundle from a choice grant. Options is never empty.
	PickGrant(gs *GameState, p *PlayerState, options []ResourceSet) ResourceSet
	// PickTribute chooses which resource an opponent surrenders. Options is never empty.
	PickTribute(gs *GameState, from *PlayerState, options []Resource) Resource
	// PickOffering chooses one of the affordable visible tiles. Affordable is never empty.
	PickOffering(gs *GameState, p *PlayerState, affordable []*OfferingTile) *OfferingTile
}

// AutoDecider is the built-in placeholder decision provider.
type AutoDecider struct{}

func (AutoDecider) PickGrant(gs *GameState, p *PlayerState, options []ResourceSet) ResourceSet {
	return options[0]
}

func (AutoDecider) PickTribute(gs *GameState, from *PlayerState, options []Resource) Resource {
	return options[gs.rng.Intn(len(options))]
}

func (AutoDecider) PickOffering(gs *GameState, p *PlayerState, affordable []*OfferingTile) *OfferingTile {
	return affordable[0]
}

// Rules is the legal-move generator and effect resolver. It holds the
// catalog and the decision provider and is itself immutable, so one
// Rules value may drive any number of games.
type Rules struct {
	cat     *Catalog
	decider Decider
}

// RulesOption configures a Rules value.
type RulesOption func(*Rules)

// WithDecider replaces the placeholder decision provider.
func WithDecider(d Decider) RulesOption {
	return func(r *Rules) { r.decider = d }
}

// NewRules builds the rules engine for a catalog.
func NewRules(cat *Catalog, opts ...RulesOption) *Rules {
	r := &Rules{cat: cat, decider: AutoDecider{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog exposes the reference data the rules were built from.
func (r *Rules) Catalog() *Catalog { return r.cat }

// LegalActions enumerates every action legal for the current player. A
// player who has not placed this turn may place anywhere viable or
// launch any feasible raid; one who has placed may only pick up. Raids
// are offered with the player's crew truncated to the location minimum
// rather than every crew subset. Order follows the catalog. The list is
// empty once the game has ended.
func (r *Rules) LegalActions(gs *GameState) []Action {
	if gs.Ended {
		return nil
	}
	p := gs.CurrentPlayer()
	var actions []Action
	if p.PlacedBuilding == "" {
		for _, b := range r.cat.Buildings() {
			a := PlaceWorker{PlayerID: p.ID, BuildingID: b.ID}
			if a.IsLegal(gs) {
				actions = append(actions, a)
			}
		}
		for _, loc := range r.cat.Locations() {
			crew := cardIDs(p.Crew)
			if len(crew) > loc.Requirements.MinCrew {
				crew = crew[:loc.Requirements.MinCrew]
			}
			for _, sub := range loc.Sublocations {
				a := Raid{PlayerID: p.ID, LocationID: loc.ID, SublocationID: sub.ID, CrewIDs: crew}
				if a.IsLegal(gs) {
					actions = append(actions, a)
				}
			}
		}
		return actions
	}
	for _, b := range r.cat.Buildings() {
		a := PickupWorker{PlayerID: p.ID, BuildingID: b.ID}
		if a.IsLegal(gs) {
			actions = append(actions, a)
		}
	}
	return actions
}

// ResolveEffect applies one effect descriptor for a player. Color is
// the worker color that triggered it, "" for town hall plays. Unknown
// and choice-required kinds resolve as logged no-ops.
func (r *Rules) ResolveEffect(gs *GameState, p *PlayerState, eff Effect, color WorkerColor) {
	if eff == nil {
		return
	}
	switch e := eff.(type) {
	case DrawCards:
		for i := 0; i < e.Amount; i++ {
			card := gs.DrawCard()
			if card == nil {
				break
			}
			p.Hand = append(p.Hand, card)
		}
	case GainResources:
		p.GainSet(e.Resources)
	case GainResource:
		p.Gain(e.Resource, e.Amount)
	case GainByWorkerColor:
		grant, ok := e.ByColor[color]
		if !ok {
			return
		}
		if len(grant.Choice) > 0 {
			p.GainSet(r.decider.PickGrant(gs, p, grant.Choice))
			return
		}
		p.GainSet(grant.Fixed)
	case OpponentsLoseResource:
		for _, o := range gs.Players {
			if o.ID != p.ID {
				o.Take(e.Resource, e.Amount)
			}
		}
	case Trade:
		if !p.Has(e.Give) {
			return
		}
		p.PaySet(e.Give)
		p.GainSet(e.Receive)
	case CollectFromOpponents:
		if len(e.Options) == 0 {
			return
		}
		for _, o := range gs.Players {
			if o.ID == p.ID {
				continue
			}
			kind := r.decider.PickTribute(gs, o, e.Options)
			p.Gain(kind, o.Take(kind, e.Amount))
		}
	case ManipulateOfferings:
		if len(gs.VisibleOfferings) < OfferingSlots {
			return
		}
		gs.OfferingStack = append(gs.OfferingStack, gs.VisibleOfferings...)
		gs.VisibleOfferings = nil
		gs.refillOfferings()
	case MakeOffering:
		var affordable []*OfferingTile
		for _, tile := range gs.VisibleOfferings {
			if p.Has(tile.Cost) {
				affordable = append(affordable, tile)
			}
		}
		if len(affordable) == 0 {
			return
		}
		tile := r.decider.PickOffering(gs, p, affordable)
		if tile == nil {
			return
		}
		idx := utils.FindIndex(gs.VisibleOfferings, func(t *OfferingTile) bool { return t == tile })
		if idx < 0 {
			return
		}
		gs.VisibleOfferings = utils.RemoveAt(gs.VisibleOfferings, idx)
		p.PaySet(tile.Cost)
		p.Offerings = append(p.Offerings, tile)
		gs.refillOfferings()
	case HireCrewHere, PlayTownHallHere, HeroNoDiscard:
		// Follow-up arrives as its own action; nothing resolves here.
	case DynamicStrength, RaidTypeBonus:
		// Strength modifiers only matter during raids.
	case Unresolved:
		log.Debug().Str("effect", e.Kind).Int("player", p.ID).
			Msg("effect needs a player decision and is not implemented; skipped")
	default:
		log.Warn().Str("effect", fmt.Sprintf("%T", eff)).
			Msg("unhandled effect kind; skipped")
	}
}

// CrewStrength totals the strength the named crew bring against a
// location: base strength plus dynamic bonuses from hire effects.
func (r *Rules) CrewStrength(p *PlayerState, crewIDs []string, loc *RaidLocation) int {
	remaining := append([]*TownsfolkCard(nil), p.Crew...)
	selected := make([]*TownsfolkCard, 0, len(crewIDs))
	for _, id := range crewIDs {
		idx := cardIndex(remaining, id)
		if idx < 0 {
			continue
		}
		selected = append(selected, remaining[idx])
		remaining = utils.RemoveAt(remaining, idx)
	}

	total := 0
	for _, card := range selected {
		total += card.Strength
		switch e := card.Hire.(type) {
		case DynamicStrength:
			switch e.Condition {
			case ByArmour:
				if e.Divisor > 0 {
					total += p.Armour / e.Divisor * e.BonusPer
				}
			case ByCrew:
				total += (len(selected) - 1) * e.BonusPer
			case ByValkyrie:
				if e.Divisor > 0 {
					total += p.Valkyries / e.Divisor * e.BonusPer
				}
			}
		case RaidTypeBonus:
			if e.Type == loc.Type {
				total += e.Bonus
			}
		}
	}
	return total
}
