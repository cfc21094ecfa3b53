package game

// Effect is the closed set of building and card effect descriptors.
// Every kind is its own variant carrying typed parameters; Rules
// resolves them with an exhaustive type switch, so adding a kind is a
// compile-time-checked extension.
type Effect interface {
	effect()
}

// DrawCards puts up to Amount cards from the deck into the hand. Deck
// exhaustion yields fewer cards, never an error.
type DrawCards struct {
	Amount int
}

// GainResources grants a fixed bundle of resources.
type GainResources struct {
	Resources ResourceSet
}

// GainResource grants a single kind. Armour is clamped to [0, ArmourCap].
type GainResource struct {
	Resource Resource
	Amount   int
}

// ColorGrant is what one worker color earns at a building: either a
// fixed bundle or a choice between bundles. The decision provider picks
// from Choice; the default provider takes the first option.
type ColorGrant struct {
	Fixed  ResourceSet
	Choice []ResourceSet
}

// GainByWorkerColor grants resources keyed by the color of the worker
// placed at or picked from the building. Colors missing from the table
// earn nothing.
type GainByWorkerColor struct {
	ByColor map[WorkerColor]ColorGrant
}

// OpponentsLoseResource strips Amount of a kind from every other
// player, floored at zero.
type OpponentsLoseResource struct {
	Resource Resource
	Amount   int
}

// Trade exchanges Give for Receive atomically: it resolves only when
// the player holds every Give amount.
type Trade struct {
	Give    ResourceSet
	Receive ResourceSet
}

// CollectFromOpponents takes Amount of one kind from each opponent. The
// kind is picked per opponent by the decision provider; the default
// provider picks uniformly at random among Options.
type CollectFromOpponents struct {
	Options []Resource
	Amount  int
}

// ManipulateOfferings returns the three visible offering tiles to the
// bottom of the stack and reveals three fresh ones. It only fires when
// all visible slots are full.
type ManipulateOfferings struct{}

// MakeOffering buys one affordable visible offering tile: the decision
// provider picks among the affordable tiles (default first), the player
// pays its cost and keeps the tile, and the slot is refilled from the
// stack. No affordable tile means no effect.
type MakeOffering struct{}

// HireCrewHere marks a building whose follow-up is a separate HireCrew
// action. Placement itself grants nothing.
type HireCrewHere struct{}

// PlayTownHallHere marks the town hall, whose follow-up is a separate
// PlayCardTownHall action.
type PlayTownHallHere struct{}

// StrengthCondition names what a DynamicStrength bonus counts.
type StrengthCondition string

const (
	ByArmour   StrengthCondition = "armour-count"
	ByCrew     StrengthCondition = "crew-count"
	ByValkyrie StrengthCondition = "valkyrie-count"
)

// DynamicStrength is a hire effect adding raid strength from a counted
// condition: (count / Divisor) * BonusPer for armour and valkyries, or
// (other selected crew) * BonusPer for crew count.
type DynamicStrength struct {
	Condition StrengthCondition
	Divisor   int
	BonusPer  int
}

// RaidTypeBonus is a hire effect adding flat strength when raiding one
// location type.
type RaidTypeBonus struct {
	Type  RaidType
	Bonus int
}

// HeroNoDiscard marks hero cards. Heroes cannot be played at the town
// hall and a crew holds at most one.
type HeroNoDiscard struct{}

// Unresolved stands in for effect kinds that need a real player
// decision (swap-worker, steal-plunder, discard-for-currency and the
// like). Resolution logs the kind and does nothing.
type Unresolved struct {
	Kind string
}

func (DrawCards) effect()             {}
func (GainResources) effect()         {}
func (GainResource) effect()          {}
func (GainByWorkerColor) effect()     {}
func (OpponentsLoseResource) effect() {}
func (Trade) effect()                 {}
func (CollectFromOpponents) effect()  {}
func (ManipulateOfferings) effect()   {}
func (MakeOffering) effect()          {}
func (HireCrewHere) effect()          {}
func (PlayTownHallHere) effect()      {}
func (DynamicStrength) effect()       {}
func (RaidTypeBonus) effect()         {}
func (HeroNoDiscard) effect()         {}
func (Unresolved) effect()            {}
