package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"

	"golang.org/x/exp/rand"

	"raiders/utils"
)

const (
	// HandLimit is enforced after every turn-ending action.
	HandLimit = 8
	// CrewLimit is the soft crew cap; hiring past it needs a discard.
	CrewLimit = 5
	// ArmourCap clamps the armour counter.
	ArmourCap = 10
	// OfferingSlots is the number of face-up offering tiles.
	OfferingSlots = 3

	setupSilver   = 2
	setupDeal     = 5
	setupDiscards = 2
)

// PlayerState tracks everything owned by one player.
type PlayerState struct {
	ID   int
	Name string

	Resources ResourceSet // the five basic counters, all >= 0
	Armour    int         // clamped to [0, ArmourCap]
	Valkyries int
	VP        int

	Hand      []*TownsfolkCard
	Crew      []*TownsfolkCard
	Offerings []*OfferingTile

	WorkerInHand   WorkerColor // "" when no worker is held
	PlacedBuilding string      // building placed at this turn, "" if none
	UsedBuildings  []string    // buildings consumed this turn
	HasActed       bool        // turn taken this round
}

// Amount reads any resource counter, including armour and valkyries.
func (p *PlayerState) Amount(r Resource) int {
	switch r {
	case Armour:
		return p.Armour
	case Valkyrie:
		return p.Valkyries
	default:
		return p.Resources[r]
	}
}

// Gain adds n of a resource. Armour is clamped to the cap.
func (p *PlayerState) Gain(r Resource, n int) {
	switch r {
	case Armour:
		p.Armour += n
		if p.Armour > ArmourCap {
			p.Armour = ArmourCap
		}
		if p.Armour < 0 {
			p.Armour = 0
		}
	case Valkyrie:
		p.Valkyries += n
	default:
		p.Resources[r] += n
	}
}

// GainSet adds every quantity in the set.
func (p *PlayerState) GainSet(rs ResourceSet) {
	for k, v := range rs {
		p.Gain(k, v)
	}
}

// Take removes up to n of a resource, flooring at zero, and returns how
// much was actually taken.
func (p *PlayerState) Take(r Resource, n int) int {
	have := p.Amount(r)
	taken := n
	if taken > have {
		taken = have
	}
	p.Gain(r, -taken)
	return taken
}

// Has reports whether the player can afford every amount in the set.
func (p *PlayerState) Has(rs ResourceSet) bool {
	for k, v := range rs {
		if p.Amount(k) < v {
			return false
		}
	}
	return true
}

// PaySet subtracts every amount in the set. Callers check Has first.
func (p *PlayerState) PaySet(rs ResourceSet) {
	for k, v := range rs {
		p.Gain(k, -v)
	}
}

// HoldsWorker reports whether a worker is in hand.
func (p *PlayerState) HoldsWorker() bool { return p.WorkerInHand != "" }

// UsedBuilding reports whether the building was consumed this turn.
func (p *PlayerState) UsedBuilding(id string) bool {
	return utils.FindIndex(p.UsedBuildings, func(b string) bool { return b == id }) >= 0
}

// HasHeroInCrew reports whether the crew already holds a hero.
func (p *PlayerState) HasHeroInCrew() bool { return hasHero(p.Crew) }

// FinalVP is base VP plus crew card VP plus collected offering VP.
func (p *PlayerState) FinalVP() int {
	total := p.VP
	for _, c := range p.Crew {
		total += c.VP
	}
	for _, o := range p.Offerings {
		total += o.VP
	}
	return total
}

// resetTurn clears per-turn tracking at the start of the player's turn.
func (p *PlayerState) resetTurn() {
	p.PlacedBuilding = ""
	p.UsedBuildings = nil
}

// WorkerPlacement is one worker standing on a village building. Workers
// are shared once placed: Owner records who placed it, not who may pick
// it up.
type WorkerPlacement struct {
	BuildingID string
	Color      WorkerColor
	Owner      int // NeutralOwner for board-placed workers
}

// RaidSpot is the live state of one raid sublocation.
type RaidSpot struct {
	LocationID    string
	SublocationID string
	Plunder       ResourceSet // cleared wholesale on a successful raid
	Occupant      WorkerColor // "" when free
}

// GameState is the mutable snapshot of one game in progress. It is
// mutated only through Action execution and round rollover; the Catalog
// and Rules it references are shared and read-only.
type GameState struct {
	Catalog *Catalog
	Rules   *Rules

	Players      []*PlayerState
	Current      int // index into Players
	FirstOfRound int
	Round        int
	Phase        Phase

	Deck    []*TownsfolkCard // index 0 is the top
	Discard []*TownsfolkCard

	OfferingStack    []*OfferingTile // index 0 is the top
	VisibleOfferings []*OfferingTile

	Placements []WorkerPlacement
	RaidSpots  []*RaidSpot

	Ended  bool
	Winner int // player id, -1 until decided

	src *rand.PCGSource
	rng *rand.Rand
}

// NewGameState builds a fresh game. Construction is deterministic given
// the seed: deck shuffle, deal, setup discards, offering shuffle and
// neutral worker placement all replay identically.
func NewGameState(cat *Catalog, rules *Rules, names []string, seed uint64) (*GameState, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("need at least two players, got %d", len(names))
	}
	deck := cat.BuildDeck()
	if len(deck) < len(names)*setupDeal {
		return nil, fmt.Errorf("deck of %d cards cannot deal %d players %d each", len(deck), len(names), setupDeal)
	}

	src := &rand.PCGSource{}
	src.Seed(seed)
	gs := &GameState{
		Catalog: cat,
		Rules:   rules,
		Round:   1,
		Phase:   WorkPhase,
		Winner:  -1,
		src:     src,
		rng:     rand.New(src),
	}

	for i, name := range names {
		gs.Players = append(gs.Players, &PlayerState{
			ID:           i,
			Name:         name,
			Resources:    ResourceSet{Silver: setupSilver},
			WorkerInHand: Black,
		})
	}

	// Shuffle the full multiset deck and deal five per player in turn
	// order. Each player then discards their two most recently drawn
	// cards face-down to the bottom of the deck.
	gs.Deck = deck
	gs.shuffleDeck()
	var toBottom []*TownsfolkCard
	for _, p := range gs.Players {
		for i := 0; i < setupDeal; i++ {
			p.Hand = append(p.Hand, gs.DrawCard())
		}
		n := len(p.Hand)
		toBottom = append(toBottom, p.Hand[n-setupDiscards:]...)
		p.Hand = p.Hand[:n-setupDiscards]
	}
	gs.Deck = append(gs.Deck, toBottom...)

	// Shuffle the offering tiles and reveal the top three.
	gs.OfferingStack = cat.BuildOfferingStack()
	gs.rng.Shuffle(len(gs.OfferingStack), func(i, j int) {
		gs.OfferingStack[i], gs.OfferingStack[j] = gs.OfferingStack[j], gs.OfferingStack[i]
	})
	gs.refillOfferings()

	// Seed every raid sublocation with its base plunder.
	for _, loc := range cat.Locations() {
		for _, sub := range loc.Sublocations {
			gs.RaidSpots = append(gs.RaidSpots, &RaidSpot{
				LocationID:    loc.ID,
				SublocationID: sub.ID,
				Plunder:       sub.Plunder.Copy(),
				Occupant:      sub.StartingColor,
			})
		}
	}

	// Three neutral black workers start on the named buildings.
	for _, name := range startingBuildingNames {
		b, ok := cat.BuildingByName(name)
		if !ok {
			return nil, fmt.Errorf("catalog is missing starting building %q", name)
		}
		gs.Placements = append(gs.Placements, WorkerPlacement{
			BuildingID: b.ID,
			Color:      Black,
			Owner:      NeutralOwner,
		})
	}

	return gs, nil
}

func (gs *GameState) shuffleDeck() {
	gs.rng.Shuffle(len(gs.Deck), func(i, j int) {
		gs.Deck[i], gs.Deck[j] = gs.Deck[j], gs.Deck[i]
	})
}

// Player returns the player with the given id, or nil.
func (gs *GameState) Player(id int) *PlayerState {
	for _, p := range gs.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is.
func (gs *GameState) CurrentPlayer() *PlayerState {
	return gs.Players[gs.Current]
}

// DrawCard pops the top card. An empty deck first reshuffles the whole
// discard pile back in; nil is returned only when both are empty.
func (gs *GameState) DrawCard() *TownsfolkCard {
	if len(gs.Deck) == 0 {
		if len(gs.Discard) == 0 {
			return nil
		}
		gs.Deck = gs.Discard
		gs.Discard = nil
		gs.shuffleDeck()
	}
	card := gs.Deck[0]
	gs.Deck = gs.Deck[1:]
	return card
}

// DiscardCard appends to the discard pile.
func (gs *GameState) DiscardCard(c *TownsfolkCard) {
	gs.Discard = append(gs.Discard, c)
}

// WorkersAt returns the placements currently at a building, in
// placement order.
func (gs *GameState) WorkersAt(buildingID string) []WorkerPlacement {
	var out []WorkerPlacement
	for _, pl := range gs.Placements {
		if pl.BuildingID == buildingID {
			out = append(out, pl)
		}
	}
	return out
}

// takeWorkerAt removes and returns the first worker at a building.
func (gs *GameState) takeWorkerAt(buildingID string) (WorkerPlacement, bool) {
	i := utils.FindIndex(gs.Placements, func(pl WorkerPlacement) bool {
		return pl.BuildingID == buildingID
	})
	if i < 0 {
		return WorkerPlacement{}, false
	}
	pl := gs.Placements[i]
	gs.Placements = utils.RemoveAt(gs.Placements, i)
	return pl, true
}

// RaidSpotAt returns the live spot for a location/sublocation pair, or
// nil when the pair is unknown.
func (gs *GameState) RaidSpotAt(locationID, sublocationID string) *RaidSpot {
	for _, s := range gs.RaidSpots {
		if s.LocationID == locationID && s.SublocationID == sublocationID {
			return s
		}
	}
	return nil
}

// refillOfferings reveals tiles from the stack until the visible slots
// are full or the stack runs out.
func (gs *GameState) refillOfferings() {
	for len(gs.VisibleOfferings) < OfferingSlots && len(gs.OfferingStack) > 0 {
		gs.VisibleOfferings = append(gs.VisibleOfferings, gs.OfferingStack[0])
		gs.OfferingStack = gs.OfferingStack[1:]
	}
}

// NextPlayer advances the current player index circularly.
func (gs *GameState) NextPlayer() {
	gs.Current = (gs.Current + 1) % len(gs.Players)
}

// RoundComplete reports whether every player has acted this round.
func (gs *GameState) RoundComplete() bool {
	for _, p := range gs.Players {
		if !p.HasActed {
			return false
		}
	}
	return true
}

// StartNewRound increments the round, clears the has-acted flags and
// hands the turn back to the first player.
func (gs *GameState) StartNewRound() {
	gs.Round++
	for _, p := range gs.Players {
		p.HasActed = false
	}
	gs.Current = gs.FirstOfRound
	gs.Phase = WorkPhase
}

// endTurn closes the current player's turn: hand cap, has-acted, player
// advance, per-turn tracking reset, round rollover and the incoming
// player's worker grant.
func (gs *GameState) endTurn() {
	p := gs.CurrentPlayer()
	gs.enforceHandLimit(p)
	p.HasActed = true
	gs.NextPlayer()
	gs.CurrentPlayer().resetTurn()
	if gs.RoundComplete() {
		gs.StartNewRound()
	}
	if cur := gs.CurrentPlayer(); !cur.HoldsWorker() {
		cur.WorkerInHand = Black
	}
}

// enforceHandLimit discards from the tail of the hand down to the cap.
func (gs *GameState) enforceHandLimit(p *PlayerState) {
	for len(p.Hand) > HandLimit {
		last := p.Hand[len(p.Hand)-1]
		p.Hand = p.Hand[:len(p.Hand)-1]
		gs.DiscardCard(last)
	}
}

// rollDice rolls n independent six-sided dice and returns their sum.
func (gs *GameState) rollDice(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += gs.rng.Intn(6) + 1
	}
	return total
}

// CheckEndConditions flips the game to ended when the fortresses are
// stripped bare (total remaining fortress plunder at most one) or the
// offering stack is empty, and fixes the winner.
func (gs *GameState) CheckEndConditions() bool {
	if gs.Ended {
		return true
	}
	fortressPlunder := 0
	for _, spot := range gs.RaidSpots {
		loc, ok := gs.Catalog.Location(spot.LocationID)
		if ok && loc.Type == Fortress {
			fortressPlunder += spot.Plunder.Total()
		}
	}
	if fortressPlunder > 1 && len(gs.OfferingStack) > 0 {
		return false
	}
	gs.Ended = true
	gs.Phase = EndPhase
	gs.determineWinner()
	return true
}

// determineWinner picks the highest final VP; ties go to the first
// player in seating order.
func (gs *GameState) determineWinner() {
	best, bestVP := -1, -1
	for _, p := range gs.Players {
		if vp := p.FinalVP(); vp > bestVP {
			best, bestVP = p.ID, vp
		}
	}
	gs.Winner = best
}

// Scores maps every player id to their final VP so far.
func (gs *GameState) Scores() map[int]int {
	scores := make(map[int]int, len(gs.Players))
	for _, p := range gs.Players {
		scores[p.ID] = p.FinalVP()
	}
	return scores
}

// IsGameOver reports whether an end condition has fired.
func (gs *GameState) IsGameOver() bool { return gs.Ended }

// DeckSize returns the number of cards left in the draw deck.
func (gs *GameState) DeckSize() int { return len(gs.Deck) }

// DiscardSize returns the number of cards in the discard pile.
func (gs *GameState) DiscardSize() int { return len(gs.Discard) }

// Copy deep-copies the state, including an independent random source at
// the identical position, so simulations never disturb the original.
func (gs *GameState) Copy() *GameState {
	c := &GameState{
		Catalog:      gs.Catalog,
		Rules:        gs.Rules,
		Current:      gs.Current,
		FirstOfRound: gs.FirstOfRound,
		Round:        gs.Round,
		Phase:        gs.Phase,
		Ended:        gs.Ended,
		Winner:       gs.Winner,
	}

	c.Players = make([]*PlayerState, len(gs.Players))
	for i, p := range gs.Players {
		cp := *p
		cp.Resources = p.Resources.Copy()
		cp.Hand = append([]*TownsfolkCard(nil), p.Hand...)
		cp.Crew = append([]*TownsfolkCard(nil), p.Crew...)
		cp.Offerings = append([]*OfferingTile(nil), p.Offerings...)
		cp.UsedBuildings = append([]string(nil), p.UsedBuildings...)
		c.Players[i] = &cp
	}

	c.Deck = append([]*TownsfolkCard(nil), gs.Deck...)
	c.Discard = append([]*TownsfolkCard(nil), gs.Discard...)
	c.OfferingStack = append([]*OfferingTile(nil), gs.OfferingStack...)
	c.VisibleOfferings = append([]*OfferingTile(nil), gs.VisibleOfferings...)
	c.Placements = append([]WorkerPlacement(nil), gs.Placements...)

	c.RaidSpots = make([]*RaidSpot, len(gs.RaidSpots))
	for i, s := range gs.RaidSpots {
		cs := *s
		cs.Plunder = s.Plunder.Copy()
		c.RaidSpots[i] = &cs
	}

	src := &rand.PCGSource{}
	if data, err := gs.src.MarshalBinary(); err == nil {
		_ = src.UnmarshalBinary(data)
	}
	c.src = src
	c.rng = rand.New(src)

	return c
}

// Reseed restarts the state's random stream from seed. Simulation
// agents reseed copies so repeated playouts from one state diverge.
func (gs *GameState) Reseed(seed uint64) {
	gs.src.Seed(seed)
}

// Hash digests the semantic fields of the state. Two states produced by
// the same seed and action sequence hash identically.
func (gs *GameState) Hash() uint64 {
	hasher := fnv.New64a()
	writeInt := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}
	writeStr := func(s string) {
		io.WriteString(hasher, s)
		hasher.Write([]byte{0})
	}

	writeInt(gs.Round)
	writeInt(gs.Current)
	writeInt(gs.FirstOfRound)
	writeInt(int(gs.Phase))
	writeInt(gs.Winner)
	if gs.Ended {
		writeInt(1)
	} else {
		writeInt(0)
	}

	for _, p := range gs.Players {
		writeInt(p.ID)
		for _, r := range BasicResources {
			writeInt(p.Resources[r])
		}
		writeInt(p.Armour)
		writeInt(p.Valkyries)
		writeInt(p.VP)
		for _, c := range p.Hand {
			writeStr(c.ID)
		}
		for _, c := range p.Crew {
			writeStr(c.ID)
		}
		for _, o := range p.Offerings {
			writeStr(o.ID)
		}
		writeStr(string(p.WorkerInHand))
		writeStr(p.PlacedBuilding)
		for _, b := range p.UsedBuildings {
			writeStr(b)
		}
		if p.HasActed {
			writeInt(1)
		} else {
			writeInt(0)
		}
	}

	for _, pl := range gs.Placements {
		writeStr(pl.BuildingID)
		writeStr(string(pl.Color))
		writeInt(pl.Owner)
	}
	for _, s := range gs.RaidSpots {
		writeStr(s.LocationID)
		writeStr(s.SublocationID)
		for _, r := range allResources {
			writeInt(s.Plunder[r])
		}
		writeStr(string(s.Occupant))
	}

	for _, c := range gs.Deck {
		writeStr(c.ID)
	}
	for _, c := range gs.Discard {
		writeStr(c.ID)
	}
	for _, o := range gs.OfferingStack {
		writeStr(o.ID)
	}
	for _, o := range gs.VisibleOfferings {
		writeStr(o.ID)
	}

	return hasher.Sum64()
}
