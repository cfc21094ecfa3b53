package game

import (
	"fmt"
	"sort"
)

// VillageBuilding is one worker spot group on the village board.
type VillageBuilding struct {
	ID            string
	Name          string
	Slots         int           // worker capacity, at least 1
	Effect        Effect        // resolved on placement and pickup
	AllowedColors []WorkerColor // nil means any color
}

// Allows reports whether the building accepts a worker of the color.
func (b *VillageBuilding) Allows(color WorkerColor) bool {
	return allowsColor(b.AllowedColors, color)
}

// VPTier maps a minimum strength to a victory point award. Tiers are
// ordered by descending MinStrength; the first tier at or below the
// rolled strength wins.
type VPTier struct {
	MinStrength int
	VP          int
}

// RaidRequirements gate who may raid a location and what it costs.
type RaidRequirements struct {
	MinCrew       int
	Provisions    int
	Gold          int
	AllowedColors []WorkerColor // nil means any color
}

// RaidSublocation is one plunder spot within a raid location.
type RaidSublocation struct {
	ID            string
	Plunder       ResourceSet // base allotment seeded into each new game
	StartingColor WorkerColor // pre-placed marker color, "" if none
}

// RaidLocation is a raidable site with dice-driven combat resolution.
type RaidLocation struct {
	ID           string
	Name         string
	Type         RaidType
	Requirements RaidRequirements
	Dice         int // d6 count added to crew strength
	Tiers        []VPTier
	Sublocations []RaidSublocation
}

// Allows reports whether the location accepts a worker of the color.
func (l *RaidLocation) Allows(color WorkerColor) bool {
	return allowsColor(l.Requirements.AllowedColors, color)
}

// VPFor resolves a final raid strength against the tier table.
func (l *RaidLocation) VPFor(strength int) int {
	for _, t := range l.Tiers {
		if strength >= t.MinStrength {
			return t.VP
		}
	}
	return 0
}

// Sublocation looks up one spot by id.
func (l *RaidLocation) Sublocation(id string) (*RaidSublocation, bool) {
	for i := range l.Sublocations {
		if l.Sublocations[i].ID == id {
			return &l.Sublocations[i], true
		}
	}
	return nil, false
}

// OfferingTile is purchasable for a flat VP reward.
type OfferingTile struct {
	ID   string
	Cost ResourceSet
	VP   int
}

func allowsColor(allowed []WorkerColor, color WorkerColor) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, c := range allowed {
		if c == color {
			return true
		}
	}
	return false
}

// Catalog is the immutable reference dataset: buildings, raid
// locations, offering tiles and townsfolk cards, addressed by stable
// string ids. It is constructed once, validated, and shared read-only
// across any number of games.
type Catalog struct {
	buildings []*VillageBuilding
	locations []*RaidLocation
	offerings []*OfferingTile
	cards     []*TownsfolkCard

	buildingByID   map[string]*VillageBuilding
	buildingByName map[string]*VillageBuilding
	locationByID   map[string]*RaidLocation
	offeringByID   map[string]*OfferingTile
	cardByID       map[string]*TownsfolkCard
}

// NewCatalog validates the dataset and builds the lookup tables. It
// fails fast on shape violations so a bad dataset never reaches play.
func NewCatalog(buildings []*VillageBuilding, locations []*RaidLocation, offerings []*OfferingTile, cards []*TownsfolkCard) (*Catalog, error) {
	c := &Catalog{
		buildings:      buildings,
		locations:      locations,
		offerings:      offerings,
		cards:          cards,
		buildingByID:   make(map[string]*VillageBuilding, len(buildings)),
		buildingByName: make(map[string]*VillageBuilding, len(buildings)),
		locationByID:   make(map[string]*RaidLocation, len(locations)),
		offeringByID:   make(map[string]*OfferingTile, len(offerings)),
		cardByID:       make(map[string]*TownsfolkCard, len(cards)),
	}
	for _, b := range buildings {
		if b.ID == "" || b.Name == "" {
			return nil, fmt.Errorf("building %q: id and name are required", b.ID)
		}
		if b.Slots < 1 {
			return nil, fmt.Errorf("building %s: needs at least one worker slot", b.ID)
		}
		if b.Effect == nil {
			return nil, fmt.Errorf("building %s: effect is required", b.ID)
		}
		if _, dup := c.buildingByID[b.ID]; dup {
			return nil, fmt.Errorf("building %s: duplicate id", b.ID)
		}
		c.buildingByID[b.ID] = b
		c.buildingByName[b.Name] = b
	}
	for _, l := range locations {
		if l.ID == "" {
			return nil, fmt.Errorf("raid location %q: id is required", l.Name)
		}
		if _, dup := c.locationByID[l.ID]; dup {
			return nil, fmt.Errorf("raid location %s: duplicate id", l.ID)
		}
		if len(l.Sublocations) == 0 {
			return nil, fmt.Errorf("raid location %s: needs at least one sublocation", l.ID)
		}
		if !sort.SliceIsSorted(l.Tiers, func(i, j int) bool {
			return l.Tiers[i].MinStrength > l.Tiers[j].MinStrength
		}) {
			return nil, fmt.Errorf("raid location %s: tiers must be ordered by descending strength", l.ID)
		}
		subIDs := make(map[string]bool, len(l.Sublocations))
		for _, s := range l.Sublocations {
			if subIDs[s.ID] {
				return nil, fmt.Errorf("raid location %s: duplicate sublocation %s", l.ID, s.ID)
			}
			subIDs[s.ID] = true
		}
		c.locationByID[l.ID] = l
	}
	for _, o := range offerings {
		if _, dup := c.offeringByID[o.ID]; dup {
			return nil, fmt.Errorf("offering %s: duplicate id", o.ID)
		}
		c.offeringByID[o.ID] = o
	}
	for _, card := range cards {
		if card.Copies < 1 {
			return nil, fmt.Errorf("card %s: needs at least one copy", card.ID)
		}
		if card.Hire == nil || card.TownHall == nil {
			return nil, fmt.Errorf("card %s: hire and town hall effects are required", card.ID)
		}
		if _, dup := c.cardByID[card.ID]; dup {
			return nil, fmt.Errorf("card %s: duplicate id", card.ID)
		}
		c.cardByID[card.ID] = card
	}
	return c, nil
}

// Building looks up a village building by id.
func (c *Catalog) Building(id string) (*VillageBuilding, bool) {
	b, ok := c.buildingByID[id]
	return b, ok
}

// BuildingByName looks up a village building by display name.
func (c *Catalog) BuildingByName(name string) (*VillageBuilding, bool) {
	b, ok := c.buildingByName[name]
	return b, ok
}

// Location looks up a raid location by id.
func (c *Catalog) Location(id string) (*RaidLocation, bool) {
	l, ok := c.locationByID[id]
	return l, ok
}

// Offering looks up an offering tile by id.
func (c *Catalog) Offering(id string) (*OfferingTile, bool) {
	o, ok := c.offeringByID[id]
	return o, ok
}

// Card looks up a townsfolk card by id.
func (c *Catalog) Card(id string) (*TownsfolkCard, bool) {
	card, ok := c.cardByID[id]
	return card, ok
}

// Buildings returns every building in catalog order. Callers must not
// mutate the returned slice.
func (c *Catalog) Buildings() []*VillageBuilding { return c.buildings }

// Locations returns every raid location in catalog order.
func (c *Catalog) Locations() []*RaidLocation { return c.locations }

// Offerings returns every offering tile in catalog order.
func (c *Catalog) Offerings() []*OfferingTile { return c.offerings }

// Cards returns every distinct card in catalog order.
func (c *Catalog) Cards() []*TownsfolkCard { return c.cards }

// BuildDeck expands the card multiset into a fresh, unshuffled deck.
func (c *Catalog) BuildDeck() []*TownsfolkCard {
	var deck []*TownsfolkCard
	for _, card := range c.cards {
		for i := 0; i < card.Copies; i++ {
			deck = append(deck, card)
		}
	}
	return deck
}

// BuildOfferingStack returns a fresh, unshuffled copy of the offering
// tile list.
func (c *Catalog) BuildOfferingStack() []*OfferingTile {
	stack := make([]*OfferingTile, len(c.offerings))
	copy(stack, c.offerings)
	return stack
}
