package game

// Resource identifies one kind of countable good a player can hold or a
// raid spot can carry as plunder.
type Resource string

const (
	Silver     Resource = "silver"
	Gold       Resource = "gold"
	Provisions Resource = "provisions"
	Iron       Resource = "iron"
	Livestock  Resource = "livestock"
	Valkyrie   Resource = "valkyrie"
	Armour     Resource = "armour"
)

// BasicResources are the five per-player counters tracked in
// PlayerState.Resources. Armour and valkyries live in their own fields
// because armour is clamped and valkyries feed strength bonuses.
var BasicResources = []Resource{Silver, Gold, Provisions, Iron, Livestock}

// allResources is the canonical iteration order for hashing and views.
var allResources = []Resource{Silver, Gold, Provisions, Iron, Livestock, Valkyrie, Armour}

// ResourceSet maps a resource kind to a quantity. Absent keys mean zero.
type ResourceSet map[Resource]int

// Copy returns an independent copy of the set.
func (rs ResourceSet) Copy() ResourceSet {
	out := make(ResourceSet, len(rs))
	for k, v := range rs {
		out[k] = v
	}
	return out
}

// Total sums every quantity in the set.
func (rs ResourceSet) Total() int {
	total := 0
	for _, v := range rs {
		total += v
	}
	return total
}

// IsEmpty reports whether the set holds nothing.
func (rs ResourceSet) IsEmpty() bool {
	return rs.Total() == 0
}

// WorkerColor is the rank of a worker token.
type WorkerColor string

const (
	Black WorkerColor = "black"
	Grey  WorkerColor = "grey"
	White WorkerColor = "white"
)

// NeutralOwner marks a worker placed by the board at setup rather than
// by a player. Any player may still pick it up.
const NeutralOwner = -1

// RaidType categorizes raid locations. Fortress plunder drives one of
// the two game-end conditions.
type RaidType string

const (
	Harbor    RaidType = "harbor"
	Outpost   RaidType = "outpost"
	Monastery RaidType = "monastery"
	Fortress  RaidType = "fortress"
)

// Phase is the coarse game phase.
type Phase int

const (
	WorkPhase Phase = iota
	EndPhase
)

func (p Phase) String() string {
	switch p {
	case WorkPhase:
		return "work"
	case EndPhase:
		return "ended"
	}
	return "unknown"
}
