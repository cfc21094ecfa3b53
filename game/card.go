package game

import "raiders/utils"

// TownsfolkCard is a hireable crew member and playable townsfolk card.
// Cards are immutable catalog entries; decks, hands and crews hold
// pointers into the catalog, repeated per copy.
type TownsfolkCard struct {
	ID            string
	Name          string
	Cost          int         // silver to hire
	Strength      int         // base raid strength as crew
	VP            int         // victory points while in crew at game end
	Copies        int         // number of copies in the full deck
	Hire          Effect      // applies while hired (strength modifiers)
	TownHall      Effect      // applies when played at the town hall
	RequiredColor WorkerColor // color needed to trigger color-gated gains, "" if none
	Hero          bool
}

// hasHero reports whether any card in the list is a hero.
func hasHero(cards []*TownsfolkCard) bool {
	for _, c := range cards {
		if c.Hero {
			return true
		}
	}
	return false
}

// cardIndex returns the index of the first card with the given id, or -1.
func cardIndex(cards []*TownsfolkCard, id string) int {
	return utils.FindIndex(cards, func(c *TownsfolkCard) bool { return c.ID == id })
}

// cardIDs lists the ids of the given cards in order.
func cardIDs(cards []*TownsfolkCard) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
