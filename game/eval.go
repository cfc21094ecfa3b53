package game

// Evaluate scores a state between -1 and 1 from one player's
// perspective, positive meaning a favorable position. Simulation agents
// plug any Evaluate into their playout scoring.
type Evaluate func(gs *GameState, playerID int) float64

// EvaluateScore compares final victory points against the strongest
// opponent. Terminal states collapse to +/-1 for win and loss.
func EvaluateScore(gs *GameState, playerID int) float64 {
	if gs.Ended {
		if gs.Winner == playerID {
			return 1
		}
		return -1
	}
	return gs.scoreVP(playerID)
}

// EvaluateProgress blends victory points with economy and crew, which
// proxy future scoring potential early in the game when VP are sparse.
func EvaluateProgress(gs *GameState, playerID int) float64 {
	if gs.Ended {
		if gs.Winner == playerID {
			return 1
		}
		return -1
	}
	return (2*gs.scoreVP(playerID) + gs.scoreEconomy(playerID) + gs.scoreCrew(playerID)) / 4
}

func (gs *GameState) scoreVP(playerID int) float64 {
	mine, best := 0.0, 0.0
	for _, p := range gs.Players {
		vp := float64(p.FinalVP())
		if p.ID == playerID {
			mine = vp
		} else if vp > best {
			best = vp
		}
	}
	return normalize(mine, best)
}

func (gs *GameState) scoreEconomy(playerID int) float64 {
	worth := func(p *PlayerState) float64 {
		// Weight scoring goods above working capital
		return float64(p.Resources[Silver]+p.Resources[Provisions]) +
			2*float64(p.Resources[Gold]+p.Resources[Iron]+p.Resources[Livestock]) +
			float64(p.Armour+p.Valkyries)
	}
	mine, best := 0.0, 0.0
	for _, p := range gs.Players {
		w := worth(p)
		if p.ID == playerID {
			mine = w
		} else if w > best {
			best = w
		}
	}
	return normalize(mine, best)
}

func (gs *GameState) scoreCrew(playerID int) float64 {
	strength := func(p *PlayerState) float64 {
		total := 0.0
		for _, c := range p.Crew {
			total += float64(c.Strength)
		}
		return total
	}
	mine, best := 0.0, 0.0
	for _, p := range gs.Players {
		s := strength(p)
		if p.ID == playerID {
			mine = s
		} else if s > best {
			best = s
		}
	}
	return normalize(mine, best)
}

// normalize maps value relative to otherValue to a score in [-1, 1].
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
