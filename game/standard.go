package game

// Names of the buildings that receive a neutral black worker at setup.
const (
	GateHouseName = "Gate House"
	TownHallName  = "Town Hall"
	TreasuryName  = "Treasury"
)

// startingBuildingNames lists where the three neutral workers begin.
var startingBuildingNames = []string{GateHouseName, TownHallName, TreasuryName}

// StandardCatalog returns the built-in reference dataset. The data is
// compiled in; validation failures here are programmer errors.
func StandardCatalog() *Catalog {
	c, err := NewCatalog(standardBuildings(), standardLocations(), standardOfferings(), standardCards())
	if err != nil {
		panic(err)
	}
	return c
}

func standardBuildings() []*VillageBuilding {
	return []*VillageBuilding{
		{
			ID:    "b_mill",
			Name:  "Mill",
			Slots: 2,
			Effect: GainByWorkerColor{ByColor: map[WorkerColor]ColorGrant{
				Black: {Fixed: ResourceSet{Provisions: 1}},
				Grey:  {Fixed: ResourceSet{Provisions: 2}},
				White: {Choice: []ResourceSet{{Provisions: 3}, {Gold: 1}}},
			}},
		},
		{
			ID:    "b_gate_house",
			Name:  GateHouseName,
			Slots: 2,
			Effect: GainByWorkerColor{ByColor: map[WorkerColor]ColorGrant{
				Black: {Choice: []ResourceSet{{Silver: 1}, {Provisions: 1}}},
				Grey:  {Fixed: ResourceSet{Silver: 2}},
				White: {Fixed: ResourceSet{Silver: 2, Provisions: 1}},
			}},
		},
		{
			ID:     "b_barracks",
			Name:   "Barracks",
			Slots:  4,
			Effect: HireCrewHere{},
		},
		{
			ID:     "b_town_hall",
			Name:   TownHallName,
			Slots:  2,
			Effect: PlayTownHallHere{},
		},
		{
			ID:     "b_treasury",
			Name:   TreasuryName,
			Slots:  2,
			Effect: GainResource{Resource: Silver, Amount: 2},
		},
		{
			ID:     "b_long_house",
			Name:   "Long House",
			Slots:  1,
			Effect: Unresolved{Kind: "swap-crew-card"},
		},
		{
			ID:            "b_silversmith",
			Name:          "Silversmith",
			Slots:         2,
			Effect:        Trade{Give: ResourceSet{Iron: 1}, Receive: ResourceSet{Silver: 2}},
			AllowedColors: []WorkerColor{Black, White},
		},
		{
			ID:     "b_armoury",
			Name:   "Armoury",
			Slots:  2,
			Effect: GainResource{Resource: Armour, Amount: 1},
		},
		{
			ID:     "b_altar",
			Name:   "Altar",
			Slots:  1,
			Effect: MakeOffering{},
		},
	}
}

func standardLocations() []*RaidLocation {
	return []*RaidLocation{
		{
			ID:           "raid_harbor_north",
			Name:         "Northern Harbor",
			Type:         Harbor,
			Requirements: RaidRequirements{MinCrew: 0, Provisions: 1},
			Dice:         0,
			Tiers:        []VPTier{{MinStrength: 10, VP: 2}, {MinStrength: 0, VP: 1}},
			Sublocations: []RaidSublocation{
				{ID: "hn1", Plunder: ResourceSet{Iron: 1, Livestock: 1}},
				{ID: "hn2", Plunder: ResourceSet{Livestock: 2}},
				{ID: "hn3", Plunder: ResourceSet{Iron: 2}},
			},
		},
		{
			ID:           "raid_harbor_south",
			Name:         "Southern Harbor",
			Type:         Harbor,
			Requirements: RaidRequirements{MinCrew: 0, Provisions: 1},
			Dice:         0,
			Tiers:        []VPTier{{MinStrength: 10, VP: 2}, {MinStrength: 0, VP: 1}},
			Sublocations: []RaidSublocation{
				{ID: "hs1", Plunder: ResourceSet{Livestock: 1, Iron: 1}},
				{ID: "hs2", Plunder: ResourceSet{Gold: 1, Livestock: 1}},
				{ID: "hs3", Plunder: ResourceSet{Iron: 1, Livestock: 2}},
			},
		},
		{
			ID:           "raid_outpost_east",
			Name:         "Eastern Outpost",
			Type:         Outpost,
			Requirements: RaidRequirements{MinCrew: 1, Provisions: 2, AllowedColors: []WorkerColor{Black, Grey}},
			Dice:         1,
			Tiers:        []VPTier{{MinStrength: 15, VP: 3}, {MinStrength: 8, VP: 2}, {MinStrength: 0, VP: 1}},
			Sublocations: []RaidSublocation{
				{ID: "oe1", Plunder: ResourceSet{Gold: 1, Iron: 1}},
				{ID: "oe2", Plunder: ResourceSet{Gold: 1, Livestock: 1}, StartingColor: Grey},
				{ID: "oe3", Plunder: ResourceSet{Iron: 2, Gold: 1}},
			},
		},
		{
			ID:           "raid_monastery_cliff",
			Name:         "Cliffside Monastery",
			Type:         Monastery,
			Requirements: RaidRequirements{MinCrew: 2, Provisions: 2, Gold: 1},
			Dice:         1,
			Tiers: []VPTier{
				{MinStrength: 18, VP: 4},
				{MinStrength: 12, VP: 3},
				{MinStrength: 6, VP: 2},
				{MinStrength: 0, VP: 1},
			},
			Sublocations: []RaidSublocation{
				{ID: "mc1", Plunder: ResourceSet{Gold: 2}},
				{ID: "mc2", Plunder: ResourceSet{Gold: 1, Valkyrie: 1}, StartingColor: Grey},
			},
		},
		{
			ID:           "raid_fortress_high",
			Name:         "High Fortress",
			Type:         Fortress,
			Requirements: RaidRequirements{MinCrew: 3, Provisions: 3, Gold: 2},
			Dice:         2,
			Tiers:        []VPTier{{MinStrength: 30, VP: 10}, {MinStrength: 20, VP: 5}, {MinStrength: 0, VP: 0}},
			Sublocations: []RaidSublocation{
				{ID: "fh1", Plunder: ResourceSet{Gold: 2, Valkyrie: 1}},
				{ID: "fh2", Plunder: ResourceSet{Iron: 2, Valkyrie: 1}, StartingColor: White},
			},
		},
		{
			ID:           "raid_fortress_sea",
			Name:         "Sea Fortress",
			Type:         Fortress,
			Requirements: RaidRequirements{MinCrew: 3, Provisions: 3, Gold: 2},
			Dice:         2,
			Tiers: []VPTier{
				{MinStrength: 32, VP: 10},
				{MinStrength: 24, VP: 6},
				{MinStrength: 16, VP: 3},
				{MinStrength: 0, VP: 1},
			},
			Sublocations: []RaidSublocation{
				{ID: "fs1", Plunder: ResourceSet{Gold: 1, Livestock: 1, Valkyrie: 1}},
				{ID: "fs2", Plunder: ResourceSet{Gold: 2, Iron: 1}, StartingColor: White},
			},
		},
	}
}

func standardOfferings() []*OfferingTile {
	return []*OfferingTile{
		{ID: "off_sheep", Cost: ResourceSet{Livestock: 1}, VP: 2},
		{ID: "off_iron_pair", Cost: ResourceSet{Iron: 2}, VP: 2},
		{ID: "off_gold_pair", Cost: ResourceSet{Gold: 2}, VP: 3},
		{ID: "off_feast", Cost: ResourceSet{Provisions: 2, Livestock: 1}, VP: 3},
		{ID: "off_treasure", Cost: ResourceSet{Gold: 1, Iron: 1}, VP: 3},
		{ID: "off_herd", Cost: ResourceSet{Livestock: 2}, VP: 3},
		{ID: "off_tribute", Cost: ResourceSet{Gold: 3}, VP: 4},
		{ID: "off_relic", Cost: ResourceSet{Gold: 2, Iron: 1}, VP: 4},
	}
}

func standardCards() []*TownsfolkCard {
	return []*TownsfolkCard{
		{
			ID: "card_oarsman", Name: "Oarsman", Cost: 1, Strength: 1, VP: 0, Copies: 4,
			Hire:     RaidTypeBonus{Type: Harbor, Bonus: 2},
			TownHall: DrawCards{Amount: 1},
		},
		{
			ID: "card_berserker", Name: "Berserker", Cost: 3, Strength: 3, VP: 1, Copies: 3,
			Hire:     RaidTypeBonus{Type: Fortress, Bonus: 3},
			TownHall: OpponentsLoseResource{Resource: Silver, Amount: 1},
		},
		{
			ID: "card_shield_maiden", Name: "Shield Maiden", Cost: 2, Strength: 2, VP: 1, Copies: 3,
			Hire:     DynamicStrength{Condition: ByArmour, Divisor: 2, BonusPer: 1},
			TownHall: GainResource{Resource: Armour, Amount: 1},
		},
		{
			ID: "card_navigator", Name: "Navigator", Cost: 2, Strength: 1, VP: 1, Copies: 3,
			Hire:     RaidTypeBonus{Type: Monastery, Bonus: 2},
			TownHall: DrawCards{Amount: 2},
		},
		{
			ID: "card_quartermaster", Name: "Quartermaster", Cost: 2, Strength: 1, VP: 1, Copies: 3,
			Hire:     DynamicStrength{Condition: ByCrew, Divisor: 1, BonusPer: 1},
			TownHall: Trade{Give: ResourceSet{Provisions: 1}, Receive: ResourceSet{Silver: 2}},
		},
		{
			ID: "card_hunter", Name: "Hunter", Cost: 1, Strength: 1, VP: 0, Copies: 4,
			Hire:     Unresolved{Kind: "swap-worker"},
			TownHall: GainResources{Resources: ResourceSet{Provisions: 1, Livestock: 1}},
		},
		{
			ID: "card_merchant", Name: "Merchant", Cost: 1, Strength: 0, VP: 1, Copies: 4,
			Hire:     Unresolved{Kind: "discard-for-currency"},
			TownHall: Trade{Give: ResourceSet{Livestock: 1}, Receive: ResourceSet{Gold: 1}},
		},
		{
			ID: "card_blacksmith", Name: "Blacksmith", Cost: 2, Strength: 1, VP: 1, Copies: 3,
			Hire:     Unresolved{Kind: "steal-plunder"},
			TownHall: GainResource{Resource: Armour, Amount: 2},
		},
		{
			ID: "card_seeress", Name: "Seeress", Cost: 3, Strength: 0, VP: 2, Copies: 2,
			Hire:     DynamicStrength{Condition: ByValkyrie, Divisor: 1, BonusPer: 2},
			TownHall: CollectFromOpponents{Options: []Resource{Silver, Provisions}, Amount: 1},
		},
		{
			ID: "card_drummer", Name: "Drummer", Cost: 1, Strength: 0, VP: 0, Copies: 3,
			Hire:     Unresolved{Kind: "swap-crew-card"},
			TownHall: ManipulateOfferings{},
		},
		{
			ID: "card_chieftain", Name: "Chieftain", Cost: 4, Strength: 4, VP: 3, Copies: 1,
			Hire:     RaidTypeBonus{Type: Fortress, Bonus: 2},
			TownHall: HeroNoDiscard{},
			Hero:     true,
		},
		{
			ID: "card_skald", Name: "Skald", Cost: 3, Strength: 2, VP: 2, Copies: 1,
			Hire:          RaidTypeBonus{Type: Outpost, Bonus: 3},
			TownHall:      HeroNoDiscard{},
			RequiredColor: White,
			Hero:          true,
		},
	}
}
