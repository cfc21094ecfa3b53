package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceWorker(t *testing.T) {
	t.Run("placing on an open building resolves its effect", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		act := PlaceWorker{PlayerID: 0, BuildingID: "b_treasury"}

		require.True(t, act.IsLegal(gs))
		act.Execute(gs)

		require.Equal(t, 4, p.Amount(Silver), "Treasury placement should pay two silver")
		require.Len(t, gs.WorkersAt("b_treasury"), 2, "Placed worker should join the neutral one")
		require.Equal(t, "b_treasury", p.PlacedBuilding)
		require.False(t, p.HoldsWorker())
		require.True(t, p.UsedBuilding("b_treasury"))
		require.Zero(t, gs.Current, "Placement alone should not end the turn")
	})

	t.Run("color keyed buildings scale with the worker color", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		p.WorkerInHand = Grey

		PlaceWorker{PlayerID: 0, BuildingID: "b_mill"}.Execute(gs)

		require.Equal(t, 2, p.Amount(Provisions), "A grey worker at the mill should earn two provisions")
	})

	t.Run("rejecting a second placement in the same turn", func(t *testing.T) {
		gs := newTestState(t, 7)
		PlaceWorker{PlayerID: 0, BuildingID: "b_treasury"}.Execute(gs)

		require.False(t, PlaceWorker{PlayerID: 0, BuildingID: "b_mill"}.IsLegal(gs))
	})

	t.Run("rejecting placement without a held worker", func(t *testing.T) {
		gs := newTestState(t, 7)
		gs.Players[0].WorkerInHand = ""

		require.False(t, PlaceWorker{PlayerID: 0, BuildingID: "b_mill"}.IsLegal(gs))
	})

	t.Run("rejecting a full building", func(t *testing.T) {
		gs := newTestState(t, 7)
		gs.Placements = append(gs.Placements, WorkerPlacement{BuildingID: "b_altar", Color: Black, Owner: 1})

		require.False(t, PlaceWorker{PlayerID: 0, BuildingID: "b_altar"}.IsLegal(gs), "Altar has a single slot")
	})

	t.Run("rejecting a disallowed worker color", func(t *testing.T) {
		gs := newTestState(t, 7)
		gs.Players[0].WorkerInHand = Grey

		require.False(t, PlaceWorker{PlayerID: 0, BuildingID: "b_silversmith"}.IsLegal(gs))

		gs.Players[0].WorkerInHand = Black
		require.True(t, PlaceWorker{PlayerID: 0, BuildingID: "b_silversmith"}.IsLegal(gs))
	})

	t.Run("rejecting unknown ids", func(t *testing.T) {
		gs := newTestState(t, 7)

		require.False(t, PlaceWorker{PlayerID: 0, BuildingID: "b_nowhere"}.IsLegal(gs))
		require.False(t, PlaceWorker{PlayerID: 9, BuildingID: "b_mill"}.IsLegal(gs))
	})
}

func TestPickupWorker(t *testing.T) {
	t.Run("picking up resolves with the picked color and ends the turn", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		PlaceWorker{PlayerID: 0, BuildingID: "b_treasury"}.Execute(gs)
		act := PickupWorker{PlayerID: 0, BuildingID: "b_gate_house"}

		require.True(t, act.IsLegal(gs))
		act.Execute(gs)

		require.Equal(t, Black, p.WorkerInHand, "Picked worker should land in hand")
		require.Empty(t, gs.WorkersAt("b_gate_house"))
		require.Equal(t, 5, p.Amount(Silver), "Gate house pickup should grant the black option")
		require.Equal(t, 1, gs.Current, "Pickup should end the turn")
		require.True(t, p.HasActed)
	})

	t.Run("picking up an opponent's worker transfers it", func(t *testing.T) {
		gs := newTestState(t, 7)
		gs.Placements = append(gs.Placements, WorkerPlacement{BuildingID: "b_mill", Color: White, Owner: 1})
		p := gs.Players[0]
		opponentSilver := gs.Players[1].Amount(Silver)
		PlaceWorker{PlayerID: 0, BuildingID: "b_treasury"}.Execute(gs)

		act := PickupWorker{PlayerID: 0, BuildingID: "b_mill"}
		require.True(t, act.IsLegal(gs), "Workers are shared once placed")
		act.Execute(gs)

		require.Equal(t, White, p.WorkerInHand, "The picked worker keeps its color")
		require.Equal(t, 3, p.Amount(Provisions), "Mill should resolve with the picked white worker")
		require.Equal(t, opponentSilver, gs.Players[1].Amount(Silver), "The pickup itself costs the opponent nothing")
	})

	t.Run("rejecting pickup from the building just placed", func(t *testing.T) {
		gs := newTestState(t, 7)
		PlaceWorker{PlayerID: 0, BuildingID: "b_treasury"}.Execute(gs)

		require.False(t, PickupWorker{PlayerID: 0, BuildingID: "b_treasury"}.IsLegal(gs))
	})

	t.Run("rejecting pickup while still holding a worker", func(t *testing.T) {
		gs := newTestState(t, 7)

		require.False(t, PickupWorker{PlayerID: 0, BuildingID: "b_gate_house"}.IsLegal(gs))
	})

	t.Run("rejecting pickup from an empty building", func(t *testing.T) {
		gs := newTestState(t, 7)
		PlaceWorker{PlayerID: 0, BuildingID: "b_treasury"}.Execute(gs)

		require.False(t, PickupWorker{PlayerID: 0, BuildingID: "b_mill"}.IsLegal(gs))
	})

	t.Run("rejecting pickup from a building already used this turn", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		PlaceWorker{PlayerID: 0, BuildingID: "b_treasury"}.Execute(gs)
		p.UsedBuildings = append(p.UsedBuildings, "b_gate_house")

		require.False(t, PickupWorker{PlayerID: 0, BuildingID: "b_gate_house"}.IsLegal(gs))
	})
}

func TestHireCrew(t *testing.T) {
	t.Run("hiring moves a card from hand to crew for silver", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		oarsman, _ := gs.Catalog.Card("card_oarsman")
		p.Hand = []*TownsfolkCard{oarsman}
		act := HireCrew{PlayerID: 0, CardID: "card_oarsman"}

		require.True(t, act.IsLegal(gs))
		act.Execute(gs)

		require.Empty(t, p.Hand)
		require.Len(t, p.Crew, 1)
		require.Equal(t, "card_oarsman", p.Crew[0].ID)
		require.Equal(t, 1, p.Amount(Silver), "Hire should cost the card price")
	})

	t.Run("rejecting an unaffordable hire", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		berserker, _ := gs.Catalog.Card("card_berserker")
		p.Hand = []*TownsfolkCard{berserker}

		require.False(t, HireCrew{PlayerID: 0, CardID: "card_berserker"}.IsLegal(gs), "Two silver cannot pay a three silver cost")
	})

	t.Run("rejecting a hire not in hand", func(t *testing.T) {
		gs := newTestState(t, 7)
		gs.Players[0].Hand = nil

		require.False(t, HireCrew{PlayerID: 0, CardID: "card_oarsman"}.IsLegal(gs))
	})

	t.Run("rejecting a second hero", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		chieftain, _ := gs.Catalog.Card("card_chieftain")
		skald, _ := gs.Catalog.Card("card_skald")
		p.Crew = []*TownsfolkCard{chieftain}
		p.Hand = []*TownsfolkCard{skald}
		p.Resources[Silver] = 9

		require.False(t, HireCrew{PlayerID: 0, CardID: "card_skald"}.IsLegal(gs), "A crew holds at most one hero")
	})

	t.Run("a full crew needs a named discard", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		oarsman, _ := gs.Catalog.Card("card_oarsman")
		merchant, _ := gs.Catalog.Card("card_merchant")
		berserker, _ := gs.Catalog.Card("card_berserker")
		p.Crew = []*TownsfolkCard{oarsman, oarsman, oarsman, oarsman, merchant}
		p.Hand = []*TownsfolkCard{berserker}
		p.Resources[Silver] = 3

		require.False(t, HireCrew{PlayerID: 0, CardID: "card_berserker"}.IsLegal(gs))

		act := HireCrew{PlayerID: 0, CardID: "card_berserker", DiscardCrewID: "card_merchant"}
		require.True(t, act.IsLegal(gs))
		act.Execute(gs)

		require.Len(t, p.Crew, CrewLimit, "Crew should stay at the cap")
		require.Equal(t, "card_berserker", p.Crew[len(p.Crew)-1].ID)
		require.Less(t, cardIndex(p.Crew, "card_merchant"), 0, "Discarded crew should be gone")
		require.Equal(t, 1, gs.DiscardSize())
		require.Zero(t, p.Amount(Silver))
	})

	t.Run("rejecting a discard not in the crew", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		oarsman, _ := gs.Catalog.Card("card_oarsman")
		merchant, _ := gs.Catalog.Card("card_merchant")
		p.Crew = []*TownsfolkCard{oarsman, oarsman, oarsman, oarsman, oarsman}
		p.Hand = []*TownsfolkCard{merchant}

		act := HireCrew{PlayerID: 0, CardID: "card_merchant", DiscardCrewID: "card_seeress"}
		require.False(t, act.IsLegal(gs))
	})
}

func TestPlayCardTownHall(t *testing.T) {
	t.Run("playing from hand discards and resolves the effect", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		berserker, _ := gs.Catalog.Card("card_berserker")
		p.Hand = []*TownsfolkCard{berserker}
		act := PlayCardTownHall{PlayerID: 0, CardID: "card_berserker"}

		require.True(t, act.IsLegal(gs))
		act.Execute(gs)

		require.Empty(t, p.Hand)
		require.Equal(t, 1, gs.DiscardSize())
		require.Equal(t, "card_berserker", gs.Discard[0].ID)
		require.Equal(t, 1, gs.Players[1].Amount(Silver), "Opponents should each lose one silver")
		require.Equal(t, 2, p.Amount(Silver), "The player keeps their own silver")
	})

	t.Run("playing from the crew removes the crew member", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		maiden, _ := gs.Catalog.Card("card_shield_maiden")
		p.Hand = nil
		p.Crew = []*TownsfolkCard{maiden}

		PlayCardTownHall{PlayerID: 0, CardID: "card_shield_maiden"}.Execute(gs)

		require.Empty(t, p.Crew)
		require.Equal(t, 1, p.Armour, "Shield maiden should grant armour")
	})

	t.Run("drawing effects pull from the deck", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		oarsman, _ := gs.Catalog.Card("card_oarsman")
		p.Hand = []*TownsfolkCard{oarsman}

		PlayCardTownHall{PlayerID: 0, CardID: "card_oarsman"}.Execute(gs)

		require.Len(t, p.Hand, 1, "Oarsman should replace itself with a draw")
		require.Equal(t, 27, gs.DeckSize())
	})

	t.Run("rejecting heroes", func(t *testing.T) {
		gs := newTestState(t, 7)
		chieftain, _ := gs.Catalog.Card("card_chieftain")
		gs.Players[0].Hand = []*TownsfolkCard{chieftain}

		require.False(t, PlayCardTownHall{PlayerID: 0, CardID: "card_chieftain"}.IsLegal(gs))
	})

	t.Run("rejecting cards whose town hall effect is the hero marker", func(t *testing.T) {
		gs := newTestState(t, 7)
		custom := &TownsfolkCard{ID: "card_custom", Name: "Custom", Copies: 1, Hire: DrawCards{Amount: 1}, TownHall: HeroNoDiscard{}}
		gs.Players[0].Hand = []*TownsfolkCard{custom}

		require.False(t, PlayCardTownHall{PlayerID: 0, CardID: "card_custom"}.IsLegal(gs))
	})

	t.Run("rejecting a card not held", func(t *testing.T) {
		gs := newTestState(t, 7)
		gs.Players[0].Hand = nil

		require.False(t, PlayCardTownHall{PlayerID: 0, CardID: "card_oarsman"}.IsLegal(gs))
	})
}

func TestRaid(t *testing.T) {
	t.Run("raiding a harbor takes the full plunder and ends the turn", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		p.Resources[Provisions] = 1
		act := Raid{PlayerID: 0, LocationID: "raid_harbor_north", SublocationID: "hn1"}

		require.True(t, act.IsLegal(gs))
		act.Execute(gs)

		require.Zero(t, p.Amount(Provisions), "Raid should consume the provision cost")
		require.Equal(t, 1, p.VP, "Crewless harbor raid should score the bottom tier")
		require.Equal(t, 1, p.Amount(Iron))
		require.Equal(t, 1, p.Amount(Livestock))

		gotSpot := gs.RaidSpotAt("raid_harbor_north", "hn1")
		require.True(t, gotSpot.Plunder.IsEmpty(), "Plunder should transfer wholesale")
		require.Equal(t, Black, gotSpot.Occupant, "The spent worker should stay on the spot")
		require.False(t, p.HoldsWorker())
		require.Equal(t, 1, gs.Current, "A raid should end the turn")
	})

	t.Run("an overwhelming fortress raid scores the top tier", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		chieftain, _ := gs.Catalog.Card("card_chieftain")
		berserker, _ := gs.Catalog.Card("card_berserker")
		maiden, _ := gs.Catalog.Card("card_shield_maiden")
		p.Crew = []*TownsfolkCard{chieftain, berserker, berserker, berserker, maiden}
		p.Armour = 10
		p.Resources[Provisions] = 3
		p.Resources[Gold] = 2
		act := Raid{
			PlayerID:      0,
			LocationID:    "raid_fortress_high",
			SublocationID: "fh1",
			CrewIDs:       []string{"card_chieftain", "card_berserker", "card_berserker", "card_berserker", "card_shield_maiden"},
		}

		require.True(t, act.IsLegal(gs))
		act.Execute(gs)

		require.Equal(t, 10, p.VP, "Strength past the top boundary should score ten regardless of dice")
		require.Equal(t, 2, p.Amount(Gold), "Two gold paid, two gold plundered")
		require.Equal(t, 1, p.Valkyries)
		require.Zero(t, p.Amount(Provisions))
	})

	t.Run("rejecting a raid without provisions", func(t *testing.T) {
		gs := newTestState(t, 7)

		require.False(t, Raid{PlayerID: 0, LocationID: "raid_harbor_north", SublocationID: "hn1"}.IsLegal(gs))
	})

	t.Run("rejecting a raid with too few crew", func(t *testing.T) {
		gs := newTestState(t, 7)
		gs.Players[0].Resources[Provisions] = 2

		require.False(t, Raid{PlayerID: 0, LocationID: "raid_outpost_east", SublocationID: "oe1"}.IsLegal(gs))
	})

	t.Run("rejecting crew ids beyond the owned copies", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		oarsman, _ := gs.Catalog.Card("card_oarsman")
		p.Crew = []*TownsfolkCard{oarsman}
		p.Resources[Provisions] = 2

		act := Raid{PlayerID: 0, LocationID: "raid_outpost_east", SublocationID: "oe1",
			CrewIDs: []string{"card_oarsman", "card_oarsman"}}
		require.False(t, act.IsLegal(gs), "Naming one copy twice needs two copies in crew")
	})

	t.Run("rejecting a disallowed worker color", func(t *testing.T) {
		gs := newTestState(t, 7)
		p := gs.Players[0]
		oarsman, _ := gs.Catalog.Card("card_oarsman")
		p.Crew = []*TownsfolkCard{oarsman}
		p.Resources[Provisions] = 2
		p.WorkerInHand = White

		act := Raid{PlayerID: 0, LocationID: "raid_outpost_east", SublocationID: "oe1",
			CrewIDs: []string{"card_oarsman"}}
		require.False(t, act.IsLegal(gs), "The eastern outpost refuses white workers")
	})

	t.Run("rejecting a plundered spot", func(t *testing.T) {
		gs := newTestState(t, 7)
		gs.Players[0].Resources[Provisions] = 1
		Raid{PlayerID: 0, LocationID: "raid_harbor_north", SublocationID: "hn1"}.Execute(gs)
		gs.Players[1].Resources[Provisions] = 1

		act := Raid{PlayerID: 1, LocationID: "raid_harbor_north", SublocationID: "hn1"}
		require.False(t, act.IsLegal(gs), "An emptied spot cannot be raided again")
	})

	t.Run("rejecting unknown locations and spots", func(t *testing.T) {
		gs := newTestState(t, 7)
		gs.Players[0].Resources[Provisions] = 9

		require.False(t, Raid{PlayerID: 0, LocationID: "raid_nowhere", SublocationID: "x"}.IsLegal(gs))
		require.False(t, Raid{PlayerID: 0, LocationID: "raid_harbor_north", SublocationID: "zz"}.IsLegal(gs))
	})
}

func TestIsLegalHasNoSideEffects(t *testing.T) {
	gs := newTestState(t, 7)
	wantHash := gs.Hash()

	checks := []Action{
		PlaceWorker{PlayerID: 0, BuildingID: "b_nowhere"},
		PlaceWorker{PlayerID: 0, BuildingID: "b_mill"},
		PickupWorker{PlayerID: 0, BuildingID: "b_gate_house"},
		HireCrew{PlayerID: 0, CardID: "card_oarsman"},
		PlayCardTownHall{PlayerID: 0, CardID: "card_chieftain"},
		Raid{PlayerID: 0, LocationID: "raid_harbor_north", SublocationID: "hn1"},
	}
	for _, act := range checks {
		act.IsLegal(gs)
	}

	require.Equal(t, wantHash, gs.Hash(), "Legality checks must not mutate the state")
}

func TestActionDescriptions(t *testing.T) {
	cases := []struct {
		act  Action
		want string
	}{
		{PlaceWorker{PlayerID: 0, BuildingID: "b_mill"}, "player 0 places a worker at b_mill"},
		{PickupWorker{PlayerID: 1, BuildingID: "b_altar"}, "player 1 picks up a worker from b_altar"},
		{HireCrew{PlayerID: 0, CardID: "card_oarsman"}, "player 0 hires card_oarsman"},
		{HireCrew{PlayerID: 0, CardID: "card_skald", DiscardCrewID: "card_merchant"},
			"player 0 hires card_skald, discarding card_merchant from crew"},
		{PlayCardTownHall{PlayerID: 1, CardID: "card_navigator"}, "player 1 plays card_navigator at the town hall"},
		{Raid{PlayerID: 0, LocationID: "raid_harbor_north", SublocationID: "hn2"},
			"player 0 raids raid_harbor_north/hn2 with crew []"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.act.Describe())
	}
}
