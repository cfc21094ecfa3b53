package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Zero(t, normalize(0, 0), "No signal on both sides should score even")
	require.Equal(t, 1.0, normalize(5, 0), "Unopposed value should score the maximum")
	require.Equal(t, -1.0, normalize(0, 5), "Being shut out should score the minimum")
	require.Zero(t, normalize(3, 3), "Equal value should score even")
	require.InDelta(t, 1.0/3.0, normalize(4, 2), 1e-9)
}

func TestEvaluateScore(t *testing.T) {
	t.Run("terminal states collapse to win or loss", func(t *testing.T) {
		gs := newTestState(t, 5)
		gs.Players[1].VP = 9
		gs.OfferingStack = nil
		gs.CheckEndConditions()

		require.Equal(t, 1.0, EvaluateScore(gs, 1))
		require.Equal(t, -1.0, EvaluateScore(gs, 0))
	})

	t.Run("running games favor the points leader", func(t *testing.T) {
		gs := newTestState(t, 5)
		gs.Players[0].VP = 6
		gs.Players[1].VP = 2

		gotLeader := EvaluateScore(gs, 0)
		gotTrailer := EvaluateScore(gs, 1)

		require.Greater(t, gotLeader, 0.0)
		require.Less(t, gotTrailer, 0.0)
		require.InDelta(t, 0.5, gotLeader, 1e-9, "Six against two should normalize to a half")
	})

	t.Run("even games score even", func(t *testing.T) {
		gs := newTestState(t, 5)

		require.Zero(t, EvaluateScore(gs, 0), "Neither player has scored yet")
	})
}

func TestEvaluateProgress(t *testing.T) {
	t.Run("terminal states collapse to win or loss", func(t *testing.T) {
		gs := newTestState(t, 5)
		gs.OfferingStack = nil
		gs.CheckEndConditions()

		require.Equal(t, 1.0, EvaluateProgress(gs, gs.Winner))
	})

	t.Run("economy and crew count before any points land", func(t *testing.T) {
		gs := newTestState(t, 5)
		rich := gs.Players[0]
		poor := gs.Players[1]
		rich.Resources = ResourceSet{Silver: 4, Gold: 2}
		poor.Resources = ResourceSet{}
		oarsman, _ := gs.Catalog.Card("card_oarsman")
		rich.Crew = []*TownsfolkCard{oarsman}

		gotRich := EvaluateProgress(gs, rich.ID)
		gotPoor := EvaluateProgress(gs, poor.ID)

		require.Greater(t, gotRich, gotPoor, "The stocked player should evaluate ahead")
		require.Greater(t, gotRich, 0.0)
	})

	t.Run("a points lead dominates the blend", func(t *testing.T) {
		gs := newTestState(t, 5)
		gs.Players[0].VP = 8

		require.Greater(t, EvaluateProgress(gs, 0), EvaluateProgress(gs, 1))
	})
}
