// Package experiments runs batches of games between configured agents
// and records the outcomes.
package experiments

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"raiders/agent"
	"raiders/communication"
	"raiders/communication/client"
	"raiders/engine"
	"raiders/experiments/metrics"
	"raiders/game"
)

// Config describes one experiment batch. Agents lists one agent kind
// per seat: random, greedy, rollout, or an http URL for a remote
// decision server.
type Config struct {
	Name     string
	Games    int
	Agents   []string
	Seed     uint64
	OutDir   string
	DBPath   string // optional SQLite results database
	MaxMoves int
}

// Run plays the configured number of games, each on its own seed, and
// writes game and move records as CSV, plus SQLite when a database
// path is set.
func Run(cfg Config) error {
	if cfg.Games <= 0 {
		return fmt.Errorf("run: number of games must be positive, got %d", cfg.Games)
	}
	if len(cfg.Agents) < 2 {
		return fmt.Errorf("run: need at least two agents, got %d", len(cfg.Agents))
	}

	catalog := game.StandardCatalog()
	names := seatNames(cfg.Agents)
	collector := metrics.NewCollector()

	log.Info().Msgf("starting %s experiment: %d games between %s", cfg.Name, cfg.Games, strings.Join(names, " and "))

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)

		sources, err := buildAgents(cfg.Agents, names, seed, collector)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		eng, err := engine.New(catalog, names, seed)
		if err != nil {
			return fmt.Errorf("run: game %d: %w", i+1, err)
		}

		start := time.Now()
		winner, err := eng.Run(sources, cfg.MaxMoves)
		if err != nil {
			return fmt.Errorf("run: game %d: %w", i+1, err)
		}

		record := metrics.GameRecord{
			Experiment: cfg.Name,
			GameID:     i + 1,
			Seed:       seed,
			Agents:     names,
			Winner:     winner,
			Rounds:     eng.State().Round,
			Moves:      len(eng.History()),
			Scores:     seatScores(eng),
			Duration:   time.Since(start),
		}
		gameRecords = append(gameRecords, record)
		moveRecords = append(moveRecords, gameMoves(cfg.Name, i+1, names, eng.History())...)

		log.Info().Msgf("game %d of %d done: winner %q after %d moves", i+1, cfg.Games, record.WinnerAgent(), record.Moves)
	}

	if counts := collector.Snapshot(); counts.Decisions > 0 {
		log.Info().Msgf("simulated %d playouts over %d decisions", counts.Playouts, counts.Decisions)
	}

	if err := writeCSV(cfg, gameRecords, moveRecords); err != nil {
		return err
	}
	if cfg.DBPath != "" {
		if err := writeStore(cfg, gameRecords, moveRecords); err != nil {
			return err
		}
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)
	return nil
}

func seatNames(kinds []string) []string {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		if strings.HasPrefix(kind, "http") {
			kind = "remote"
		}
		names[i] = kind + "-" + strconv.Itoa(i)
	}
	return names
}

func buildAgents(kinds, names []string, seed uint64, collector metrics.Collector) ([]engine.DecisionSource, error) {
	sources := make([]engine.DecisionSource, len(kinds))
	for i, kind := range kinds {
		// Seat-distinct seeds so agents do not mirror each other
		agentSeed := seed + uint64(i+1)*1000003
		switch {
		case kind == "random":
			sources[i] = agent.NewRandom(agentSeed)
		case kind == "greedy":
			sources[i] = agent.NewGreedy(agentSeed)
		case kind == "rollout":
			sources[i] = agent.NewRollout(agent.WithSeed(agentSeed), agent.WithCollector(collector))
		case strings.HasPrefix(kind, "http"):
			sources[i] = client.New(kind, names[i])
		default:
			return nil, fmt.Errorf("unknown agent kind %q", kind)
		}
	}
	return sources, nil
}

func seatScores(eng *engine.Engine) []int {
	scores := eng.Scores()
	out := make([]int, len(scores))
	for id, score := range scores {
		if id >= 0 && id < len(out) {
			out[id] = score
		}
	}
	return out
}

func gameMoves(experiment string, gameID int, names []string, history []engine.Step) []metrics.MoveRecord {
	records := make([]metrics.MoveRecord, len(history))
	for i, step := range history {
		player := step.Action.Player()
		agentName := ""
		if player >= 0 && player < len(names) {
			agentName = names[player]
		}
		action := fmt.Sprintf("%T", step.Action)
		if msg, err := communication.EncodeAction(step.Action); err == nil {
			action = msg.Type
		}
		records[i] = metrics.MoveRecord{
			Experiment:  experiment,
			GameID:      gameID,
			Move:        i + 1,
			Round:       step.State.Round,
			Player:      player,
			Agent:       agentName,
			Action:      action,
			Description: step.Action.Describe(),
		}
	}
	return records
}

func writeCSV(cfg Config, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "results"
	}
	writer, err := metrics.NewWriter(outDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info().Msgf("stored CSV results in %s", writer.Dir())
	return nil
}

func writeStore(cfg Config, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	ctx := context.Background()
	store, err := metrics.OpenStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer store.Close()

	for _, record := range games {
		if err := store.InsertGame(ctx, record); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}
	if err := store.InsertMoves(ctx, moves); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	wins, err := store.Summary(ctx, cfg.Name)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info().Msgf("stored results in %s, wins so far: %v", cfg.DBPath, wins)
	return nil
}
