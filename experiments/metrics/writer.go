package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// GameRecord summarizes one completed game.
type GameRecord struct {
	Experiment string
	GameID     int
	Seed       uint64
	Agents     []string // seat order
	Winner     int      // player ID, -1 when no end condition was reached
	Rounds     int
	Moves      int
	Scores     []int // seat order
	Duration   time.Duration
}

// WinnerAgent names the winning seat's agent, empty when there is none.
func (r GameRecord) WinnerAgent() string {
	if r.Winner < 0 || r.Winner >= len(r.Agents) {
		return ""
	}
	return r.Agents[r.Winner]
}

// MoveRecord describes one applied action.
type MoveRecord struct {
	Experiment  string
	GameID      int
	Move        int // 1-based within the game
	Round       int
	Player      int
	Agent       string
	Action      string
	Description string
}

// Writer stores experiment results as CSV files under a timestamped
// directory.
type Writer struct {
	dir string
}

func NewWriter(baseDir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	dir := filepath.Join(baseDir, name, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the directory the writer stores files in.
func (w *Writer) Dir() string { return w.dir }

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.dir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"experiment", "game", "seed", "agents", "winner", "winner_agent", "rounds", "moves", "scores", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		scores := make([]string, len(record.Scores))
		for i, s := range record.Scores {
			scores[i] = strconv.Itoa(s)
		}
		row := []string{
			record.Experiment,
			strconv.Itoa(record.GameID),
			strconv.FormatUint(record.Seed, 10),
			strings.Join(record.Agents, ";"),
			strconv.Itoa(record.Winner),
			record.WinnerAgent(),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Moves),
			strings.Join(scores, ";"),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.dir, "moves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"experiment", "game", "move", "round", "player", "agent", "action", "description"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Experiment,
			strconv.Itoa(record.GameID),
			strconv.Itoa(record.Move),
			strconv.Itoa(record.Round),
			strconv.Itoa(record.Player),
			record.Agent,
			record.Action,
			record.Description,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}
