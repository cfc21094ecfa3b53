package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// Store persists experiment results in SQLite so runs accumulate into
// one queryable database.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the results database at path.
func OpenStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	s := &Store{db: db}
	if err := s.createTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) createTables(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			experiment TEXT NOT NULL,
			game_id INTEGER NOT NULL,
			seed TEXT NOT NULL,
			winner INTEGER NOT NULL,
			winner_agent TEXT NOT NULL,
			rounds INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS scores (
			experiment TEXT NOT NULL,
			game_id INTEGER NOT NULL,
			player INTEGER NOT NULL,
			agent TEXT NOT NULL,
			score INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS moves (
			experiment TEXT NOT NULL,
			game_id INTEGER NOT NULL,
			move INTEGER NOT NULL,
			round INTEGER NOT NULL,
			player INTEGER NOT NULL,
			agent TEXT NOT NULL,
			action TEXT NOT NULL,
			description TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// InsertGame stores one game record along with its per-seat scores.
func (s *Store) InsertGame(ctx context.Context, r GameRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO games (experiment, game_id, seed, winner, winner_agent, rounds, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Experiment, r.GameID, strconv.FormatUint(r.Seed, 10), r.Winner, r.WinnerAgent(),
		r.Rounds, r.Moves, r.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	for player, score := range r.Scores {
		agent := ""
		if player < len(r.Agents) {
			agent = r.Agents[player]
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO scores (experiment, game_id, player, agent, score) VALUES (?, ?, ?, ?, ?)`,
			r.Experiment, r.GameID, player, agent, score); err != nil {
			return fmt.Errorf("insert score: %w", err)
		}
	}

	return tx.Commit()
}

// InsertMoves stores move records in one transaction.
func (s *Store) InsertMoves(ctx context.Context, records []MoveRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO moves (experiment, game_id, move, round, player, agent, action, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range records {
		if _, err := stmt.ExecContext(ctx,
			m.Experiment, m.GameID, m.Move, m.Round, m.Player, m.Agent, m.Action, m.Description); err != nil {
			return fmt.Errorf("insert move: %w", err)
		}
	}

	return tx.Commit()
}

// Summary counts wins per agent across all stored games of one
// experiment. Games without a winner are excluded.
func (s *Store) Summary(ctx context.Context, experiment string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT winner_agent, COUNT(*) FROM games WHERE experiment = ? AND winner >= 0 GROUP BY winner_agent`,
		experiment)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	wins := make(map[string]int)
	for rows.Next() {
		var agent string
		var count int
		if err := rows.Scan(&agent, &count); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		wins[agent] = count
	}
	return wins, rows.Err()
}
