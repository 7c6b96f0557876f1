package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrRunNotFound is returned by RunByID for an unknown run.
var ErrRunNotFound = errors.New("storage: run not found")

// RunRecord is a finished run. RunID is a ULID, so IDs sort by creation time.
type RunRecord struct {
	RunID      string
	GameID     string
	Difficulty string
	Score      int
	Level      int
	Kills      int
	Waves      int
	Ticks      uint64
	Outcome    string // "defeated", "cleared" or "aborted"
	CreatedAt  time.Time
}

// SaveRun stores a run and returns its newly assigned ID.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	id := ulid.Make()
	created := ulid.Time(id.Time()).UTC()

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, difficulty, score, level, kills, waves, ticks, outcome, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(),
		r.GameID,
		r.Difficulty,
		r.Score,
		r.Level,
		r.Kills,
		r.Waves,
		int64(r.Ticks),
		r.Outcome,
		created.Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id.String(), nil
}

// TopRuns returns the best runs for a mode, highest score first. An empty
// difficulty matches every difficulty.
func (s *Store) TopRuns(gameID, difficulty string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, game_id, difficulty, score, level, kills, waves, ticks, outcome, created_at
		 FROM runs
		 WHERE game_id = ? AND (? = '' OR difficulty = ?)
		 ORDER BY score DESC, run_id ASC
		 LIMIT ?`,
		gameID, difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunByID retrieves a single run.
func (s *Store) RunByID(runID string) (RunRecord, error) {
	if _, err := ulid.ParseStrict(runID); err != nil {
		return RunRecord{}, fmt.Errorf("storage: invalid run id %q: %w", runID, err)
	}

	row := s.db.QueryRow(
		`SELECT run_id, game_id, difficulty, score, level, kills, waves, ticks, outcome, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, ErrRunNotFound
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunRecord, error) {
	var r RunRecord
	var ticks int64
	var createdAt any
	err := sc.Scan(
		&r.RunID,
		&r.GameID,
		&r.Difficulty,
		&r.Score,
		&r.Level,
		&r.Kills,
		&r.Waves,
		&ticks,
		&r.Outcome,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan run: %w", err)
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}
