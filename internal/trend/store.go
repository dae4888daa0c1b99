// Package trend reads historical signal snapshots from the external
// trend database. qcorr never owns or writes this store; the analyzers
// record a snapshot per run and this package only looks backwards to
// say which way each signal is moving.
//
// Expected schema (owned by the recording side):
//
//	CREATE TABLE signal_snapshots (
//	    analyzer    TEXT NOT NULL,
//	    signal      TEXT NOT NULL,
//	    value       REAL NOT NULL,
//	    recorded_at TEXT NOT NULL  -- RFC 3339
//	);
package trend

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Snapshot is one analyzer run's signal values.
type Snapshot struct {
	Analyzer   string             `json:"analyzer"`
	RecordedAt time.Time          `json:"recordedAt"`
	Signals    map[string]float64 `json:"signals"`
}

// Store is a read-only view over the trend database.
type Store struct {
	conn *sql.DB
	path string
}

// Open opens the trend database read-only. A missing file is an error:
// trend data is optional upstream, so callers decide whether absence
// matters.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("trend database %s: %w", path, err)
	}

	conn, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open trend database: %w", err)
	}
	return &Store{conn: conn, path: path}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// LatestSnapshot returns the most recent snapshot for the analyzer, or
// nil when the store has none.
func (s *Store) LatestSnapshot(analyzer string) (*Snapshot, error) {
	runs, err := s.recentRuns(analyzer, 1)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return s.snapshotAt(analyzer, runs[0])
}

// SnapshotsSince returns all snapshots for the analyzer recorded at or
// after since, oldest first.
func (s *Store) SnapshotsSince(analyzer string, since time.Time) ([]Snapshot, error) {
	rows, err := s.conn.Query(`
		SELECT DISTINCT recorded_at FROM signal_snapshots
		WHERE analyzer = ? AND recorded_at >= ?
		ORDER BY recorded_at ASC
	`, analyzer, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var stamps []string
	for rows.Next() {
		var stamp string
		if err := rows.Scan(&stamp); err != nil {
			return nil, err
		}
		stamps = append(stamps, stamp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	snapshots := make([]Snapshot, 0, len(stamps))
	for _, stamp := range stamps {
		snap, err := s.snapshotAt(analyzer, stamp)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snap)
	}
	return snapshots, nil
}

// Delta returns latest-minus-previous per signal for the analyzer.
// Signals present in only one of the two runs are treated as zero in
// the other. Fewer than two runs yields a nil map.
func (s *Store) Delta(analyzer string) (map[string]float64, error) {
	runs, err := s.recentRuns(analyzer, 2)
	if err != nil {
		return nil, err
	}
	if len(runs) < 2 {
		return nil, nil
	}

	latest, err := s.snapshotAt(analyzer, runs[0])
	if err != nil {
		return nil, err
	}
	previous, err := s.snapshotAt(analyzer, runs[1])
	if err != nil {
		return nil, err
	}

	delta := make(map[string]float64)
	for signal, value := range latest.Signals {
		delta[signal] = value - previous.Signals[signal]
	}
	for signal, value := range previous.Signals {
		if _, seen := latest.Signals[signal]; !seen {
			delta[signal] = -value
		}
	}
	return delta, nil
}

// recentRuns returns up to limit distinct run timestamps, newest first.
func (s *Store) recentRuns(analyzer string, limit int) ([]string, error) {
	rows, err := s.conn.Query(`
		SELECT DISTINCT recorded_at FROM signal_snapshots
		WHERE analyzer = ?
		ORDER BY recorded_at DESC
		LIMIT ?
	`, analyzer, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var stamps []string
	for rows.Next() {
		var stamp string
		if err := rows.Scan(&stamp); err != nil {
			return nil, err
		}
		stamps = append(stamps, stamp)
	}
	return stamps, rows.Err()
}

// snapshotAt loads one run's signal map.
func (s *Store) snapshotAt(analyzer, stamp string) (*Snapshot, error) {
	rows, err := s.conn.Query(`
		SELECT signal, value FROM signal_snapshots
		WHERE analyzer = ? AND recorded_at = ?
	`, analyzer, stamp)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	signals := make(map[string]float64)
	for rows.Next() {
		var signal string
		var value float64
		if err := rows.Scan(&signal, &value); err != nil {
			return nil, err
		}
		signals[signal] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recordedAt, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return nil, fmt.Errorf("bad recorded_at %q: %w", stamp, err)
	}

	return &Snapshot{Analyzer: analyzer, RecordedAt: recordedAt, Signals: signals}, nil
}
