// Package storage keeps the history of finished rounds for one session.
// Uses the pure-Go modernc.org/sqlite driver with an in-memory database, so
// nothing outlives the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Store holds the rounds played in the current session.
// It is meant to be used from a single goroutine.
type Store struct {
	db   *sql.DB
	name string
}

// Round is a finished round.
type Round struct {
	ID      string
	Seq     int64 // Order of play, starting at 1
	Score   int
	Length  int
	Ticks   uint64
	Won     bool
	EndedAt time.Time
}

// Stats contains aggregated statistics for the session.
type Stats struct {
	Rounds    int
	BestScore int
	AvgScore  float64
	Wins      int
}

// Open creates a fresh in-memory session database.
func Open() (*Store, error) {
	name := uuid.NewString()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// The database lives as long as a connection is open
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, name: name}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Name returns the name of the in-memory database.
func (s *Store) Name() string {
	return s.name
}

// Close closes the database; its contents are gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRound stores a finished round.
func (s *Store) RecordRound(r core.RoundResult, endedAt time.Time) (Round, error) {
	round := Round{
		ID:      uuid.NewString(),
		Score:   r.Score,
		Length:  r.Length,
		Ticks:   r.Ticks,
		Won:     r.Won,
		EndedAt: endedAt,
	}

	result, err := s.db.Exec(
		"INSERT INTO rounds (id, score, length, ticks, won, ended_at) VALUES (?, ?, ?, ?, ?, ?)",
		round.ID, round.Score, round.Length, int64(round.Ticks), round.Won, endedAt.UnixNano(),
	)
	if err != nil {
		return Round{}, fmt.Errorf("storage: cannot save round: %w", err)
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return Round{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	round.Seq = seq

	return round, nil
}

// TopRounds returns the best rounds, highest score first. Ties keep the
// order of play.
func (s *Store) TopRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT seq, id, score, length, ticks, won, ended_at
		 FROM rounds
		 ORDER BY score DESC, seq ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRounds returns the latest rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT seq, id, score, length, ticks, won, ended_at
		 FROM rounds
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var ticks, endedAt int64
		if err := rows.Scan(&r.Seq, &r.ID, &r.Score, &r.Length, &ticks, &r.Won, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.EndedAt = time.Unix(0, endedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// BestScore returns the highest score of the session.
// Returns 0 if no rounds were played.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats returns aggregated statistics for the session.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(won), 0)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.BestScore, &st.AvgScore, &st.Wins)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}
