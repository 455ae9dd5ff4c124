package db

import (
	"fmt"
	"time"

	"github.com/dtnitsch/wordplot/pkg/mapreduce"
)

// Run is one recorded pipeline execution.
type Run struct {
	RunID              int64
	URL                string
	FetchedAt          time.Time
	FromCache          bool
	Language           string
	LanguageConfidence float64
	TokenCount         int
	DistinctWords      int
	DurationMs         int64
	ChartPath          string
	Status             string
	Error              string
}

// InsertRun records a run and returns its ID.
func (db *DB) InsertRun(run Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (url, from_cache, language, language_confidence,
		                  token_count, distinct_words, duration_ms,
		                  chart_path, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.URL, run.FromCache, run.Language, run.LanguageConfidence,
		run.TokenCount, run.DistinctWords, run.DurationMs,
		run.ChartPath, run.Status, run.Error)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// InsertTopWords stores the ranked words for a run, rank starting at 1.
func (db *DB) InsertTopWords(runID int64, ranked []mapreduce.WordCount) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO top_words (run_id, rank, word, count) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, wc := range ranked {
		if _, err := stmt.Exec(runID, i+1, wc.Word, wc.Count); err != nil {
			return fmt.Errorf("failed to insert top word %q: %w", wc.Word, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, url, fetched_at, from_cache,
		       COALESCE(language, ''), COALESCE(language_confidence, 0),
		       token_count, distinct_words, duration_ms,
		       COALESCE(chart_path, ''), status, COALESCE(error, '')
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.URL, &r.FetchedAt, &r.FromCache,
			&r.Language, &r.LanguageConfidence,
			&r.TokenCount, &r.DistinctWords, &r.DurationMs,
			&r.ChartPath, &r.Status, &r.Error); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetTopWords returns a run's ranked words in rank order.
func (db *DB) GetTopWords(runID int64) ([]mapreduce.WordCount, error) {
	rows, err := db.Query(`
		SELECT word, count FROM top_words
		WHERE run_id = ?
		ORDER BY rank ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query top words: %w", err)
	}
	defer rows.Close()

	var ranked []mapreduce.WordCount
	for rows.Next() {
		var wc mapreduce.WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan top word: %w", err)
		}
		ranked = append(ranked, wc)
	}
	return ranked, rows.Err()
}
