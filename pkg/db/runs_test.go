package db

import (
	"testing"

	"github.com/dtnitsch/wordplot/pkg/mapreduce"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun(Run{
		URL:                "https://gutenberg.net.au/ebooks01/0100021.txt",
		Language:           "English",
		LanguageConfidence: 0.99,
		TokenCount:         104401,
		DistinctWords:      11432,
		DurationMs:         412,
		ChartPath:          "results/chart.png",
		Status:             "success",
	})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if runID == 0 {
		t.Error("InsertRun() returned 0 run ID")
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("ListRuns() returned %d runs, want 1", len(runs))
	}
	if runs[0].RunID != runID {
		t.Errorf("run ID = %d, want %d", runs[0].RunID, runID)
	}
	if runs[0].TokenCount != 104401 {
		t.Errorf("TokenCount = %d, want 104401", runs[0].TokenCount)
	}
	if runs[0].Language != "English" {
		t.Errorf("Language = %q, want English", runs[0].Language)
	}
}

func TestTopWordsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun(Run{URL: "https://example.com", Status: "success"})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	ranked := []mapreduce.WordCount{
		{Word: "the", Count: 42},
		{Word: "cat", Count: 17},
		{Word: "sat", Count: 5},
	}
	if err := db.InsertTopWords(runID, ranked); err != nil {
		t.Fatalf("InsertTopWords() error = %v", err)
	}

	got, err := db.GetTopWords(runID)
	if err != nil {
		t.Fatalf("GetTopWords() error = %v", err)
	}
	if len(got) != len(ranked) {
		t.Fatalf("GetTopWords() returned %d words, want %d", len(got), len(ranked))
	}
	for i := range ranked {
		if got[i] != ranked[i] {
			t.Errorf("GetTopWords()[%d] = %v, want %v", i, got[i], ranked[i])
		}
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, url := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		if _, err := db.InsertRun(Run{URL: url, Status: "success"}); err != nil {
			t.Fatalf("InsertRun(%q) error = %v", url, err)
		}
	}

	runs, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns(2) returned %d runs, want 2", len(runs))
	}
	if runs[0].URL != "https://c.example" {
		t.Errorf("newest run URL = %q, want https://c.example", runs[0].URL)
	}
	if runs[0].RunID < runs[1].RunID {
		t.Error("runs not ordered newest first")
	}
}

func TestInsertRunFailedStatus(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.InsertRun(Run{
		URL:    "https://example.com/missing.txt",
		Status: "failed",
		Error:  "failed to fetch document, status code: 404",
	})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	runs, err := db.ListRuns(1)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if runs[0].Status != "failed" {
		t.Errorf("Status = %q, want failed", runs[0].Status)
	}
	if runs[0].Error == "" {
		t.Error("Error is empty, want failure message")
	}
}
