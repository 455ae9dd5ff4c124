package history

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordplot/pkg/db"
)

// HistoryAction lists recorded runs, newest first. With --run it shows
// one run's ranked words instead.
func HistoryAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	database, err := db.Open(c.String("output-dir"))
	if err != nil {
		logger.Error("failed to open run history database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	if c.IsSet("run") {
		return showTopWords(logger, database, int64(c.Int("run")))
	}

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		os.Exit(2)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	for _, r := range runs {
		line := fmt.Sprintf("#%d  %s  %s  tokens=%d distinct=%d",
			r.RunID, r.FetchedAt.Format("2006-01-02 15:04"), r.URL,
			r.TokenCount, r.DistinctWords)
		if r.Language != "" {
			line += fmt.Sprintf(" lang=%s", r.Language)
		}
		if r.Status != "success" {
			line += fmt.Sprintf("  [%s: %s]", r.Status, r.Error)
		}
		fmt.Println(line)
	}

	fmt.Printf("\nShow a run's words: wordplot history --run <id>\n")
	return nil
}

func showTopWords(logger *slog.Logger, database *db.DB, runID int64) error {
	ranked, err := database.GetTopWords(runID)
	if err != nil {
		logger.Error("failed to get top words", "run_id", runID, "error", err)
		os.Exit(2)
	}

	if len(ranked) == 0 {
		fmt.Printf("Run %d has no recorded words.\n", runID)
		return nil
	}

	for i, wc := range ranked {
		fmt.Printf("%d. %s: %d\n", i+1, wc.Word, wc.Count)
	}
	return nil
}
