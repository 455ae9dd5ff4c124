package run

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/wordplot/internal/common"
	"github.com/dtnitsch/wordplot/models"
	"github.com/dtnitsch/wordplot/pkg/caching"
	"github.com/dtnitsch/wordplot/pkg/chart"
	"github.com/dtnitsch/wordplot/pkg/db"
	"github.com/dtnitsch/wordplot/pkg/detector"
	"github.com/dtnitsch/wordplot/pkg/fetcher"
	"github.com/dtnitsch/wordplot/pkg/mapreduce"
	"github.com/dtnitsch/wordplot/pkg/stopwords"
)

// RunAction fetches the document, runs the map/shuffle/reduce word
// count, renders the top-N chart, and records the run. On retrieval
// failure the pipeline is never invoked and the process exits 2.
func RunAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config := models.DefaultConfig()
	if c.IsSet("config") {
		var err error
		config, err = models.LoadConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(2)
		}
	}
	applyFlags(c, config)

	config.URL = common.SanitizeURL(config.URL)
	if !common.ValidateURL(config.URL) {
		fmt.Fprintf(os.Stderr, "Error: %q is not a fetchable URL\n", config.URL)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  wordplot run --url "https://gutenberg.net.au/ebooks01/0100021.txt"`)
		os.Exit(1)
	}

	var maxAge time.Duration
	if !c.Bool("force-fetch") {
		var err error
		maxAge, err = time.ParseDuration(config.MaxAge)
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		logger.Error("failed to create output directory", "error", err)
		os.Exit(2)
	}

	cache, err := caching.NewCache(filepath.Join(config.OutputDir, "cache"), maxAge)
	if err != nil {
		logger.Error("failed to initialize cache", "error", err)
		os.Exit(2)
	}

	// Run history is best-effort: a broken database never blocks a run.
	database, err := db.Open(config.OutputDir)
	if err != nil {
		logger.Warn("failed to open run history database", "error", err)
		database = nil
	}
	if database != nil {
		defer database.Close()
	}

	text, fromCache := cache.Get(config.URL)
	if fromCache {
		logger.Info("Document found in cache", "url", config.URL)
	} else {
		logger.Info("Fetching document", "url", config.URL)
		f := fetcher.NewFetcher()
		text, err = f.GetText(config.URL)
		if err != nil {
			logger.Error("failed to retrieve text", "url", config.URL, "error", err)
			recordRun(logger, database, db.Run{
				URL:    config.URL,
				Status: "failed",
				Error:  err.Error(),
			}, nil)
			os.Exit(2)
		}
		logger.Info("Successfully retrieved text", "url", config.URL, "bytes", len(text))
		if err := cache.Set(config.URL, text); err != nil {
			logger.Warn("failed to cache document", "url", config.URL, "error", err)
		}
	}

	summary := Summary{
		URL:       config.URL,
		Status:    "success",
		FromCache: fromCache,
	}

	if lang, ok := detector.NewDetector().Detect(text); ok {
		logger.Info("Detected language", "language", lang.Language, "confidence", lang.Confidence)
		summary.Language = lang.Language
		summary.LanguageConfidence = lang.Confidence
	}

	pipeline := mapreduce.NewPipeline(config.Workers)
	logger.Info("Starting MapReduce phase", "workers", pipeline.Workers)
	counts := pipeline.Run(text)
	logger.Info("MapReduce computation completed", "distinct_words", len(counts))

	for _, count := range counts {
		summary.TokenCount += count
	}
	summary.DistinctWords = len(counts)

	rankSource := counts
	if config.SkipCommon {
		rankSource = stopwords.Filter(counts)
	}
	ranked := mapreduce.TopN(rankSource, config.TopN)
	for _, wc := range ranked {
		summary.TopWords = append(summary.TopWords, TopWord{Word: wc.Word, Count: wc.Count})
	}

	if len(ranked) == 0 {
		logger.Warn("No words to chart", "url", config.URL)
	} else {
		chartPath := c.String("chart")
		if chartPath == "" {
			chartPath = filepath.Join(config.OutputDir, "top-words.png")
		}

		title := config.Chart.Title
		if title == "" {
			title = fmt.Sprintf("Top %d most frequent words", len(ranked))
		}

		if err := chart.Render(ranked, chartPath, chart.Options{
			Title:  title,
			XLabel: config.Chart.XLabel,
			YLabel: config.Chart.YLabel,
		}); err != nil {
			logger.Error("failed to render chart", "error", err)
			os.Exit(2)
		}
		logger.Info("Chart written", "path", chartPath, "bars", len(ranked))
		summary.ChartPath = chartPath
	}

	summary.TotalTimeSeconds = time.Since(startTime).Seconds()

	recordRun(logger, database, db.Run{
		URL:                config.URL,
		FromCache:          fromCache,
		Language:           summary.Language,
		LanguageConfidence: summary.LanguageConfidence,
		TokenCount:         summary.TokenCount,
		DistinctWords:      summary.DistinctWords,
		DurationMs:         time.Since(startTime).Milliseconds(),
		ChartPath:          summary.ChartPath,
		Status:             "success",
	}, ranked)

	printSummary(logger, summary, c.String("format"))
	return nil
}

// applyFlags overrides file config with any explicitly set CLI flags.
func applyFlags(c *cli.Context, config *models.Config) {
	if c.IsSet("url") {
		config.URL = c.String("url")
	}
	if c.IsSet("top") {
		config.TopN = c.Int("top")
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("max-age") {
		config.MaxAge = c.String("max-age")
	}
	if c.IsSet("skip-common") {
		config.SkipCommon = c.Bool("skip-common")
	}
}

// recordRun persists a run and its ranking when the database is usable.
func recordRun(logger *slog.Logger, database *db.DB, run db.Run, ranked []mapreduce.WordCount) {
	if database == nil {
		return
	}

	runID, err := database.InsertRun(run)
	if err != nil {
		logger.Warn("failed to record run", "error", err)
		return
	}
	if len(ranked) == 0 {
		return
	}
	if err := database.InsertTopWords(runID, ranked); err != nil {
		logger.Warn("failed to record top words", "run_id", runID, "error", err)
	}
}

func printSummary(logger *slog.Logger, summary Summary, format string) {
	var out []byte
	var err error
	if strings.ToLower(format) == "yaml" {
		out, err = yaml.Marshal(summary)
	} else {
		out, err = json.MarshalIndent(summary, "", "  ")
	}
	if err != nil {
		logger.Error("failed to marshal run summary", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(out))
}
