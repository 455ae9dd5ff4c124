package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordplot/internal/history"
	"github.com/dtnitsch/wordplot/internal/run"
)

func main() {
	app := &cli.App{
		Name:  "wordplot",
		Usage: "fetch a document, count word frequencies with map/shuffle/reduce, chart the top words",
		Flags: runFlags(),
		// Bare invocation behaves like `wordplot run` with defaults.
		Action: run.RunAction,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "fetch, count, and chart (the default command)",
				Flags:  runFlags(),
				Action: run.RunAction,
			},
			{
				Name:  "history",
				Usage: "list recorded runs from the history database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output-dir",
						Value: "wordplot-results",
						Usage: "directory holding the history database",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum runs to list",
					},
					&cli.IntFlag{
						Name:  "run",
						Usage: "show the ranked words of one run instead",
					},
				},
				Action: history.HistoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "url",
			Usage: "document URL to fetch",
		},
		&cli.IntFlag{
			Name:  "top",
			Usage: "number of words to rank and chart",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "worker pool size for the map and reduce phases (default: CPU count)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file; flags override its values",
		},
		&cli.StringFlag{
			Name:  "chart",
			Usage: "chart output path (default: <output-dir>/top-words.png)",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Usage: "directory for the chart, cache, and history database",
		},
		&cli.StringFlag{
			Name:  "max-age",
			Usage: "how long cached documents stay fresh, e.g. 24h",
		},
		&cli.BoolFlag{
			Name:  "force-fetch",
			Usage: "ignore the cache and fetch from the network",
		},
		&cli.BoolFlag{
			Name:  "skip-common",
			Usage: "drop common function words from the ranking",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "json",
			Usage: "run summary format: json or yaml",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "log errors only",
		},
	}
}
