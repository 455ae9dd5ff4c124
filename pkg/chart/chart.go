// Package chart renders ranked word counts as a bar chart image.
package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/dtnitsch/wordplot/pkg/mapreduce"
)

// Options controls chart labelling.
type Options struct {
	Title  string
	XLabel string
	YLabel string
}

// Render writes a PNG bar chart of ranked to path, one bar per word in
// the order given. It blocks until the file is written; there is no
// display session, so it works headless. An empty ranking is an error.
func Render(ranked []mapreduce.WordCount, path string, opts Options) error {
	if len(ranked) == 0 {
		return fmt.Errorf("nothing to plot: empty ranking")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	values := make(plotter.Values, len(ranked))
	labels := make([]string, len(ranked))
	for i, wc := range ranked {
		values[i] = float64(wc.Count)
		labels[i] = wc.Word
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	// Rotate tick labels so long words stay legible.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}
