// Command kohonen trains a self-organizing map on a synthetic dataset and
// reports its quality measures, optionally writing plots of the result.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hupe1980/kohonen"
	"github.com/hupe1980/kohonen/dataset"
	"github.com/hupe1980/kohonen/internal/config"
	"github.com/hupe1980/kohonen/render"
)

var (
	configFile = flag.String("config", "", "Path to a JSON run configuration (optional)")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 uses the config seed or a random one)")
	outDir     = flag.String("out", "", "Directory for plots (overrides output_dir)")
	logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	htmlFlag   = flag.Bool("html", false, "Also write an interactive HTML heatmap")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout); err != nil {
		log.Fatalf("kohonen: %v", err)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg := config.EmptyRunConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadRunConfig(*configFile); err != nil {
			return err
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", *logLevel, err)
	}

	seed, ok := cfg.GetSeed()
	if *seedFlag != 0 {
		seed, ok = *seedFlag, true
	}
	if !ok {
		seed = rand.Uint64()
	}
	rng := kohonen.NewRand(seed)

	name, err := dataset.ParseName(cfg.GetDataset())
	if err != nil {
		return err
	}
	data, err := dataset.Generate(name, rng, cfg.GetSamples())
	if err != nil {
		return err
	}

	metrics := &kohonen.BasicMetricsCollector{}
	opts := []kohonen.Option{
		kohonen.WithRand(rng),
		kohonen.WithLogLevel(level),
		kohonen.WithMetricsCollector(metrics),
		kohonen.WithProgress(cfg.GetProgressEvery(), nil),
	}
	if name == dataset.RobotArmJoints {
		opts = append(opts, kohonen.WithInitializer(kohonen.SampleInitializer(data)))
	}

	grid, err := kohonen.New(cfg.GetGridHeight(), cfg.GetGridWidth(), name.Dim(), opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "dataset %s: %d samples, seed %d\n", name, len(data), seed)
	fmt.Fprintf(out, "grid %dx%d, dim %d\n", cfg.GetGridHeight(), cfg.GetGridWidth(), grid.Dim())

	trainer := kohonen.NewTrainer(grid, opts...)
	if err := trainer.Train(ctx, data, cfg.KohonenParams()); err != nil {
		return fmt.Errorf("training: %w", err)
	}

	if err := report(out, grid, data, metrics); err != nil {
		return err
	}

	dir := cfg.GetOutputDir()
	if *outDir != "" {
		dir = *outDir
	}
	if dir == "" {
		return nil
	}

	jobs, err := plotJobs(grid, name, cfg.GetHTML() || *htmlFlag)
	if err != nil {
		return err
	}
	if err := render.SaveAll(ctx, dir, jobs); err != nil {
		return fmt.Errorf("writing plots: %w", err)
	}
	fmt.Fprintf(out, "wrote %d files to %s\n", len(jobs), dir)

	return nil
}

func report(out io.Writer, grid *kohonen.Grid, data [][]float64, metrics *kohonen.BasicMetricsCollector) error {
	qe, err := grid.QuantizationError(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "quantization error: %.6f\n", qe)

	switch distortion, err := kohonen.LocalDistortion(grid); {
	case errors.Is(err, kohonen.ErrDegenerateGrid):
		fmt.Fprintln(out, "local distortion: n/a (1x1 grid)")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "local distortion: %.6f\n", distortion)
	}
	fmt.Fprintf(out, "local roughness: %.6f\n", kohonen.LocalRoughness(grid))

	hits, err := grid.HitMap(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "hit map:")
	for _, row := range hits {
		cells := make([]string, len(row))
		for j, n := range row {
			cells[j] = fmt.Sprintf("%4d", n)
		}
		fmt.Fprintln(out, strings.Join(cells, " "))
	}

	stats := metrics.GetStats()
	fmt.Fprintf(out, "steps: %d (avg %dns)\n", stats.StepCount, stats.StepAvgNanos)

	return nil
}

func plotJobs(grid *kohonen.Grid, name dataset.Name, html bool) ([]render.Job, error) {
	weights := grid.Weights()
	heat := kohonen.Heatmap(grid)

	var jobs []render.Job

	scatter, err := render.ScatterPlot(weights, 0, 1, "Weights")
	if err != nil {
		return nil, err
	}
	jobs = append(jobs, render.PNGJob("weights-scatter.png", scatter))

	if name == dataset.RobotArmJoints {
		hand, err := render.ScatterPlot(weights, 2, 3, "Hand position")
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, render.PNGJob("hand-scatter.png", hand))
	}

	hm, err := render.HeatmapPlot(heat, "Neighbor distance")
	if err != nil {
		return nil, err
	}
	jobs = append(jobs, render.PNGJob("heatmap.png", hm))

	rows, cols := 1, grid.Dim()
	if grid.Dim() == 4 {
		rows, cols = 2, 2
	}
	tiles, err := render.WeightsPlot(weights, rows, cols, "Weight tiles")
	if err != nil {
		return nil, err
	}
	jobs = append(jobs, render.PNGJob("weight-tiles.png", tiles))

	if html {
		jobs = append(jobs, render.HTMLJob("heatmap.html", heat, "Neighbor distance"))
	}

	return jobs, nil
}
