package kohonen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// State is the lifecycle state of a Trainer.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateDone:
		return "Done"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Params configures a training run.
type Params struct {
	// Eta is the learning rate.
	Eta float64
	// Sigma is the neighborhood width. Must be positive.
	Sigma float64
	// Iterations is the iteration count; the loop runs Iterations+1 times.
	Iterations int
	// Schedule overrides Eta and Sigma per step. nil keeps both constant.
	Schedule Schedule
}

func (p Params) schedule() Schedule {
	if p.Schedule != nil {
		return p.Schedule
	}
	return Constant{Eta: p.Eta, Sigma: p.Sigma}
}

// Progress describes a training step reported through WithProgress.
type Progress struct {
	Step  int
	Total int
	Eta   float64
	Sigma float64
	BMU   Position
}

// Trainer runs the online SOM training loop over a Grid.
//
// A Trainer performs a single run: Idle -> Running -> Done.
type Trainer struct {
	grid          *Grid
	rng           Rand
	logger        *Logger
	metrics       MetricsCollector
	progressEvery int
	onProgress    func(Progress)

	state State
	runID string
}

// NewTrainer creates an idle trainer for grid.
// Relevant options: WithRand, WithLogger, WithMetricsCollector, WithProgress.
//
// The trainer reports to the grid's logger and metrics collector unless
// WithLogger or WithMetricsCollector override them.
func NewTrainer(grid *Grid, optFns ...Option) *Trainer {
	base := []Option{WithLogger(grid.logger), WithMetricsCollector(grid.metrics)}
	o := applyOptions(append(base, optFns...))
	return &Trainer{
		grid:          grid,
		rng:           o.rng,
		logger:        o.logger,
		metrics:       o.metricsCollector,
		progressEvery: o.progressEvery,
		onProgress:    o.onProgress,
		state:         StateIdle,
	}
}

// State returns the current lifecycle state.
func (t *Trainer) State() State { return t.state }

// RunID returns the ID assigned when the run started ("" while idle).
func (t *Trainer) RunID() string { return t.runID }

// Train draws Iterations+1 samples uniformly with replacement from dataset
// and, for each, activates the grid and applies one learning step.
//
// Argument errors leave the trainer Idle. Once started, the trainer ends in
// Done whether the run completes, fails or is aborted through ctx; the grid
// keeps whatever updates were applied.
func (t *Trainer) Train(ctx context.Context, dataset [][]float64, p Params) error {
	switch t.state {
	case StateRunning:
		return ErrTrainerRunning
	case StateDone:
		return ErrTrainerDone
	}
	if p.Iterations < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, p.Iterations)
	}
	if len(dataset) == 0 {
		return ErrEmptyDataset
	}

	t.state = StateRunning
	t.runID = uuid.NewString()
	logger := t.logger.WithRun(t.runID)

	schedule := p.schedule()
	total := p.Iterations + 1

	var progress *rate.Sometimes
	if t.progressEvery > 0 {
		progress = &rate.Sometimes{Every: t.progressEvery}
	}

	logger.LogTrainStart(ctx, len(dataset), p.Iterations, schedule)
	start := time.Now()

	steps, err := t.run(ctx, dataset, schedule, p.Iterations, total, progress, logger)

	elapsed := time.Since(start)
	t.state = StateDone
	logger.LogTrainDone(ctx, steps, elapsed, err)
	t.metrics.RecordRun(steps, elapsed, err)

	return err
}

func (t *Trainer) run(ctx context.Context, dataset [][]float64, schedule Schedule, iterations, total int, progress *rate.Sometimes, logger *Logger) (int, error) {
	for step := range total {
		if err := ctx.Err(); err != nil {
			return step, err
		}

		x := dataset[t.rng.IntN(len(dataset))]
		eta, sigma := schedule.At(step, iterations)

		if err := t.grid.ActivateAll(x); err != nil {
			return step, fmt.Errorf("step %d: %w", step, err)
		}
		start := time.Now()
		bmu, err := t.grid.LearnStep(eta, sigma, x)
		if err != nil {
			return step, fmt.Errorf("step %d: %w", step, err)
		}
		t.metrics.RecordStep(bmu, time.Since(start))

		if progress != nil {
			progress.Do(func() {
				pr := Progress{Step: step, Total: total, Eta: eta, Sigma: sigma, BMU: bmu}
				logger.LogProgress(ctx, pr)
				if t.onProgress != nil {
					t.onProgress(pr)
				}
			})
		}
	}
	return total, nil
}
