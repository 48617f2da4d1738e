package kohonen

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when an operation needs at least one sample.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrDegenerateGrid is returned by LocalDistortion on a grid without any
	// neighbor edges (1x1). The mean over zero edges is undefined.
	ErrDegenerateGrid = errors.New("degenerate grid: no neighbor edges")

	// ErrNotActivated is returned by FindBMU when no activation pass has run
	// since construction or since the last weight update.
	ErrNotActivated = errors.New("grid not activated")

	// ErrInvalidSize is returned when a grid is constructed with a
	// non-positive height or width.
	ErrInvalidSize = errors.New("grid height and width must be positive")

	// ErrInvalidIterations is returned when a training run is started with a
	// negative iteration count.
	ErrInvalidIterations = errors.New("iterations must not be negative")

	// ErrTrainerRunning is returned on a re-entrant Train call.
	ErrTrainerRunning = errors.New("trainer is already running")

	// ErrTrainerDone is returned when Train is called on a finished trainer.
	ErrTrainerDone = errors.New("trainer is done")
)

// ErrDimensionMismatch indicates an input vector whose length disagrees with
// the grid's configured dimensionality.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func checkDim(expected int, v []float64) error {
	if len(v) != expected {
		return &ErrDimensionMismatch{Expected: expected, Actual: len(v)}
	}
	return nil
}
