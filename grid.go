package kohonen

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// Grid is a height x width lattice of units sharing one input dimension.
//
// The grid owns all weight and activation state. Weights and Activations
// return freshly built projections; mutating them does not affect the grid.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	height    int
	width     int
	dim       int
	units     []Unit // row-major
	activated bool

	logger  *Logger
	metrics MetricsCollector
}

// New creates a height x width grid of dim-dimensional units whose weights are
// drawn by the configured Initializer (uniform over [0, 1) by default).
func New(height, width, dim int, optFns ...Option) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, height, width)
	}
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}

	o := applyOptions(optFns)
	g := newGrid(height, width, dim, o)
	for i := range g.units {
		o.initializer(o.rng, g.units[i].weights)
	}

	return g, nil
}

// NewFromWeights creates a grid from an explicit height x width x dim weight
// array. The values are copied.
func NewFromWeights(weights [][][]float64, optFns ...Option) (*Grid, error) {
	height := len(weights)
	if height == 0 || len(weights[0]) == 0 {
		return nil, fmt.Errorf("%w: empty weight array", ErrInvalidSize)
	}
	width := len(weights[0])
	dim := len(weights[0][0])
	if dim == 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}

	g := newGrid(height, width, dim, applyOptions(optFns))
	for i, row := range weights {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidSize, i, len(row), width)
		}
		for j, w := range row {
			if err := checkDim(dim, w); err != nil {
				return nil, fmt.Errorf("unit %v: %w", Position{Row: i, Col: j}, err)
			}
			copy(g.units[i*width+j].weights, w)
		}
	}

	return g, nil
}

func newGrid(height, width, dim int, o options) *Grid {
	g := &Grid{
		height:  height,
		width:   width,
		dim:     dim,
		units:   make([]Unit, height*width),
		logger:  o.logger.WithGridSize(height, width).WithDimension(dim),
		metrics: o.metricsCollector,
	}

	// Single backing array; each unit gets a capped window.
	data := make([]float64, height*width*dim)
	for i := range height {
		for j := range width {
			k := i*width + j
			g.units[k] = Unit{
				weights: data[k*dim : (k+1)*dim : (k+1)*dim],
				pos:     Position{Row: i, Col: j},
			}
		}
	}
	return g
}

// Size returns the grid height and width.
func (g *Grid) Size() (height, width int) { return g.height, g.width }

// Dim returns the input dimensionality.
func (g *Grid) Dim() int { return g.dim }

// Unit returns a snapshot of the unit at pos. Activating or updating the
// snapshot does not touch the grid. It panics if pos is outside the grid.
func (g *Grid) Unit(pos Position) *Unit {
	if pos.Row < 0 || pos.Row >= g.height || pos.Col < 0 || pos.Col >= g.width {
		panic(fmt.Sprintf("kohonen: position %v outside %dx%d grid", pos, g.height, g.width))
	}
	u := g.units[pos.Row*g.width+pos.Col]
	u.weights = slices.Clone(u.weights)
	return &u
}

// Activated reports whether the activations reflect the current weights.
func (g *Grid) Activated() bool { return g.activated }

// ActivateAll computes the activation of every unit for input.
// The input length is checked once, so a failed call changes nothing.
func (g *Grid) ActivateAll(input []float64) error {
	if err := checkDim(g.dim, input); err != nil {
		return err
	}
	for i := range g.units {
		if _, err := g.units[i].Activate(input); err != nil {
			return err
		}
	}
	g.activated = true
	return nil
}

// FindBMU returns the position of the unit with the smallest activation.
// Ties go to the first unit in row-major order.
func (g *Grid) FindBMU() (Position, error) {
	if !g.activated {
		return Position{}, ErrNotActivated
	}
	return g.units[g.argmin()].pos, nil
}

func (g *Grid) argmin() int {
	best := 0
	for i := 1; i < len(g.units); i++ {
		if g.units[i].activation < g.units[best].activation {
			best = i
		}
	}
	return best
}

// LearnStep finds the BMU of the current activations and pulls every unit
// toward input, scaled by eta and the neighborhood kernel. It returns the BMU.
//
// The activations are stale afterwards; call ActivateAll before the next step.
func (g *Grid) LearnStep(eta, sigma float64, input []float64) (Position, error) {
	if err := checkDim(g.dim, input); err != nil {
		return Position{}, err
	}
	bmu, err := g.FindBMU()
	if err != nil {
		return Position{}, err
	}

	for i := range g.units {
		if err := g.units[i].Update(eta, sigma, bmu, input); err != nil {
			return Position{}, err
		}
	}
	g.activated = false

	return bmu, nil
}

// QuantizationError returns the mean over dataset of the squared distance
// between each sample and its closest unit.
//
// The activations of the last sample stay cached.
func (g *Grid) QuantizationError(dataset [][]float64) (float64, error) {
	start := time.Now()
	qe, err := g.quantizationError(dataset)
	g.metrics.RecordQuantization(len(dataset), qe, time.Since(start), err)
	g.logger.LogQuantization(context.Background(), len(dataset), qe, err)
	return qe, err
}

func (g *Grid) quantizationError(dataset [][]float64) (float64, error) {
	if len(dataset) == 0 {
		return 0, ErrEmptyDataset
	}

	var sum float64
	for i, x := range dataset {
		if err := g.ActivateAll(x); err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		m := g.units[g.argmin()].activation
		sum += m * m
	}
	return sum / float64(len(dataset)), nil
}

// Project activates the grid for input and returns its best-matching unit.
func (g *Grid) Project(input []float64) (Position, error) {
	if err := g.ActivateAll(input); err != nil {
		return Position{}, err
	}
	return g.FindBMU()
}

// HitMap counts, per unit, the samples of dataset for which it is the BMU.
func (g *Grid) HitMap(dataset [][]float64) ([][]int, error) {
	hits := make([][]int, g.height)
	for i := range hits {
		hits[i] = make([]int, g.width)
	}
	for i, x := range dataset {
		pos, err := g.Project(x)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		hits[pos.Row][pos.Col]++
	}
	return hits, nil
}

// Weights returns a height x width x dim copy of all unit weights.
func (g *Grid) Weights() [][][]float64 {
	out := make([][][]float64, g.height)
	for i := range out {
		out[i] = make([][]float64, g.width)
		for j := range out[i] {
			out[i][j] = g.units[i*g.width+j].Weights()
		}
	}
	return out
}

// Activations returns a height x width copy of the cached activations.
func (g *Grid) Activations() [][]float64 {
	out := make([][]float64, g.height)
	for i := range out {
		out[i] = make([]float64, g.width)
		for j := range out[i] {
			out[i][j] = g.units[i*g.width+j].activation
		}
	}
	return out
}
