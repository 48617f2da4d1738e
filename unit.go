package kohonen

import (
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/kohonen/distance"
)

// Position is the (row, col) location of a unit in the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// SquaredDistance returns the squared Euclidean grid distance between p and q.
func (p Position) SquaredDistance(q Position) int {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	return dr*dr + dc*dc
}

// Neighborhood is the Gaussian kernel exp(-d2 / (2*sigma^2)) scaling the pull
// of a unit at squared grid distance d2 from the winner.
func Neighborhood(d2, sigma float64) float64 {
	return math.Exp(-d2 / (2 * sigma * sigma))
}

// Unit is a single grid cell: a weight vector, a fixed position and the
// activation computed by the most recent activation pass.
type Unit struct {
	weights    []float64
	pos        Position
	activation float64
}

// NewUnit creates a unit at pos that owns weights.
func NewUnit(pos Position, weights []float64) *Unit {
	return &Unit{weights: weights, pos: pos}
}

// Position returns the unit's grid position.
func (u *Unit) Position() Position { return u.pos }

// Dim returns the length of the weight vector.
func (u *Unit) Dim() int { return len(u.weights) }

// Activation returns the last computed activation (0 before the first pass).
func (u *Unit) Activation() float64 { return u.activation }

// Weights returns a copy of the unit's weight vector.
func (u *Unit) Weights() []float64 { return slices.Clone(u.weights) }

// Activate stores and returns the Euclidean distance between the unit's
// weights and input. On error the previous activation is kept.
func (u *Unit) Activate(input []float64) (float64, error) {
	if err := checkDim(len(u.weights), input); err != nil {
		return 0, err
	}
	u.activation = distance.Euclidean(u.weights, input)
	return u.activation, nil
}

// Update applies the Kohonen rule
//
//	w += eta * h * (input - w),  h = Neighborhood(|pos - bmu|^2, sigma)
//
// sigma must be positive. eta outside [0, 1] overshoots but is not rejected.
func (u *Unit) Update(eta, sigma float64, bmu Position, input []float64) error {
	if err := checkDim(len(u.weights), input); err != nil {
		return err
	}
	rate := eta * Neighborhood(float64(u.pos.SquaredDistance(bmu)), sigma)
	for i, w := range u.weights {
		u.weights[i] = w + rate*(input[i]-w)
	}
	return nil
}
