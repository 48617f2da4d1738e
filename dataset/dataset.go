package dataset

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Rand is the random source consumed by the generators.
type Rand interface {
	Float64() float64
}

// Name identifies a generator for configuration files and flags.
type Name string

const (
	Uniform        Name = "uniform"
	ThreeQuadrant  Name = "three-quadrants"
	TwoQuadrant    Name = "two-quadrants"
	RobotArmJoints Name = "robot-arm"
)

// Names lists the known generators.
func Names() []Name {
	return []Name{Uniform, ThreeQuadrant, TwoQuadrant, RobotArmJoints}
}

// ParseName resolves a generator name, case-insensitively.
func ParseName(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Names(), n) {
		return "", fmt.Errorf("unknown dataset %q", s)
	}
	return n, nil
}

// Dim returns the vector length produced by the generator.
func (n Name) Dim() int {
	if n == RobotArmJoints {
		return 4
	}
	return 2
}

// Generate draws n samples from the named generator.
func Generate(name Name, rng Rand, n int) ([][]float64, error) {
	switch name {
	case Uniform:
		return UniformBox(rng, n, 2, -1, 1), nil
	case ThreeQuadrant:
		return ThreeQuadrants(rng, n), nil
	case TwoQuadrant:
		return TwoQuadrants(rng, n), nil
	case RobotArmJoints:
		return RobotArm(rng, n, DefaultArm), nil
	default:
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
}

// UniformBox draws n vectors of length dim uniformly from [lo, hi)^dim.
func UniformBox(rng Rand, n, dim int, lo, hi float64) [][]float64 {
	span := hi - lo
	return fill(n, dim, func(v []float64) {
		for i := range v {
			v[i] = lo + rng.Float64()*span
		}
	})
}

// ThreeQuadrants draws n/3 points from each of the quadrants
// (-1,0]x(-1,0], [-1,0)x[0,1) and [0,1)x[-1,0), leaving [0,1)^2 empty.
func ThreeQuadrants(rng Rand, n int) [][]float64 {
	per := n / 3
	out := make([][]float64, 0, 3*per)
	out = append(out, fill(per, 2, func(v []float64) {
		v[0], v[1] = -rng.Float64(), -rng.Float64()
	})...)
	out = append(out, fill(per, 2, func(v []float64) {
		v[0], v[1] = rng.Float64()-1, rng.Float64()
	})...)
	out = append(out, fill(per, 2, func(v []float64) {
		v[0], v[1] = rng.Float64(), rng.Float64()-1
	})...)
	return out
}

// TwoQuadrants draws n/2 points from [-1,0)x[0,1) and n/2 from [0,1)x[-1,0).
func TwoQuadrants(rng Rand, n int) [][]float64 {
	per := n / 2
	out := make([][]float64, 0, 2*per)
	out = append(out, fill(per, 2, func(v []float64) {
		v[0], v[1] = rng.Float64()-1, rng.Float64()
	})...)
	out = append(out, fill(per, 2, func(v []float64) {
		v[0], v[1] = rng.Float64(), rng.Float64()-1
	})...)
	return out
}

// Arm describes a planar two-link arm.
type Arm struct {
	L1 float64
	L2 float64
}

// DefaultArm is the 0.7/0.3 arm of the kinematics demo.
var DefaultArm = Arm{L1: 0.7, L2: 0.3}

// Forward returns the end-effector position for joint angles theta1, theta2.
func (a Arm) Forward(theta1, theta2 float64) (x, y float64) {
	x = a.L1*math.Cos(theta1) + a.L2*math.Cos(theta1+theta2)
	y = a.L1*math.Sin(theta1) + a.L2*math.Sin(theta1+theta2)
	return x, y
}

// RobotArm draws n 4-D samples (theta1, theta2, x, y) with both joint angles
// uniform in [0, pi) and (x, y) the matching end-effector position.
func RobotArm(rng Rand, n int, arm Arm) [][]float64 {
	return fill(n, 4, func(v []float64) {
		v[0], v[1] = rng.Float64()*math.Pi, rng.Float64()*math.Pi
		v[2], v[3] = arm.Forward(v[0], v[1])
	})
}

// fill allocates n vectors of length dim on one backing array.
func fill(n, dim int, gen func([]float64)) [][]float64 {
	if n <= 0 {
		return [][]float64{}
	}
	data := make([]float64, n*dim)
	out := make([][]float64, n)
	for i := range out {
		out[i] = data[i*dim : (i+1)*dim : (i+1)*dim]
		gen(out[i])
	}
	return out
}
