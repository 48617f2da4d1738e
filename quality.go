package kohonen

import "github.com/hupe1980/kohonen/distance"

// Lattice is anything exposing a height x width x dim weight array.
// *Grid implements it.
type Lattice interface {
	Weights() [][][]float64
}

// LocalDistortion returns the mean squared weight distance over all
// horizontal and vertical neighbor edges, each edge counted once.
//
// A 1x1 lattice has no edges; ErrDegenerateGrid is returned instead of a
// made-up value.
func LocalDistortion(l Lattice) (float64, error) {
	w := l.Weights()

	var (
		total float64
		count int
	)
	for i := range w {
		for j := range w[i] {
			if i+1 < len(w) {
				total += distance.SquaredEuclidean(w[i][j], w[i+1][j])
				count++
			}
			if j+1 < len(w[i]) {
				total += distance.SquaredEuclidean(w[i][j], w[i][j+1])
				count++
			}
		}
	}

	if count == 0 {
		return 0, ErrDegenerateGrid
	}
	return total / float64(count), nil
}

// LocalRoughness returns the mean squared weight distance between every unit
// and each of its 4-connected neighbors. Every edge contributes from both
// endpoints. An isolated unit yields 0.
func LocalRoughness(l Lattice) float64 {
	w := l.Weights()

	var (
		total float64
		count int
	)
	for i := range w {
		for j := range w[i] {
			sum, n := neighborSum(w, i, j)
			total += sum
			count += n
		}
	}

	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// Heatmap returns, per unit, the mean squared weight distance to its
// 4-connected neighbors (0 for an isolated unit).
func Heatmap(l Lattice) [][]float64 {
	w := l.Weights()

	out := make([][]float64, len(w))
	for i := range w {
		out[i] = make([]float64, len(w[i]))
		for j := range w[i] {
			if sum, n := neighborSum(w, i, j); n > 0 {
				out[i][j] = sum / float64(n)
			}
		}
	}
	return out
}

// neighborSum accumulates squared distances from (i, j) to its up, down,
// left and right neighbors that exist.
func neighborSum(w [][][]float64, i, j int) (float64, int) {
	var (
		sum float64
		n   int
	)
	add := func(r, c int) {
		if r < 0 || r >= len(w) || c < 0 || c >= len(w[r]) {
			return
		}
		sum += distance.SquaredEuclidean(w[i][j], w[r][c])
		n++
	}
	add(i-1, j)
	add(i+1, j)
	add(i, j-1)
	add(i, j+1)
	return sum, n
}
