// Package distance provides vector distance calculations over float64 slices.
//
// All functions are thin wrappers around gonum's floats package and assume
// both vectors have the same length (caller's responsibility).
//
// Euclidean is the unit activation; SquaredEuclidean feeds the quantization
// error and the lattice quality measures.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	d2 := distance.SquaredEuclidean(a, b)
package distance
