// Package kohonen implements a self-organizing map (SOM) on a rectangular grid.
//
// A Grid holds height x width units, each with a weight vector in the input
// space. Training is competitive: for every input the unit with the closest
// weights (the best-matching unit, BMU) wins, and every unit is pulled toward
// the input by an amount that decays with its grid distance to the winner
// (Gaussian neighborhood kernel).
//
// # Quick Start
//
//	rng := kohonen.NewRand(42)
//	g, _ := kohonen.New(10, 10, 2, kohonen.WithRand(rng))
//
//	tr := kohonen.NewTrainer(g, kohonen.WithRand(rng))
//	err := tr.Train(ctx, samples, kohonen.Params{
//	    Eta:        0.05,
//	    Sigma:      1.4,
//	    Iterations: 30000,
//	})
//
//	qe, _ := g.QuantizationError(samples)
//
// # Single Steps
//
// The training loop is built from three operations that can be driven by hand:
//
//	g.ActivateAll(x)             // activation = |w - x| for every unit
//	bmu, _ := g.FindBMU()        // argmin, ties to lowest row-major index
//	g.LearnStep(eta, sigma, x)   // w += eta * h(bmu) * (x - w) for every unit
//
// # Map Quality
//
//   - Grid.QuantizationError: mean squared distance sample -> closest unit
//   - LocalDistortion: mean squared distance across neighbor edges
//   - LocalRoughness: same, counted from both endpoints
//   - Heatmap: per-unit mean squared distance to its neighbors
//
// # Schedules
//
// Eta and sigma are constant by default. ExponentialDecay and LinearDecay
// anneal them over the run when set as Params.Schedule.
package kohonen
