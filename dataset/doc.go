// Package dataset generates the demonstration sample sets used to exercise
// a self-organizing map.
//
// Every generator draws from an explicit random source so runs are
// reproducible:
//
//	rng := kohonen.NewRand(1)
//	samples := dataset.UniformBox(rng, 1200, 2, -1, 1)
//	arm := dataset.RobotArm(rng, 1200, dataset.DefaultArm)
package dataset
