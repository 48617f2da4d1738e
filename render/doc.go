// Package render draws trained self-organizing maps.
//
// It only consumes data computed elsewhere (weight projections, heatmaps)
// and never touches a grid under training.
//
//   - ScatterPlot: units in input space, linked along grid rows and columns
//   - HeatmapPlot: a height x width value array (e.g. kohonen.Heatmap)
//   - WeightsPlot: every unit's weight vector reshaped into a tile
//   - HeatmapHTML: interactive go-echarts heatmap
//
// PNG output goes through gonum/plot. SaveAll writes several files
// concurrently.
package render
