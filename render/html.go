package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// heatColors is the viridis ramp used by the HTML charts.
var heatColors = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// HeatmapHTML renders values as an interactive go-echarts heatmap page.
// Row 0 is drawn at the top, matching HeatmapPlot.
func HeatmapHTML(w io.Writer, values [][]float64, title string) error {
	m, err := newMatrix(values)
	if err != nil {
		return err
	}
	cols, rows := m.Dims()

	xs := make([]string, cols)
	for c := range xs {
		xs[c] = strconv.Itoa(c)
	}
	// Category axes start at the bottom; list rows bottom-up.
	ys := make([]string, rows)
	for r := range ys {
		ys[r] = strconv.Itoa(rows - 1 - r)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	data := make([]opts.HeatMapData, 0, rows*cols)
	for i, row := range values {
		for j, v := range row {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, rows - 1 - i, v}})
		}
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "800px", Height: "800px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%dx%d", rows, cols)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs, Name: "col"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys, Name: "row"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: heatColors},
		}),
	)
	hm.SetXAxis(xs).AddSeries("heatmap", data)

	if err := hm.Render(w); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}
	return nil
}
