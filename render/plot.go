package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultSize is the edge length of rendered PNG images.
const DefaultSize = 6 * vg.Inch

// ScatterPlot draws every unit at (w[dimX], w[dimY]) and links units that
// are neighbors on the grid.
func ScatterPlot(weights [][][]float64, dimX, dimY int, title string) (*plot.Plot, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, fmt.Errorf("render: empty weight array")
	}
	dim := len(weights[0][0])
	if dimX < 0 || dimX >= dim || dimY < 0 || dimY >= dim {
		return nil, fmt.Errorf("render: dimensions (%d,%d) outside [0,%d)", dimX, dimY, dim)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("w[%d]", dimX)
	p.Y.Label.Text = fmt.Sprintf("w[%d]", dimY)

	height, width := len(weights), len(weights[0])

	// Rows, then columns.
	for i := range height {
		pts := make(plotter.XYs, width)
		for j := range width {
			pts[j] = plotter.XY{X: weights[i][j][dimX], Y: weights[i][j][dimY]}
		}
		if err := addLine(p, pts); err != nil {
			return nil, err
		}
	}
	for j := range width {
		pts := make(plotter.XYs, height)
		for i := range height {
			pts[i] = plotter.XY{X: weights[i][j][dimX], Y: weights[i][j][dimY]}
		}
		if err := addLine(p, pts); err != nil {
			return nil, err
		}
	}

	all := make(plotter.XYs, 0, height*width)
	for i := range height {
		for j := range width {
			all = append(all, plotter.XY{X: weights[i][j][dimX], Y: weights[i][j][dimY]})
		}
	}
	sc, err := plotter.NewScatter(all)
	if err != nil {
		return nil, fmt.Errorf("render: scatter: %w", err)
	}
	sc.GlyphStyle.Color = color.Black
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)

	return p, nil
}

func addLine(p *plot.Plot, pts plotter.XYs) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("render: line: %w", err)
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = color.Black
	p.Add(l)
	return nil
}

// HeatmapPlot draws a height x width value array with row 0 at the top.
func HeatmapPlot(values [][]float64, title string) (*plot.Plot, error) {
	g, err := newMatrix(values)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"

	hm := plotter.NewHeatMap(g, palette.Heat(16, 1))
	if hm.Min == hm.Max {
		// Flat input; widen the range so the palette index stays finite.
		hm.Min, hm.Max = hm.Min-0.5, hm.Max+0.5
	}
	p.Add(hm)
	return p, nil
}

// WeightTiles lays out each unit's weight vector as a rows x cols tile,
// producing a (height*rows) x (width*cols) matrix. rows*cols must equal the
// weight dimension.
func WeightTiles(weights [][][]float64, rows, cols int) ([][]float64, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, fmt.Errorf("render: empty weight array")
	}
	dim := len(weights[0][0])
	if rows <= 0 || cols <= 0 || rows*cols != dim {
		return nil, fmt.Errorf("render: tile %dx%d does not hold %d weights", rows, cols, dim)
	}

	height, width := len(weights), len(weights[0])
	out := make([][]float64, height*rows)
	for r := range out {
		out[r] = make([]float64, width*cols)
	}
	for i := range height {
		for j := range width {
			for k, v := range weights[i][j] {
				out[i*rows+k/cols][j*cols+k%cols] = v
			}
		}
	}
	return out, nil
}

// WeightsPlot renders WeightTiles as a heatmap.
func WeightsPlot(weights [][][]float64, rows, cols int, title string) (*plot.Plot, error) {
	tiles, err := WeightTiles(weights, rows, cols)
	if err != nil {
		return nil, err
	}
	return HeatmapPlot(tiles, title)
}

// WritePNG encodes p as a size x size PNG.
func WritePNG(w io.Writer, p *plot.Plot, size vg.Length) error {
	wt, err := p.WriterTo(size, size, "png")
	if err != nil {
		return fmt.Errorf("render: png: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// matrix adapts a [][]float64 to plotter.GridXYZ.
type matrix struct {
	values [][]float64
}

func newMatrix(values [][]float64) (matrix, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return matrix{}, fmt.Errorf("render: empty value array")
	}
	for i, row := range values {
		if len(row) != len(values[0]) {
			return matrix{}, fmt.Errorf("render: row %d has %d columns, want %d", i, len(row), len(values[0]))
		}
	}
	return matrix{values: values}, nil
}

func (m matrix) Dims() (c, r int) { return len(m.values[0]), len(m.values) }

func (m matrix) Z(c, r int) float64 { return m.values[len(m.values)-1-r][c] }

func (m matrix) X(c int) float64 { return float64(c) }

func (m matrix) Y(r int) float64 { return float64(r) }
