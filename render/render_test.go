package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

var grid2x2 = [][][]float64{
	{{0, 0, 1, 2}, {1, 0, 3, 4}},
	{{0, 1, 5, 6}, {1, 1, 7, 8}},
}

func TestScatterPlot(t *testing.T) {
	p, err := ScatterPlot(grid2x2, 0, 1, "weights")
	require.NoError(t, err)
	assert.Equal(t, "weights", p.Title.Text)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, p, DefaultSize))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	_, err = ScatterPlot(grid2x2, 2, 4, "bad")
	assert.Error(t, err)

	_, err = ScatterPlot(nil, 0, 1, "empty")
	assert.Error(t, err)
}

func TestHeatmapPlot(t *testing.T) {
	tests := []struct {
		name   string
		values [][]float64
	}{
		{"Grid", [][]float64{{0, 1, 2}, {3, 4, 5}}},
		{"Flat", [][]float64{{0, 0}, {0, 0}}},
		{"Single", [][]float64{{0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := HeatmapPlot(tt.values, tt.name)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, WritePNG(&buf, p, DefaultSize))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
		})
	}

	_, err := HeatmapPlot([][]float64{{1, 2}, {3}}, "ragged")
	assert.Error(t, err)
	_, err = HeatmapPlot(nil, "empty")
	assert.Error(t, err)
}

func TestMatrixOrientation(t *testing.T) {
	m, err := newMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	c, r := m.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	// Plot row 0 is the bottom, i.e. the last input row.
	assert.Equal(t, 4.0, m.Z(0, 0))
	assert.Equal(t, 3.0, m.Z(2, 1))
	assert.Equal(t, 2.0, m.X(2))
	assert.Equal(t, 1.0, m.Y(1))
}

func TestWeightTiles(t *testing.T) {
	tiles, err := WeightTiles(grid2x2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 0, 1, 0},
		{1, 2, 3, 4},
		{0, 1, 1, 1},
		{5, 6, 7, 8},
	}, tiles)

	tiles, err = WeightTiles([][][]float64{{{1, 2}, {3, 4}}}, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, tiles)

	_, err = WeightTiles(grid2x2, 3, 1)
	assert.Error(t, err)

	p, err := WeightsPlot(grid2x2, 4, 1, "tiles")
	require.NoError(t, err)
	assert.Equal(t, "tiles", p.Title.Text)
}

func TestHeatmapHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HeatmapHTML(&buf, [][]float64{{0.5, 1}, {2, 4}}, "distortion"))

	html := buf.String()
	assert.Contains(t, html, "distortion")
	assert.Contains(t, html, "echarts")

	buf.Reset()
	require.NoError(t, HeatmapHTML(&buf, [][]float64{{0}}, "single"))

	assert.Error(t, HeatmapHTML(&buf, nil, "empty"))
}

func TestSaveAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	p, err := HeatmapPlot([][]float64{{0, 1}, {1, 0}}, "hm")
	require.NoError(t, err)

	jobs := []Job{
		PNGJob("heatmap.png", p),
		HTMLJob("heatmap.html", [][]float64{{0, 1}, {1, 0}}, "hm"),
		{Name: "note.txt", Render: func(w io.Writer) error {
			_, err := io.WriteString(w, "hello")
			return err
		}},
	}
	require.NoError(t, SaveAll(context.Background(), dir, jobs))

	data, err := os.ReadFile(filepath.Join(dir, "heatmap.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))

	data, err = os.ReadFile(filepath.Join(dir, "note.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = os.Stat(filepath.Join(dir, "heatmap.html"))
	assert.NoError(t, err)
}

func TestSaveAll_Error(t *testing.T) {
	boom := errors.New("boom")
	err := SaveAll(context.Background(), t.TempDir(), []Job{
		{Name: "bad.txt", Render: func(io.Writer) error { return boom }},
	})
	assert.ErrorIs(t, err, boom)
}

func TestSaveAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	err := SaveAll(ctx, dir, []Job{
		{Name: "never.txt", Render: func(io.Writer) error { return nil }},
	})
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "never.txt"))
	assert.True(t, os.IsNotExist(statErr))
}
