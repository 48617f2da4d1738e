package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/kohonen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := EmptyRunConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.GetGridHeight())
	assert.Equal(t, 10, cfg.GetGridWidth())
	assert.Equal(t, 0.05, cfg.GetEta())
	assert.Equal(t, 1.4, cfg.GetSigma())
	assert.Equal(t, 30000, cfg.GetIterations())
	assert.Equal(t, 1200, cfg.GetSamples())
	assert.Equal(t, "uniform", cfg.GetDataset())
	assert.Equal(t, 1000, cfg.GetProgressEvery())
	assert.Equal(t, ScheduleConstant, cfg.GetSchedule())
	assert.Empty(t, cfg.GetOutputDir())
	assert.False(t, cfg.GetHTML())

	_, ok := cfg.GetSeed()
	assert.False(t, ok)

	p := cfg.KohonenParams()
	assert.Equal(t, kohonen.Params{Eta: 0.05, Sigma: 1.4, Iterations: 30000}, p)
}

func TestLoadRunConfig(t *testing.T) {
	path := writeConfig(t, "run.json", `{
  "grid_height": 8,
  "grid_width": 12,
  "eta": 0.2,
  "sigma": 3,
  "iterations": 500,
  "schedule": "exponential",
  "eta_end": 0.01,
  "sigma_end": 0.5,
  "dataset": "robot-arm",
  "samples": 300,
  "seed": 42,
  "output_dir": "plots",
  "html": true
}`)

	cfg, err := LoadRunConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.GetGridHeight())
	assert.Equal(t, 12, cfg.GetGridWidth())
	assert.Equal(t, "robot-arm", cfg.GetDataset())
	assert.Equal(t, 300, cfg.GetSamples())
	assert.Equal(t, "plots", cfg.GetOutputDir())
	assert.True(t, cfg.GetHTML())

	seed, ok := cfg.GetSeed()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), seed)

	p := cfg.KohonenParams()
	assert.Equal(t, 500, p.Iterations)
	assert.Equal(t, kohonen.ExponentialDecay{EtaStart: 0.2, EtaEnd: 0.01, SigmaStart: 3, SigmaEnd: 0.5}, p.Schedule)
}

func TestLoadRunConfig_Partial(t *testing.T) {
	path := writeConfig(t, "partial.json", `{"sigma": 2, "schedule": "linear"}`)

	cfg, err := LoadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.GetGridHeight())

	sched, ok := cfg.KohonenParams().Schedule.(kohonen.LinearDecay)
	require.True(t, ok)
	assert.Equal(t, 0.05, sched.EtaStart)
	assert.InDelta(t, 0.005, sched.EtaEnd, 1e-12)
	assert.Equal(t, 2.0, sched.SigmaStart)
	assert.InDelta(t, 0.2, sched.SigmaEnd, 1e-12)
}

func TestLoadRunConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"Extension", "run.yaml", `{}`, ".json extension"},
		{"Syntax", "run.json", `{"eta": }`, "parse config JSON"},
		{"GridSize", "run.json", `{"grid_width": 0}`, "grid size"},
		{"Sigma", "run.json", `{"sigma": -1}`, "sigma must be positive"},
		{"Iterations", "run.json", `{"iterations": -5}`, "iterations"},
		{"Samples", "run.json", `{"samples": 0}`, "samples"},
		{"Dataset", "run.json", `{"dataset": "spiral"}`, "unknown dataset"},
		{"Schedule", "run.json", `{"schedule": "cosine"}`, "unknown schedule"},
		{"ExpZero", "run.json", `{"schedule": "exponential", "eta_end": 0}`, "exponential"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRunConfig(writeConfig(t, tt.file, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := LoadRunConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadRunConfig_TooLarge(t *testing.T) {
	body := `{"dataset": "uniform", "pad": "` + strings.Repeat("x", 1024*1024) + `"}`
	_, err := LoadRunConfig(writeConfig(t, "big.json", body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
