// Package config loads the training run configuration used by cmd/kohonen.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hupe1980/kohonen"
	"github.com/hupe1980/kohonen/dataset"
)

// Schedule kinds accepted in the "schedule" field.
const (
	ScheduleConstant    = "constant"
	ScheduleExponential = "exponential"
	ScheduleLinear      = "linear"
)

// RunConfig is the JSON schema of a training run. Omitted fields fall back
// to the defaults returned by the Get* methods.
type RunConfig struct {
	// Map
	GridHeight *int `json:"grid_height,omitempty"`
	GridWidth  *int `json:"grid_width,omitempty"`

	// Learning
	Eta        *float64 `json:"eta,omitempty"`
	Sigma      *float64 `json:"sigma,omitempty"`
	Iterations *int     `json:"iterations,omitempty"`
	Schedule   *string  `json:"schedule,omitempty"`
	EtaEnd     *float64 `json:"eta_end,omitempty"`
	SigmaEnd   *float64 `json:"sigma_end,omitempty"`

	// Data
	Dataset *string `json:"dataset,omitempty"`
	Samples *int    `json:"samples,omitempty"`
	Seed    *uint64 `json:"seed,omitempty"`

	// Output
	ProgressEvery *int    `json:"progress_every,omitempty"`
	OutputDir     *string `json:"output_dir,omitempty"`
	HTML          *bool   `json:"html,omitempty"`
}

// EmptyRunConfig returns a RunConfig with all fields set to nil.
func EmptyRunConfig() *RunConfig {
	return &RunConfig{}
}

// LoadRunConfig loads a RunConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadRunConfig(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyRunConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *RunConfig) Validate() error {
	if c.GetGridHeight() <= 0 || c.GetGridWidth() <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.GetGridHeight(), c.GetGridWidth())
	}
	if c.GetSigma() <= 0 {
		return fmt.Errorf("sigma must be positive, got %f", c.GetSigma())
	}
	if c.GetIterations() < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", c.GetIterations())
	}
	if c.GetSamples() <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.GetSamples())
	}
	if _, err := dataset.ParseName(c.GetDataset()); err != nil {
		return err
	}

	switch c.GetSchedule() {
	case ScheduleConstant:
	case ScheduleExponential:
		if c.GetEta() <= 0 || c.GetEtaEnd() <= 0 || c.GetSigmaEnd() <= 0 {
			return fmt.Errorf("exponential schedule needs positive eta, eta_end and sigma_end")
		}
	case ScheduleLinear:
		if c.GetSigmaEnd() <= 0 {
			return fmt.Errorf("sigma_end must be positive, got %f", c.GetSigmaEnd())
		}
	default:
		return fmt.Errorf("unknown schedule %q", c.GetSchedule())
	}

	return nil
}

// GetGridHeight returns the grid_height value or the default.
func (c *RunConfig) GetGridHeight() int {
	if c.GridHeight == nil {
		return 10 // default
	}
	return *c.GridHeight
}

// GetGridWidth returns the grid_width value or the default.
func (c *RunConfig) GetGridWidth() int {
	if c.GridWidth == nil {
		return 10 // default
	}
	return *c.GridWidth
}

// GetEta returns the eta value or the default.
func (c *RunConfig) GetEta() float64 {
	if c.Eta == nil {
		return 0.05 // default
	}
	return *c.Eta
}

// GetSigma returns the sigma value or the default.
func (c *RunConfig) GetSigma() float64 {
	if c.Sigma == nil {
		return 1.4 // default
	}
	return *c.Sigma
}

// GetIterations returns the iterations value or the default.
func (c *RunConfig) GetIterations() int {
	if c.Iterations == nil {
		return 30000 // default
	}
	return *c.Iterations
}

// GetSchedule returns the schedule kind or the default.
func (c *RunConfig) GetSchedule() string {
	if c.Schedule == nil || *c.Schedule == "" {
		return ScheduleConstant
	}
	return *c.Schedule
}

// GetEtaEnd returns the final learning rate of a decaying schedule.
func (c *RunConfig) GetEtaEnd() float64 {
	if c.EtaEnd == nil {
		return c.GetEta() / 10 // default
	}
	return *c.EtaEnd
}

// GetSigmaEnd returns the final neighborhood width of a decaying schedule.
func (c *RunConfig) GetSigmaEnd() float64 {
	if c.SigmaEnd == nil {
		return c.GetSigma() / 10 // default
	}
	return *c.SigmaEnd
}

// GetDataset returns the dataset name or the default.
func (c *RunConfig) GetDataset() string {
	if c.Dataset == nil {
		return string(dataset.Uniform)
	}
	return *c.Dataset
}

// GetSamples returns the number of samples to generate or the default.
func (c *RunConfig) GetSamples() int {
	if c.Samples == nil {
		return 1200 // default
	}
	return *c.Samples
}

// GetSeed returns the seed and whether one was configured.
func (c *RunConfig) GetSeed() (uint64, bool) {
	if c.Seed == nil {
		return 0, false
	}
	return *c.Seed, true
}

// GetProgressEvery returns the progress cadence or the default.
func (c *RunConfig) GetProgressEvery() int {
	if c.ProgressEvery == nil {
		return 1000 // default
	}
	return *c.ProgressEvery
}

// GetOutputDir returns the plot output directory ("" disables plots).
func (c *RunConfig) GetOutputDir() string {
	if c.OutputDir == nil {
		return ""
	}
	return *c.OutputDir
}

// GetHTML reports whether HTML heatmaps are written next to the PNGs.
func (c *RunConfig) GetHTML() bool {
	if c.HTML == nil {
		return false
	}
	return *c.HTML
}

// KohonenParams builds the training parameters described by the config.
func (c *RunConfig) KohonenParams() kohonen.Params {
	p := kohonen.Params{
		Eta:        c.GetEta(),
		Sigma:      c.GetSigma(),
		Iterations: c.GetIterations(),
	}
	switch c.GetSchedule() {
	case ScheduleExponential:
		p.Schedule = kohonen.ExponentialDecay{
			EtaStart: c.GetEta(), EtaEnd: c.GetEtaEnd(),
			SigmaStart: c.GetSigma(), SigmaEnd: c.GetSigmaEnd(),
		}
	case ScheduleLinear:
		p.Schedule = kohonen.LinearDecay{
			EtaStart: c.GetEta(), EtaEnd: c.GetEtaEnd(),
			SigmaStart: c.GetSigma(), SigmaEnd: c.GetSigmaEnd(),
		}
	}
	return p
}
