package kohonen

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting training metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    stepCounter  prometheus.Counter
//	    qeGauge      prometheus.Gauge
//	}
//
//	func (p *PrometheusCollector) RecordStep(bmu kohonen.Position, duration time.Duration) {
//	    p.stepCounter.Inc()
//	}
type MetricsCollector interface {
	// RecordStep is called by the Trainer after each learning step.
	// bmu is the winning unit, duration the time taken by the update.
	RecordStep(bmu Position, duration time.Duration)

	// RecordQuantization is called after each quantization error evaluation.
	RecordQuantization(samples int, qe float64, duration time.Duration, err error)

	// RecordRun is called when a training run finishes or is aborted.
	RecordRun(steps int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(Position, time.Duration)                    {}
func (NoopMetricsCollector) RecordQuantization(int, float64, time.Duration, error) {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error)                   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StepCount         atomic.Int64
	StepTotalNanos    atomic.Int64
	QuantizationCount atomic.Int64
	QuantizationErrs  atomic.Int64
	LastQE            atomic.Uint64 // math.Float64bits
	RunCount          atomic.Int64
	RunErrors         atomic.Int64
	RunTotalNanos     atomic.Int64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(_ Position, duration time.Duration) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
}

// RecordQuantization implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuantization(_ int, qe float64, _ time.Duration, err error) {
	b.QuantizationCount.Add(1)
	if err != nil {
		b.QuantizationErrs.Add(1)
		return
	}
	b.LastQE.Store(math.Float64bits(qe))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StepCount:         b.StepCount.Load(),
		StepAvgNanos:      b.getAvgStepNanos(),
		QuantizationCount: b.QuantizationCount.Load(),
		QuantizationErrs:  b.QuantizationErrs.Load(),
		LastQE:            math.Float64frombits(b.LastQE.Load()),
		RunCount:          b.RunCount.Load(),
		RunErrors:         b.RunErrors.Load(),
		RunTotalNanos:     b.RunTotalNanos.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgStepNanos() int64 {
	count := b.StepCount.Load()
	if count == 0 {
		return 0
	}
	return b.StepTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	StepCount         int64
	StepAvgNanos      int64
	QuantizationCount int64
	QuantizationErrs  int64
	LastQE            float64
	RunCount          int64
	RunErrors         int64
	RunTotalNanos     int64
}
