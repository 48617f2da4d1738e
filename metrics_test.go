package kohonen

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	b := &BasicMetricsCollector{}
	assert.Equal(t, BasicMetricsStats{}, b.GetStats())

	b.RecordStep(Position{}, 10*time.Nanosecond)
	b.RecordStep(Position{Row: 1}, 30*time.Nanosecond)
	b.RecordQuantization(4, 0.25, time.Millisecond, nil)
	b.RecordQuantization(0, 0, time.Millisecond, ErrEmptyDataset)
	b.RecordRun(2, time.Second, nil)
	b.RecordRun(0, time.Second, errors.New("boom"))

	stats := b.GetStats()
	assert.Equal(t, int64(2), stats.StepCount)
	assert.Equal(t, int64(20), stats.StepAvgNanos)
	assert.Equal(t, int64(2), stats.QuantizationCount)
	assert.Equal(t, int64(1), stats.QuantizationErrs)
	assert.Equal(t, 0.25, stats.LastQE)
	assert.Equal(t, int64(2), stats.RunCount)
	assert.Equal(t, int64(1), stats.RunErrors)
	assert.Equal(t, int64(2*time.Second), stats.RunTotalNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		mc.RecordStep(Position{}, time.Second)
		mc.RecordQuantization(1, 1, time.Second, nil)
		mc.RecordRun(1, time.Second, nil)
	})
}
