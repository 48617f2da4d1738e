package kohonen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstant(t *testing.T) {
	c := Constant{Eta: 0.05, Sigma: 1.4}
	for _, step := range []int{0, 10, 30000} {
		eta, sigma := c.At(step, 30000)
		assert.Equal(t, 0.05, eta)
		assert.Equal(t, 1.4, sigma)
	}
	assert.Equal(t, "constant(eta=0.05, sigma=1.4)", c.String())
}

func TestExponentialDecay(t *testing.T) {
	e := ExponentialDecay{EtaStart: 0.5, EtaEnd: 0.005, SigmaStart: 4, SigmaEnd: 0.25}

	eta, sigma := e.At(0, 100)
	assert.InDelta(t, 0.5, eta, 1e-12)
	assert.InDelta(t, 4.0, sigma, 1e-12)

	eta, sigma = e.At(100, 100)
	assert.InDelta(t, 0.005, eta, 1e-12)
	assert.InDelta(t, 0.25, sigma, 1e-12)

	eta, sigma = e.At(50, 100)
	assert.InDelta(t, 0.05, eta, 1e-12)
	assert.InDelta(t, 1.0, sigma, 1e-12)

	eta, sigma = e.At(5, 0)
	assert.Equal(t, 0.5, eta)
	assert.Equal(t, 4.0, sigma)
}

func TestLinearDecay(t *testing.T) {
	l := LinearDecay{EtaStart: 0.5, EtaEnd: 0.1, SigmaStart: 3, SigmaEnd: 1}

	eta, sigma := l.At(0, 10)
	assert.InDelta(t, 0.5, eta, 1e-12)
	assert.InDelta(t, 3.0, sigma, 1e-12)

	eta, sigma = l.At(5, 10)
	assert.InDelta(t, 0.3, eta, 1e-12)
	assert.InDelta(t, 2.0, sigma, 1e-12)

	eta, sigma = l.At(10, 10)
	assert.InDelta(t, 0.1, eta, 1e-12)
	assert.InDelta(t, 1.0, sigma, 1e-12)

	eta, _ = l.At(3, 0)
	assert.Equal(t, 0.5, eta)
}

func TestDecayMonotone(t *testing.T) {
	schedules := []Schedule{
		ExponentialDecay{EtaStart: 0.9, EtaEnd: 0.01, SigmaStart: 5, SigmaEnd: 0.5},
		LinearDecay{EtaStart: 0.9, EtaEnd: 0.01, SigmaStart: 5, SigmaEnd: 0.5},
	}
	for _, s := range schedules {
		prevEta, prevSigma := math.Inf(1), math.Inf(1)
		for step := 0; step <= 200; step++ {
			eta, sigma := s.At(step, 200)
			assert.LessOrEqual(t, eta, prevEta)
			assert.LessOrEqual(t, sigma, prevSigma)
			prevEta, prevSigma = eta, sigma
		}
	}
}
