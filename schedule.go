package kohonen

import (
	"fmt"
	"math"
)

// Schedule yields the learning rate and neighborhood width for a step.
//
// step runs from 0 to total inclusive, where total is the configured
// iteration count.
type Schedule interface {
	At(step, total int) (eta, sigma float64)
}

// Constant keeps eta and sigma fixed for the whole run.
type Constant struct {
	Eta   float64
	Sigma float64
}

// At implements Schedule.
func (c Constant) At(int, int) (float64, float64) { return c.Eta, c.Sigma }

func (c Constant) String() string {
	return fmt.Sprintf("constant(eta=%g, sigma=%g)", c.Eta, c.Sigma)
}

// ExponentialDecay interpolates geometrically from the start to the end
// values: v(t) = start * (end/start)^(t/total). All values must be positive.
type ExponentialDecay struct {
	EtaStart   float64
	EtaEnd     float64
	SigmaStart float64
	SigmaEnd   float64
}

// At implements Schedule.
func (e ExponentialDecay) At(step, total int) (float64, float64) {
	if total <= 0 {
		return e.EtaStart, e.SigmaStart
	}
	frac := float64(step) / float64(total)
	return e.EtaStart * math.Pow(e.EtaEnd/e.EtaStart, frac),
		e.SigmaStart * math.Pow(e.SigmaEnd/e.SigmaStart, frac)
}

func (e ExponentialDecay) String() string {
	return fmt.Sprintf("exponential(eta=%g->%g, sigma=%g->%g)", e.EtaStart, e.EtaEnd, e.SigmaStart, e.SigmaEnd)
}

// LinearDecay interpolates linearly from the start to the end values.
type LinearDecay struct {
	EtaStart   float64
	EtaEnd     float64
	SigmaStart float64
	SigmaEnd   float64
}

// At implements Schedule.
func (l LinearDecay) At(step, total int) (float64, float64) {
	if total <= 0 {
		return l.EtaStart, l.SigmaStart
	}
	frac := float64(step) / float64(total)
	return l.EtaStart + (l.EtaEnd-l.EtaStart)*frac,
		l.SigmaStart + (l.SigmaEnd-l.SigmaStart)*frac
}

func (l LinearDecay) String() string {
	return fmt.Sprintf("linear(eta=%g->%g, sigma=%g->%g)", l.EtaStart, l.EtaEnd, l.SigmaStart, l.SigmaEnd)
}
