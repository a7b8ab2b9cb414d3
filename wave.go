package ulf

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// freqStep is the tone spacing of the broadband grid in Hz.
const freqStep = 1e-4

// Synthesizer produces the density perturbation of one wave packet.
type Synthesizer struct {
	wave WaveParameters
	n0   float64 // background density, cm^-3
	ts   float64 // packet center, seconds into the run
	src  rand.Source
}

// NewSynthesizer returns a synthesizer for the given packet. A nil src seeds
// the phase draws from the wall clock; inject a fixed source for
// reproducible broadband runs.
func NewSynthesizer(w WaveParameters, n0, ts float64, src rand.Source) *Synthesizer {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &Synthesizer{wave: w, n0: n0, ts: ts, src: src}
}

// Tones returns the frequency grid of the superposition. A zero bandwidth,
// or a band narrower than one freqStep, collapses to the center frequency
// alone so the superposition is never empty.
func (s *Synthesizer) Tones() []float64 {
	w := s.wave
	fn := 0
	if w.BandwidthFraction > 0 {
		span := 2 * w.BandwidthFraction * w.CenterFrequency
		fn = int(math.Round(span / freqStep))
	}
	if fn <= 1 {
		return []float64{w.CenterFrequency}
	}
	tones := make([]float64, fn)
	fmin := w.CenterFrequency * (1 - w.BandwidthFraction)
	for i := range tones {
		tones[i] = fmin + float64(i)*freqStep
	}
	return tones
}

// Perturbation evaluates dn(t) on the grid: a Gaussian envelope centered at
// ts modulating either a single tone or an equal-power superposition of
// randomly phased tones. Each tone carries An1²/fn of the power, so the
// total injected power does not depend on the tone count.
func (s *Synthesizer) Perturbation(grid *TimeGrid) []float64 {
	w := s.wave
	tau := w.Tau()
	an := w.AmplitudeFraction * s.n0
	dn := make([]float64, grid.NumSamples())
	if w.BandwidthFraction == 0 {
		for i, t := range grid.Offsets {
			dt := t - s.ts
			env := math.Exp(-(dt / tau) * (dt / tau))
			dn[i] = an * env * math.Sin(2*math.Pi*w.CenterFrequency*dt)
		}
		return dn
	}
	tones := s.Tones()
	an /= math.Sqrt(float64(len(tones)))
	uniform := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: s.src}
	phases := make([]float64, len(tones))
	for i := range phases {
		phases[i] = uniform.Rand()
	}
	for i, t := range grid.Offsets {
		dt := t - s.ts
		env := math.Exp(-(dt / tau) * (dt / tau))
		var sum float64
		for k, f := range tones {
			sum += math.Sin(2*math.Pi*f*dt + phases[k])
		}
		dn[i] = an * env * sum
	}
	return dn
}
