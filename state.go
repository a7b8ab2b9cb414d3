package ulf

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// State is the solar-wind condition at one sample.
type State struct {
	DensityCm3   float64
	TemperatureK float64
	B            [3]float64 // nT
	V            [3]float64 // km/s
}

// BuildStates derives the per-sample plasma state from the perturbation.
// Temperature moves against density so that density×temperature equals
// n0×ReferenceTemperature at every sample (constant thermal pressure).
// Supported amplitudes keep dn well below n0, but a non-positive density is
// rejected here rather than propagated into the temperature division.
func BuildStates(dn []float64, n0 float64, b, v [3]float64) ([]State, error) {
	if len(dn) == 0 {
		return nil, fmt.Errorf("empty perturbation series")
	}
	density := make([]float64, len(dn))
	for i, d := range dn {
		density[i] = n0 + d
	}
	if floats.Min(density) <= 0 {
		i := floats.MinIdx(density)
		return nil, fmt.Errorf("non-physical density %.4g cm^-3 at sample %d: perturbation exceeds the background", density[i], i)
	}
	states := make([]State, len(dn))
	for i := range states {
		states[i] = State{
			DensityCm3:   density[i],
			TemperatureK: ReferenceTemperature * (1 - dn[i]/density[i]),
			B:            b,
			V:            v,
		}
	}
	return states, nil
}
