// Package ulf synthesizes idealized solar-wind time series ("IMF files")
// driving a magnetospheric radiation-belt simulator. A run models one
// large-scale ULF wave as a Gaussian-enveloped density perturbation on a
// constant background, with the temperature anti-correlated so thermal
// pressure stays constant, and serializes the result to the fixed-width
// record format the solver ingests.
package ulf

import (
	"path/filepath"

	kitlog "github.com/go-kit/kit/log"
	"golang.org/x/exp/rand"
)

// Generator runs one synthesis end to end: time grid, wave packet, plasma
// state, records.
type Generator struct {
	scenario Scenario
	logger   kitlog.Logger
	src      rand.Source
}

// NewGenerator validates the scenario and returns a generator. A nil logger
// is replaced with a no-op one.
func NewGenerator(s Scenario, logger kitlog.Logger) (*Generator, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	var src rand.Source
	if s.Seed != 0 {
		src = rand.NewSource(s.Seed)
	}
	return &Generator{scenario: s, logger: logger, src: src}, nil
}

// Records computes the full record sequence in memory.
func (g *Generator) Records() ([]Record, error) {
	s := g.scenario
	grid, err := NewTimeGrid(s.SimLengthHours, s.ResolutionSec, s.Epoch)
	if err != nil {
		return nil, err
	}
	dn := NewSynthesizer(s.Wave, s.BackgroundDensity, s.PacketCenterSec, g.src).Perturbation(grid)
	states, err := BuildStates(dn, s.BackgroundDensity, s.B, s.V)
	if err != nil {
		return nil, err
	}
	recs := make([]Record, grid.NumSamples())
	for i, st := range states {
		recs[i] = Record{
			Stamp:       grid.Stamp(i),
			Bx:          st.B[0],
			By:          st.B[1],
			Bz:          st.B[2],
			Vx:          st.V[0],
			Vy:          st.V[1],
			Vz:          st.V[2],
			Density:     st.DensityCm3,
			Temperature: st.TemperatureK,
		}
	}
	g.logger.Log("npts", grid.NumSamples(), "jdStart", grid.JD(0), "jdEnd", grid.JD(grid.NumSamples()-1))
	return recs, nil
}

// Write computes the records and writes them under the configured output
// directory, returning the full path of the IMF file.
func (g *Generator) Write() (string, error) {
	recs, err := g.Records()
	if err != nil {
		return "", err
	}
	path := filepath.Join(ulfConfig().outputDir, g.scenario.Filename)
	if err := WriteRecords(path, recs); err != nil {
		return "", err
	}
	g.logger.Log("wrote", path, "records", len(recs))
	return path, nil
}
