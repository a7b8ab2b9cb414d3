package ulf

import (
	"strings"
	"testing"
)

func TestDefaultScenario(t *testing.T) {
	s := DefaultScenario()
	if err := s.Validate(); err != nil {
		t.Fatalf("default scenario must validate, got %s", err)
	}
	if s.Wave.AmplitudeFraction != 0.2 || s.Wave.CenterFrequency != 0.003 {
		t.Fatalf("unexpected default wave %+v", s.Wave)
	}
	if s.B != ([3]float64{0, 0, 5}) || s.V != ([3]float64{-400, 0, 0}) {
		t.Fatalf("unexpected default field/velocity B=%v V=%v", s.B, s.V)
	}
}

func TestScenarioValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"SimLengthHours", func(s *Scenario) { s.SimLengthHours = 0 }},
		{"ResolutionSec", func(s *Scenario) { s.ResolutionSec = 0.5 }},
		{"PacketCenterSec", func(s *Scenario) { s.PacketCenterSec = -1 }},
		{"BackgroundDensity", func(s *Scenario) { s.BackgroundDensity = 0 }},
		{"AmplitudeFraction", func(s *Scenario) { s.Wave.AmplitudeFraction = 1 }},
		{"AmplitudeFraction", func(s *Scenario) { s.Wave.AmplitudeFraction = 0 }},
		{"CenterFrequency", func(s *Scenario) { s.Wave.CenterFrequency = 0 }},
		{"DurationWavelengths", func(s *Scenario) { s.Wave.DurationWavelengths = -2 }},
		{"BandwidthFraction", func(s *Scenario) { s.Wave.BandwidthFraction = -0.1 }},
		{"Filename", func(s *Scenario) { s.Filename = "" }},
	}
	for _, tc := range cases {
		s := DefaultScenario()
		tc.mutate(&s)
		err := s.Validate()
		if err == nil {
			t.Fatalf("[%s] err should not be nil", tc.name)
		}
		if !strings.Contains(err.Error(), tc.name) {
			t.Fatalf("[%s] error %q does not name the parameter", tc.name, err)
		}
	}
}

func TestWaveParametersTau(t *testing.T) {
	w := WaveParameters{CenterFrequency: 0.003, DurationWavelengths: 6}
	if w.Tau() != 2000 {
		t.Fatalf("tau = %f, want 2000", w.Tau())
	}
}
