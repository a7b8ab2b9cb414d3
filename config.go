package ulf

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Candidate parameter values from the idealized driving-event study. One
// combination is selected per run (see DefaultScenario); these are fixed
// lookup tables, not runtime knobs.
var (
	AmplitudeFractions = []float64{0.1, 0.2, 0.3}
	CenterFrequencies  = []float64{0.001, 0.003, 0.005, 0.010} // Hz
	DurationChoices    = []float64{2, 6, 10}                   // packet length in wave periods
	BandwidthFractions = []float64{0, 0.1, 0.5}
)

// WaveParameters configures a single large-scale ULF wave packet.
type WaveParameters struct {
	AmplitudeFraction   float64 // peak density perturbation as a fraction of the background
	CenterFrequency     float64 // Hz
	DurationWavelengths float64 // packet duration in units of the wave period
	BandwidthFraction   float64 // half-width of the tone band relative to CenterFrequency; 0 means a single tone
}

// Tau returns the Gaussian decay time constant in seconds.
func (w WaveParameters) Tau() float64 {
	return w.DurationWavelengths / w.CenterFrequency
}

// Scenario defines one synthesis run. Treat as immutable once built.
type Scenario struct {
	SimLengthHours    float64
	ResolutionSec     float64
	PacketCenterSec   float64
	BackgroundDensity float64 // cm^-3
	Wave              WaveParameters
	B                 [3]float64 // nT
	V                 [3]float64 // km/s
	Epoch             time.Time  // labeling only, carries no physical meaning
	Seed              uint64     // broadband phase seed; 0 seeds from the wall clock
	Filename          string
}

// DefaultScenario returns the stock driving event: a 12 hour run at 10 s
// resolution with a monochromatic 3 mHz packet of six wavelengths centered
// at t = 6 h, riding on a 5 cm^-3 background.
func DefaultScenario() Scenario {
	return Scenario{
		SimLengthHours:    12,
		ResolutionSec:     10,
		PacketCenterSec:   21600,
		BackgroundDensity: 5,
		Wave: WaveParameters{
			AmplitudeFraction:   AmplitudeFractions[1],
			CenterFrequency:     CenterFrequencies[1],
			DurationWavelengths: DurationChoices[1],
			BandwidthFraction:   BandwidthFractions[0],
		},
		B:        [3]float64{0, 0, 5},
		V:        [3]float64{-400, 0, 0},
		Epoch:    DefaultEpoch,
		Filename: "imf_ulf.dat",
	}
}

// Validate checks every parameter before any computation happens. The first
// violated constraint is returned with the parameter named.
func (s Scenario) Validate() error {
	if s.SimLengthHours <= 0 {
		return fmt.Errorf("SimLengthHours must be positive, got %g", s.SimLengthHours)
	}
	if s.ResolutionSec < 1 {
		return fmt.Errorf("ResolutionSec must be at least 1 second, got %g", s.ResolutionSec)
	}
	if s.PacketCenterSec < 0 {
		return fmt.Errorf("PacketCenterSec must not be negative, got %g", s.PacketCenterSec)
	}
	if s.BackgroundDensity <= 0 {
		return fmt.Errorf("BackgroundDensity must be positive, got %g", s.BackgroundDensity)
	}
	if s.Wave.AmplitudeFraction <= 0 || s.Wave.AmplitudeFraction >= 1 {
		return fmt.Errorf("AmplitudeFraction must be in (0, 1) to keep the density positive, got %g", s.Wave.AmplitudeFraction)
	}
	if s.Wave.CenterFrequency <= 0 {
		return fmt.Errorf("CenterFrequency must be positive, got %g", s.Wave.CenterFrequency)
	}
	if s.Wave.DurationWavelengths <= 0 {
		return fmt.Errorf("DurationWavelengths must be positive, got %g", s.Wave.DurationWavelengths)
	}
	if s.Wave.BandwidthFraction < 0 {
		return fmt.Errorf("BandwidthFraction must not be negative, got %g", s.Wave.BandwidthFraction)
	}
	if s.Filename == "" {
		return fmt.Errorf("Filename must not be empty")
	}
	return nil
}

var (
	cfgLoaded = false
	config    = _ulfconfig{}
)

// _ulfconfig is a "hidden" struct, just use `ulfConfig`
type _ulfconfig struct {
	outputDir string
}

// ulfConfig returns the ulf configuration. The conf.toml is optional glue
// for output-path selection only: when ULF_CONFIG is unset or the file is
// missing, output goes to the current directory. The synthesis core never
// reads it.
func ulfConfig() _ulfconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("ULF_CONFIG")
	if confPath == "" {
		confPath = "."
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(confPath)
	if err := v.ReadInConfig(); err == nil {
		config.outputDir = v.GetString("general.output_path")
	}
	if config.outputDir == "" {
		config.outputDir = "."
	}
	cfgLoaded = true
	return config
}
