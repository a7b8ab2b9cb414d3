package ulf

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// DefaultEpoch anchors the calendar labeling of the grid. The downstream
// solver only needs monotonic timestamps, so the date itself is arbitrary.
var DefaultEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Stamp is the calendar decomposition of one sample.
type Stamp struct {
	Year, Month, Day, Hour, Minute, Second, Millisecond int
}

// TimeGrid is a uniform sampling of the run. Offsets are seconds from Epoch.
type TimeGrid struct {
	Epoch      time.Time
	Resolution float64 // seconds
	Offsets    []float64
}

// NewTimeGrid builds the sample grid spanning [0, 3600*simLengthHours].
// The sample count is floor(3600*simLengthHours/resolutionSec) + 1: when the
// duration is not a whole number of steps, the grid stops at the last full
// step at or before the requested duration.
func NewTimeGrid(simLengthHours, resolutionSec float64, epoch time.Time) (*TimeGrid, error) {
	if simLengthHours <= 0 {
		return nil, fmt.Errorf("simulation length must be positive, got %g hours", simLengthHours)
	}
	if resolutionSec <= 0 {
		return nil, fmt.Errorf("sample resolution must be positive, got %g seconds", resolutionSec)
	}
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}
	npts := int(math.Floor(simLengthHours*3600/resolutionSec)) + 1
	offsets := make([]float64, npts)
	for i := range offsets {
		offsets[i] = float64(i) * resolutionSec
	}
	return &TimeGrid{Epoch: epoch.UTC(), Resolution: resolutionSec, Offsets: offsets}, nil
}

// NumSamples returns the number of samples on the grid.
func (g *TimeGrid) NumSamples() int {
	return len(g.Offsets)
}

// Time returns sample i as a calendar time.
func (g *TimeGrid) Time(i int) time.Time {
	return g.Epoch.Add(time.Duration(math.Round(g.Offsets[i]*1e3)) * time.Millisecond)
}

// JD returns the Julian date of sample i.
func (g *TimeGrid) JD(i int) float64 {
	return julian.TimeToJD(g.Time(i))
}

// Stamp returns the calendar fields of sample i. The millisecond field is
// fixed at zero: supported resolutions are whole seconds.
func (g *TimeGrid) Stamp(i int) Stamp {
	t := g.Time(i)
	return Stamp{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), 0}
}
