package ulf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewGeneratorValidates(t *testing.T) {
	s := DefaultScenario()
	s.Wave.AmplitudeFraction = 1.5
	if _, err := NewGenerator(s, nil); err == nil {
		t.Fatal("err should not be nil for an amplitude that would empty the background")
	}
}

func TestGeneratorEndToEnd(t *testing.T) {
	s := DefaultScenario()
	gen, err := NewGenerator(s, nil)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	recs, err := gen.Records()
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if len(recs) != 4321 {
		t.Fatalf("got %d records, want 4321", len(recs))
	}

	path := filepath.Join(t.TempDir(), s.Filename)
	if err := WriteRecords(path, recs); err != nil {
		t.Fatalf("err %s", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 4321 {
		t.Fatalf("file has %d lines, want 4321", len(lines))
	}
	for i, line := range lines {
		if len(line) != recordLen {
			t.Fatalf("line %d is %d characters, want %d", i, len(line), recordLen)
		}
		rec, err := ParseRecord(line)
		if err != nil {
			t.Fatalf("line %d: %s", i, err)
		}
		if rec.Bx != 0 || rec.By != 0 || rec.Bz != 5 {
			t.Fatalf("line %d: B = (%g,%g,%g), want (0,0,5)", i, rec.Bx, rec.By, rec.Bz)
		}
		if rec.Vx != -400 || rec.Vy != 0 || rec.Vz != 0 {
			t.Fatalf("line %d: V = (%g,%g,%g), want (-400,0,0)", i, rec.Vx, rec.Vy, rec.Vz)
		}
		if rec.Millisecond != 0 {
			t.Fatalf("line %d: non-zero millisecond field", i)
		}
	}

	// Away from the packet the background is untouched.
	first, err := ParseRecord(lines[0])
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !scalar.EqualWithinAbs(first.Density, 5, 0.0005) {
		t.Fatalf("first density %f, want the 5 cm^-3 background", first.Density)
	}
	if !scalar.EqualWithinAbs(first.Temperature, ReferenceTemperature, 0.01) {
		t.Fatalf("first temperature %f, want the reference %f", first.Temperature, ReferenceTemperature)
	}
	if first.Stamp != (Stamp{2000, 1, 1, 0, 0, 0, 0}) {
		t.Fatalf("first stamp %+v, want the default epoch", first.Stamp)
	}
}

func TestGeneratorBroadbandRecords(t *testing.T) {
	s := DefaultScenario()
	s.Wave.BandwidthFraction = 0.1
	s.Seed = 7
	gen, err := NewGenerator(s, nil)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	a, err := gen.Records()
	if err != nil {
		t.Fatalf("err %s", err)
	}
	gen2, err := NewGenerator(s, nil)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	b, err := gen2.Records()
	if err != nil {
		t.Fatalf("err %s", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded runs diverge at record %d", i)
		}
	}
}
