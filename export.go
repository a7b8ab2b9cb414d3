package ulf

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Record is one line of the IMF file.
type Record struct {
	Stamp
	Bx, By, Bz  float64 // nT
	Vx, Vy, Vz  float64 // km/s
	Density     float64 // cm^-3
	Temperature float64 // K
}

// recordLen is the fixed width of one serialized record, without the newline.
const recordLen = 90

// ToText serializes the record to the fixed-width IMF layout. The solver
// parses these by column position, so the widths are part of the contract:
// calendar fields, a millisecond field (always zero), six signed %7.1f
// field and velocity components, %7.3f density, %10.2f temperature.
func (r Record) ToText() string {
	return fmt.Sprintf("%4d %02d %02d %02d %02d %02d %03d %7.1f %7.1f %7.1f %7.1f %7.1f %7.1f %7.3f %10.2f",
		r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second, r.Millisecond,
		r.Bx, r.By, r.Bz, r.Vx, r.Vy, r.Vz, r.Density, r.Temperature)
}

// recordColumns are the [lo, hi) column spans of each field in a record.
var recordColumns = [...][2]int{
	{0, 4},   // year
	{5, 7},   // month
	{8, 10},  // day
	{11, 13}, // hour
	{14, 16}, // minute
	{17, 19}, // second
	{20, 23}, // millisecond
	{24, 31}, // bx
	{32, 39}, // by
	{40, 47}, // bz
	{48, 55}, // vx
	{56, 63}, // vy
	{64, 71}, // vz
	{72, 79}, // density
	{80, 90}, // temperature
}

// ParseRecord reads a record back by fixed column positions.
func ParseRecord(line string) (Record, error) {
	if len(line) < recordLen {
		return Record{}, fmt.Errorf("record is %d characters, want %d", len(line), recordLen)
	}
	var vals [len(recordColumns)]float64
	for i, span := range recordColumns {
		raw := line[span[0]:span[1]]
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Record{}, fmt.Errorf("record field %d (%q): %s", i, raw, err)
		}
		vals[i] = v
	}
	return Record{
		Stamp: Stamp{
			Year: int(vals[0]), Month: int(vals[1]), Day: int(vals[2]),
			Hour: int(vals[3]), Minute: int(vals[4]), Second: int(vals[5]),
			Millisecond: int(vals[6]),
		},
		Bx: vals[7], By: vals[8], Bz: vals[9],
		Vx: vals[10], Vy: vals[11], Vz: vals[12],
		Density: vals[13], Temperature: vals[14],
	}, nil
}

// WriteRecords writes one record per line to path, creating or overwriting
// the file. The whole stream is buffered before a single write so an I/O
// failure cannot leave a truncated record sequence behind.
func WriteRecords(path string, recs []Record) error {
	var buf bytes.Buffer
	buf.Grow(len(recs) * (recordLen + 1))
	for _, r := range recs {
		buf.WriteString(r.ToText())
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing IMF file %s: %s", path, err)
	}
	return nil
}
