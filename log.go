package fuelcell

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/google/uuid"
)

const (
	defaultMaxCapacity       = 7
	defaultFlowRateTolerance = 0.1 // L/min
)

// exportHeader is the fixed first line of every export, present even when
// the log is empty
var exportHeader = []string{
	"S.No.",
	"Hydrogen Flow Rate (L/min)",
	"Current (A)",
	"Voltage (V)",
	"Power (W)",
	"Efficiency (%)",
	"Temperature (°C)",
}

// ReadingLog denotes a bounded, deduplicated set of readings kept in
// ascending flow-rate order and serial-numbered densely from 1. It is
// owned by a single caller; concurrent mutation requires external
// coordination.
type ReadingLog struct {
	maxCapacity int
	tolerance   float64

	readings Readings

	logger Logger
}

// NewReadingLog instantiates a new ReadingLog, executing functional
// options, if any
func NewReadingLog(options ...func(*ReadingLog)) *ReadingLog {

	// Initialize a new instance of a ReadingLog
	l := &ReadingLog{
		maxCapacity: defaultMaxCapacity,
		tolerance:   defaultFlowRateTolerance,
		logger:      &NullLogger{},
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(l)
	}

	return l
}

// Add inserts a reading, keeping the log sorted by flow rate and the
// serial numbers dense. The log is left unchanged if it is full or if the
// flow rate collides with an existing entry within the tolerance.
func (l *ReadingLog) Add(reading Reading) error {

	if len(l.readings) >= l.maxCapacity {
		return fmt.Errorf("%w (%d entries)", ErrCapacityExceeded, l.maxCapacity)
	}

	for _, existing := range l.readings {
		if math.Abs(existing.FlowRate-reading.FlowRate) < l.tolerance {
			return fmt.Errorf("%w (%.2f L/min vs. %.2f L/min)",
				ErrDuplicateFlowRate, reading.FlowRate, existing.FlowRate)
		}
	}

	l.readings = append(l.readings, reading)
	l.renumber()

	l.logger.Debugf("recorded reading %s", reading)
	return nil
}

// Remove deletes the reading with the given identity and renumbers the
// remainder, returning ErrNotFound if no such reading exists
func (l *ReadingLog) Remove(id uuid.UUID) error {

	for i, existing := range l.readings {
		if existing.ID == id {
			l.readings = append(l.readings[:i], l.readings[i+1:]...)
			l.renumber()
			return nil
		}
	}

	return fmt.Errorf("%w (%s)", ErrNotFound, id)
}

// Clear empties the log unconditionally
func (l *ReadingLog) Clear() {
	l.readings = nil
}

// Len returns the number of recorded readings
func (l *ReadingLog) Len() int {
	return len(l.readings)
}

// Readings returns a copy of the current log contents in ascending
// flow-rate order
func (l *ReadingLog) Readings() Readings {
	out := make(Readings, len(l.readings))
	copy(out, l.readings)
	return out
}

// Rows returns the formatted export rows (excluding the header) in
// current log order
func (l *ReadingLog) Rows() [][]string {
	return l.readings.rows()
}

// WriteCSV writes the log contents in the lab-report export format
func (l *ReadingLog) WriteCSV(w io.Writer) error {
	return l.readings.WriteCSV(w)
}

// renumber reassigns serial numbers to the 1-based rank by ascending flow
// rate. Called after every mutation.
func (l *ReadingLog) renumber() {
	sort.Slice(l.readings, func(i, j int) bool {
		return l.readings[i].FlowRate < l.readings[j].FlowRate
	})
	for i := range l.readings {
		l.readings[i].SerialNumber = i + 1
	}
}

////////////////////////////////////////////////////////////////////////////////

// WriteCSV writes the readings in the lab-report export format: a fixed
// header line followed by one comma-separated row per reading
func (rs Readings) WriteCSV(w io.Writer) error {

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, row := range rs.rows() {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (rs Readings) rows() [][]string {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{
			strconv.Itoa(r.SerialNumber),
			fmt.Sprintf("%.1f", r.FlowRate),
			fmt.Sprintf("%.2f", r.Current),
			fmt.Sprintf("%.2f", r.Voltage),
			fmt.Sprintf("%.2f", r.Power),
			fmt.Sprintf("%.2f", r.Efficiency),
			fmt.Sprintf("%.1f", r.Temperature),
		})
	}
	return rows
}
