package fuelcell

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantHeader = "S.No.,Hydrogen Flow Rate (L/min),Current (A),Voltage (V),Power (W),Efficiency (%),Temperature (°C)"

func record(t *testing.T, m *Model, l *ReadingLog, flow float64) Reading {
	t.Helper()

	r, err := m.Evaluate(flow, 303.15)
	require.NoError(t, err)
	require.NoError(t, l.Add(r))
	return r
}

func TestAddKeepsOrderAndSerials(t *testing.T) {
	m, l := New(), NewReadingLog()

	for _, flow := range []float64{9, 1, 5, 13, 3} {
		record(t, m, l, flow)
	}

	readings := l.Readings()
	require.Len(t, readings, 5)

	wantFlows := []float64{1, 3, 5, 9, 13}
	for i, r := range readings {
		assert.Equal(t, i+1, r.SerialNumber)
		assert.InDelta(t, wantFlows[i], r.FlowRate, 1e-9)
	}
}

func TestAddRejectsWhenFull(t *testing.T) {
	m, l := New(), NewReadingLog()

	for _, flow := range []float64{1, 3, 5, 7, 9, 11, 13} {
		record(t, m, l, flow)
	}
	before := l.Readings()

	extra, err := m.Evaluate(2, 303.15)
	require.NoError(t, err)
	err = l.Add(extra)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	assert.Equal(t, before, l.Readings(), "rejected add must not change the log")
}

func TestAddRejectsDuplicateFlowRate(t *testing.T) {
	m, l := New(), NewReadingLog()

	record(t, m, l, 5.0)

	near, err := m.Evaluate(5.05, 303.15)
	require.NoError(t, err)
	assert.ErrorIs(t, l.Add(near), ErrDuplicateFlowRate)
	assert.Equal(t, 1, l.Len())

	apart, err := m.Evaluate(5.2, 303.15)
	require.NoError(t, err)
	assert.NoError(t, l.Add(apart))
	assert.Equal(t, 2, l.Len())
}

func TestRemoveRenumbers(t *testing.T) {
	m, l := New(), NewReadingLog()

	record(t, m, l, 1)
	middle := record(t, m, l, 5)
	record(t, m, l, 9)

	require.NoError(t, l.Remove(middle.ID))

	readings := l.Readings()
	require.Len(t, readings, 2)
	assert.Equal(t, 1, readings[0].SerialNumber)
	assert.InDelta(t, 1.0, readings[0].FlowRate, 1e-9)
	assert.Equal(t, 2, readings[1].SerialNumber)
	assert.InDelta(t, 9.0, readings[1].FlowRate, 1e-9)
}

func TestRemoveUnknownID(t *testing.T) {
	m, l := New(), NewReadingLog()
	record(t, m, l, 5)

	err := l.Remove(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, l.Len(), "failed remove must not change the log")
}

func TestClear(t *testing.T) {
	m, l := New(), NewReadingLog()
	record(t, m, l, 1)
	record(t, m, l, 5)

	l.Clear()
	assert.Zero(t, l.Len())

	var buf bytes.Buffer
	require.NoError(t, l.WriteCSV(&buf))
	assert.Equal(t, wantHeader+"\n", buf.String(), "empty log still exports the header line")
}

func TestCustomCapacityAndTolerance(t *testing.T) {
	m := New()
	l := NewReadingLog(WithCapacity(2), WithFlowRateTolerance(1.0))

	record(t, m, l, 1)

	near, err := m.Evaluate(1.8, 303.15)
	require.NoError(t, err)
	assert.ErrorIs(t, l.Add(near), ErrDuplicateFlowRate)

	record(t, m, l, 5)

	third, err := m.Evaluate(9, 303.15)
	require.NoError(t, err)
	assert.ErrorIs(t, l.Add(third), ErrCapacityExceeded)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	m, l := New(), NewReadingLog()

	for _, flow := range []float64{2.5, 7, 11.5} {
		record(t, m, l, flow)
	}

	var buf bytes.Buffer
	require.NoError(t, l.WriteCSV(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, l.Len()+1, "one header line plus one row per reading")
	assert.Equal(t, wantHeader, lines[0])

	readings := l.Readings()
	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 7)

		serial, err := strconv.Atoi(fields[0])
		require.NoError(t, err)
		assert.Equal(t, readings[i].SerialNumber, serial)

		for col, want := range map[int]float64{
			1: readings[i].FlowRate,
			2: readings[i].Current,
			3: readings[i].Voltage,
			4: readings[i].Power,
			5: readings[i].Efficiency,
			6: readings[i].Temperature,
		} {
			got, err := strconv.ParseFloat(fields[col], 64)
			require.NoError(t, err)

			// Flow rate and temperature export with one decimal, the
			// electrical columns with two.
			delta := 0.005
			if col == 1 || col == 6 {
				delta = 0.05
			}
			assert.InDelta(t, want, got, delta, "column %d", col)
		}
	}
}

func TestRowsMatchLogOrder(t *testing.T) {
	m, l := New(), NewReadingLog()
	record(t, m, l, 9)
	record(t, m, l, 3)

	rows := l.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "3.0", rows[0][1])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "9.0", rows[1][1])
}
