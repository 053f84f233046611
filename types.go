package fuelcell

import (
	"fmt"

	"github.com/google/uuid"
)

// Reading denotes the electrical operating point of the stack at a single
// hydrogen flow rate and temperature
type Reading struct {
	// ID is the stable identity of the reading, used for structural log
	// operations such as removal. It never changes once the reading exists.
	ID uuid.UUID

	// SerialNumber is the 1-based rank of the reading by ascending flow
	// rate within its containing log or sweep. It is recomputed on every
	// mutation and is display-only, never an identity.
	SerialNumber int

	FlowRate    float64 // hydrogen flow rate, L/min
	Temperature float64 // stack temperature, °C
	Voltage     float64 // stack voltage, V
	Current     float64 // external (load) current, A
	Power       float64 // W
	Efficiency  float64 // %
}

// String fulfils the Stringer interface
func (r Reading) String() string {
	return fmt.Sprintf("%.1f L/min @ %.1f°C: %.2f V, %.2f A, %.2f W, %.2f %%",
		r.FlowRate, r.Temperature, r.Voltage, r.Current, r.Power, r.Efficiency)
}

// Readings denotes an ordered set of readings (usually one sweep or the
// current contents of a ReadingLog)
type Readings []Reading

// CelsiusToKelvin converts a control-surface temperature to the kelvin
// scale the model computes in
func CelsiusToKelvin(c float64) float64 {
	return c + 273.15
}

// KelvinToCelsius converts a model temperature back to the display scale
func KelvinToCelsius(k float64) float64 {
	return k - 273.15
}
