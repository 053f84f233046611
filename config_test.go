package fuelcell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinStacksValid(t *testing.T) {
	assert.NoError(t, PrimaryStack().validate())
	assert.NoError(t, CompactStack().validate())
}

func TestParseStackConfig(t *testing.T) {
	data := []byte(`
name: bench-12
cells: 12
ratedCurrent: 10
maxFlowRate: 3
internalCurrentLoss: 0.1
activeArea: 20
membraneThickness: 0.0127
membraneWaterContent: 14
reversibleVoltage: 1.229
entropyChange: 164.025
pressureH2: 1.0
pressureO2: 0.2095
pressureH2O: 1.0
xi1: -0.948
xi2: 0.00312
xi3: 0.000076
xi4: -0.000193
transferCoefficient: 0.5
electronsPerMole: 2
limitingCurrent: 12
concentrationThreshold: 8
cellVoltageFloor: 0.5
shutdownVoltage: 5
lowerHeatingValue: 120e6
hydrogenDensity: 0.0899
`)

	cfg, err := ParseStackConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "bench-12", cfg.Name)
	assert.Equal(t, 12, cfg.Cells)
	assert.InDelta(t, 10.0, cfg.RatedCurrent, 1e-9)
	assert.InDelta(t, 0.2095, cfg.PressureO2, 1e-9)
	assert.InDelta(t, 120e6, cfg.LowerHeatingValue, 1e-3)

	// A custom stack must drive the model like a built-in one.
	r, evalErr := New(WithConfig(cfg)).Evaluate(1.5, 303.15)
	require.NoError(t, evalErr)
	assert.InDelta(t, 5.0, r.Current, 0.01)
}

func TestParseStackConfigRejectsInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"malformed yaml":        "cells: [",
		"zero cells":            "cells: 0",
		"negative flow":         "cells: 4\nratedCurrent: 10\nmaxFlowRate: -1",
		"limit below threshold": "cells: 4\nratedCurrent: 10\nmaxFlowRate: 3\nactiveArea: 20\nmembraneThickness: 0.01\nlimitingCurrent: 5\nconcentrationThreshold: 8",
	} {
		_, err := ParseStackConfig([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestLoadStackConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.yaml")

	data, err := os.ReadFile(path)
	assert.Error(t, err, "missing file must fail")
	assert.Nil(t, data)

	_, err = LoadStackConfig(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`
cells: 24
ratedCurrent: 18
maxFlowRate: 4
activeArea: 25
membraneThickness: 0.0127
membraneWaterContent: 14
reversibleVoltage: 1.229
entropyChange: 164.025
pressureH2: 1.0
pressureO2: 0.2095
pressureH2O: 1.0
transferCoefficient: 0.5
electronsPerMole: 2
limitingCurrent: 20
concentrationThreshold: 12
cellVoltageFloor: 0.5
shutdownVoltage: 10
lowerHeatingValue: 120e6
hydrogenDensity: 0.0899
`), 0644))

	cfg, err := LoadStackConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Cells)
	assert.InDelta(t, 20.0, cfg.LimitingCurrent, 1e-9)
}
