package fuelcell

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StackConfig holds the physical constants of a specific fuel cell stack.
// All voltage-loss stages read their parameters from here, so different
// stack builds are different configurations of the same model.
type StackConfig struct {
	Name string `yaml:"name"`

	Cells                int     `yaml:"cells"`                // cells in series
	RatedCurrent         float64 `yaml:"ratedCurrent"`         // A at full flow
	MaxFlowRate          float64 `yaml:"maxFlowRate"`          // L/min
	InternalCurrentLoss  float64 `yaml:"internalCurrentLoss"`  // A, crossover / internal shorts
	ActiveArea           float64 `yaml:"activeArea"`           // cm² per cell
	MembraneThickness    float64 `yaml:"membraneThickness"`    // cm
	MembraneWaterContent float64 `yaml:"membraneWaterContent"` // λ, dimensionless

	ReversibleVoltage float64 `yaml:"reversibleVoltage"` // E0, V
	EntropyChange     float64 `yaml:"entropyChange"`     // ΔS, J/(mol·K)

	PressureH2  float64 `yaml:"pressureH2"`  // atm
	PressureO2  float64 `yaml:"pressureO2"`  // atm
	PressureH2O float64 `yaml:"pressureH2O"` // atm

	// Tafel activation-loss coefficients.
	Xi1 float64 `yaml:"xi1"`
	Xi2 float64 `yaml:"xi2"`
	Xi3 float64 `yaml:"xi3"`
	Xi4 float64 `yaml:"xi4"`

	// Concentration-loss parameters.
	TransferCoefficient    float64 `yaml:"transferCoefficient"`    // α
	ElectronsPerMole       float64 `yaml:"electronsPerMole"`       // n
	LimitingCurrent        float64 `yaml:"limitingCurrent"`        // A, also over-current shutdown
	ConcentrationThreshold float64 `yaml:"concentrationThreshold"` // A, losses active above this

	CellVoltageFloor float64 `yaml:"cellVoltageFloor"` // V per cell
	ShutdownVoltage  float64 `yaml:"shutdownVoltage"`  // V, stack low-voltage shutdown

	LowerHeatingValue float64 `yaml:"lowerHeatingValue"` // J/kg of hydrogen
	HydrogenDensity   float64 `yaml:"hydrogenDensity"`   // kg/m³

	// Feed-vs-transport current limiting (compact variant). Enabled when
	// HydrogenMolarDensity is set: the operating current becomes the lower
	// of the Faraday feed current and the transport-limited current.
	HydrogenMolarDensity   float64 `yaml:"hydrogenMolarDensity"`   // mol/L
	LimitingCurrentDensity float64 `yaml:"limitingCurrentDensity"` // A/cm²
	TransportSafetyMargin  float64 `yaml:"transportSafetyMargin"`  // fraction of the transport limit
}

// PrimaryStack is the 48-cell training stack the lab bench is built
// around: 35 A rated at 13 L/min, air-fed cathode, 5-65 °C envelope.
func PrimaryStack() StackConfig {
	return StackConfig{
		Name:                 "primary-48",
		Cells:                48,
		RatedCurrent:         35,
		MaxFlowRate:          13,
		InternalCurrentLoss:  0.3,
		ActiveArea:           50.6,
		MembraneThickness:    0.0178,
		MembraneWaterContent: 23,

		ReversibleVoltage: 1.229,
		EntropyChange:     164.025,

		PressureH2:  1.0,
		PressureO2:  0.2095,
		PressureH2O: 1.0,

		Xi1: -0.948,
		Xi2: 3.12e-3,
		Xi3: 7.6e-5,
		Xi4: -1.93e-4,

		TransferCoefficient:    0.5,
		ElectronsPerMole:       2,
		LimitingCurrent:        42,
		ConcentrationThreshold: 30,

		CellVoltageFloor: 0.5,
		ShutdownVoltage:  24,

		LowerHeatingValue: 120e6,
		HydrogenDensity:   0.0899,
	}
}

// CompactStack is the 24-cell demonstrator variant (23-65 °C). Its
// operating current is limited by the lower of the hydrogen feed
// (Faraday's law) and the mass-transport ceiling of the smaller cells.
func CompactStack() StackConfig {
	return StackConfig{
		Name:                 "compact-24",
		Cells:                24,
		RatedCurrent:         18,
		MaxFlowRate:          4,
		InternalCurrentLoss:  0.2,
		ActiveArea:           25,
		MembraneThickness:    0.0127,
		MembraneWaterContent: 14,

		ReversibleVoltage: 1.229,
		EntropyChange:     164.025,

		PressureH2:  1.0,
		PressureO2:  0.2095,
		PressureH2O: 1.0,

		Xi1: -0.948,
		Xi2: 3.12e-3,
		Xi3: 7.6e-5,
		Xi4: -1.93e-4,

		TransferCoefficient:    0.5,
		ElectronsPerMole:       2,
		LimitingCurrent:        20,
		ConcentrationThreshold: 12,

		CellVoltageFloor: 0.5,
		ShutdownVoltage:  10,

		LowerHeatingValue: 120e6,
		HydrogenDensity:   0.0899,

		HydrogenMolarDensity:   0.0446,
		LimitingCurrentDensity: 0.8,
		TransportSafetyMargin:  0.9,
	}
}

// ParseStackConfig reads a stack definition from yaml data and validates it
func ParseStackConfig(data []byte) (StackConfig, error) {
	var cfg StackConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StackConfig{}, fmt.Errorf("failed to parse stack config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return StackConfig{}, err
	}
	return cfg, nil
}

// LoadStackConfig reads a stack definition from a yaml file
func LoadStackConfig(path string) (StackConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StackConfig{}, fmt.Errorf("failed to read stack config: %w", err)
	}
	return ParseStackConfig(data)
}

func (c StackConfig) validate() error {
	if c.Cells <= 0 {
		return fmt.Errorf("invalid stack config: cell count must be positive (have %d)", c.Cells)
	}
	if c.RatedCurrent <= 0 || c.MaxFlowRate <= 0 {
		return fmt.Errorf("invalid stack config: rated current and max flow rate must be positive (have %.2f A / %.2f L/min)",
			c.RatedCurrent, c.MaxFlowRate)
	}
	if c.ActiveArea <= 0 || c.MembraneThickness <= 0 {
		return fmt.Errorf("invalid stack config: membrane geometry must be positive (have %.2f cm² / %.4f cm)",
			c.ActiveArea, c.MembraneThickness)
	}
	if c.LimitingCurrent <= c.ConcentrationThreshold {
		return fmt.Errorf("invalid stack config: limiting current (%.2f A) must exceed the concentration threshold (%.2f A)",
			c.LimitingCurrent, c.ConcentrationThreshold)
	}
	if c.TransferCoefficient <= 0 || c.ElectronsPerMole <= 0 {
		return fmt.Errorf("invalid stack config: concentration-loss parameters must be positive (have α=%.2f, n=%.2f)",
			c.TransferCoefficient, c.ElectronsPerMole)
	}
	if c.LowerHeatingValue <= 0 || c.HydrogenDensity <= 0 {
		return fmt.Errorf("invalid stack config: hydrogen energy content must be positive (have %.3g J/kg, %.4f kg/m³)",
			c.LowerHeatingValue, c.HydrogenDensity)
	}
	return nil
}
