package fuelcell

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

const (
	gasConstant     = 8.314   // J/(mol·K)
	faradayConstant = 96485.0 // C/mol

	referenceTemperature  = 298.15 // K
	membraneReferenceTemp = 303.0  // K, empirical membrane correlation anchor
)

// Model computes the steady-state electrical behavior of a PEM fuel cell
// stack from hydrogen flow rate and temperature. It holds no mutable
// state; a single instance may be shared freely.
type Model struct {
	cfg    StackConfig
	logger Logger
}

// New instantiates a new Model, executing functional options, if any. The
// default configuration is the primary 48-cell training stack.
func New(options ...func(*Model)) *Model {

	// Initialize a new instance of a Model
	m := &Model{
		cfg:    PrimaryStack(),
		logger: &NullLogger{},
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(m)
	}

	return m
}

// Config returns the physical constants of the modeled stack
func (m *Model) Config() StackConfig {
	return m.cfg
}

// Evaluate computes the stack operating point for a hydrogen flow rate
// (L/min) and a stack temperature (K). Values outside the nominal lab
// envelope extrapolate rather than fail; the only hard error is an
// operating current at or above the limiting current, which leaves the
// concentration-loss log domain and is surfaced as a *DomainError.
func (m *Model) Evaluate(flowRate, temperature float64) (Reading, error) {

	iExt := m.externalCurrent(flowRate)
	iTotal := iExt + m.cfg.InternalCurrentLoss

	if iTotal >= m.cfg.LimitingCurrent {
		return Reading{}, &DomainError{
			FlowRate:    flowRate,
			Temperature: temperature,
			Current:     iTotal,
			Wrapped:     ErrCurrentExceedsLimit,
		}
	}

	cellVoltage := m.nernstVoltage(temperature) -
		math.Abs(m.activationLoss(iTotal, temperature)) -
		m.ohmicLoss(iTotal, temperature) -
		m.concentrationLoss(iTotal, temperature)
	cellVoltage = math.Max(cellVoltage, m.cfg.CellVoltageFloor)

	stackVoltage := math.Max(cellVoltage*float64(m.cfg.Cells), m.cfg.ShutdownVoltage)

	// Round at the boundary; power is derived from the rounded values so
	// that power == voltage * current holds on the stored reading.
	voltage := round2(stackVoltage)
	current := round2(iExt)
	power := round2(voltage * current)

	return Reading{
		ID:          uuid.New(),
		FlowRate:    flowRate,
		Temperature: KelvinToCelsius(temperature),
		Voltage:     voltage,
		Current:     current,
		Power:       power,
		Efficiency:  round2(m.efficiency(flowRate, power)),
	}, nil
}

// Sweep evaluates the model at flow rates 0, step, 2·step, ... up to
// targetFlow (inclusive) at a fixed temperature (K), numbering the
// resulting readings densely from 1. The readings are suitable for
// polarization plotting or direct CSV export.
func (m *Model) Sweep(targetFlow, step, temperature float64) (Readings, error) {

	if step <= 0 || targetFlow < 0 {
		return nil, fmt.Errorf("invalid sweep parameters (target %.2f L/min, step %.2f L/min)", targetFlow, step)
	}

	var readings Readings
	for flow := 0.0; flow <= targetFlow+step/2; flow += step {
		reading, err := m.Evaluate(flow, temperature)
		if err != nil {
			return nil, err
		}
		reading.SerialNumber = len(readings) + 1
		readings = append(readings, reading)
	}

	return readings, nil
}

////////////////////////////////////////////////////////////////////////////////

// externalCurrent maps the hydrogen feed to the load current. The primary
// stack scales linearly with flow against its rated current; a stack with
// feed limiting enabled instead draws the lower of the Faraday feed
// current and the mass-transport ceiling.
func (m *Model) externalCurrent(flowRate float64) float64 {

	if m.cfg.HydrogenMolarDensity > 0 {
		feed := flowRate / 60.0 * m.cfg.HydrogenMolarDensity *
			m.cfg.ElectronsPerMole * faradayConstant / float64(m.cfg.Cells)
		transport := m.cfg.LimitingCurrentDensity * m.cfg.ActiveArea * m.cfg.TransportSafetyMargin
		return math.Min(feed, transport)
	}

	return flowRate / m.cfg.MaxFlowRate * m.cfg.RatedCurrent
}

// nernstVoltage is the open-circuit cell voltage with reactant-pressure
// and entropy corrections
func (m *Model) nernstVoltage(temperature float64) float64 {
	pressureTerm := gasConstant * temperature / (2 * faradayConstant) *
		math.Log(m.cfg.PressureH2*math.Sqrt(m.cfg.PressureO2)/m.cfg.PressureH2O)
	entropyTerm := m.cfg.EntropyChange / (2 * faradayConstant) * (temperature - referenceTemperature)

	return m.cfg.ReversibleVoltage + pressureTerm - entropyTerm
}

// activationLoss is the Tafel overpotential. ln(I) is undefined at zero
// current, so the loss vanishes there.
func (m *Model) activationLoss(current, temperature float64) float64 {
	if current <= 0 {
		return 0
	}

	oxygenConc := m.cfg.PressureO2 / (5.08e6 * math.Exp(-498/temperature))

	return m.cfg.Xi1 +
		m.cfg.Xi2*temperature +
		m.cfg.Xi3*temperature*math.Log(oxygenConc) +
		m.cfg.Xi4*temperature*math.Log(current)
}

// ohmicLoss is the resistive drop across the membrane, using the
// empirical Nafion conductivity correlation
func (m *Model) ohmicLoss(current, temperature float64) float64 {

	j := current / m.cfg.ActiveArea
	tempRatio := temperature / membraneReferenceTemp

	numerator := 181.6 * (1 + 0.03*j + 0.062*tempRatio*tempRatio*math.Pow(j, 2.5))
	denominator := (m.cfg.MembraneWaterContent - 0.634 - 3*j) *
		math.Exp(4.18*(temperature-membraneReferenceTemp)/membraneReferenceTemp)

	// The correlation breaks down for dry membranes or extreme current
	// density. The resulting resistance can be huge or negative; report it
	// and let the voltage floor absorb the fallout.
	if denominator <= 0 {
		m.logger.Warnf("membrane resistance correlation out of range (λ=%.1f, j=%.3f A/cm²)",
			m.cfg.MembraneWaterContent, j)
	}

	resistance := m.cfg.MembraneThickness / m.cfg.ActiveArea * numerator / denominator

	return resistance * current
}

// concentrationLoss is the mass-transport overpotential, active only once
// the current exceeds the configured threshold. Callers guarantee
// current < LimitingCurrent (checked in Evaluate).
func (m *Model) concentrationLoss(current, temperature float64) float64 {
	if current <= m.cfg.ConcentrationThreshold {
		return 0
	}

	return (1 + 1/m.cfg.TransferCoefficient) *
		gasConstant * temperature / (m.cfg.ElectronsPerMole * faradayConstant) *
		math.Log(m.cfg.LimitingCurrent/(m.cfg.LimitingCurrent-current))
}

// efficiency relates electrical output power to the chemical input power
// of the hydrogen feed, clamped to the physical ceiling of this stack
// class
func (m *Model) efficiency(flowRate, power float64) float64 {
	if power <= 0 {
		return 0
	}

	// L/min -> m³/s -> kg/s -> W
	inputPower := flowRate / 60000 * m.cfg.HydrogenDensity * m.cfg.LowerHeatingValue

	eff := power / inputPower * 100
	if eff < 0 {
		return 0
	}
	if eff > 50 {
		return 50
	}
	return eff
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
