package fuelcell

// WithConfig sets the physical constants of the modeled stack
func WithConfig(cfg StackConfig) func(*Model) {
	return func(m *Model) {
		m.cfg = cfg
	}
}

// WithLogger sets a logger on the model
func WithLogger(logger Logger) func(*Model) {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithCapacity sets the maximum number of readings the log holds
func WithCapacity(n int) func(*ReadingLog) {
	return func(l *ReadingLog) {
		l.maxCapacity = n
	}
}

// WithFlowRateTolerance sets the flow-rate distance (L/min) below which
// two readings count as duplicates
func WithFlowRateTolerance(tolerance float64) func(*ReadingLog) {
	return func(l *ReadingLog) {
		l.tolerance = tolerance
	}
}

// WithLogLogger sets a logger on the reading log
func WithLogLogger(logger Logger) func(*ReadingLog) {
	return func(l *ReadingLog) {
		l.logger = logger
	}
}
