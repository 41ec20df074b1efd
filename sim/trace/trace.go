package trace

// TraceLevel controls the verbosity of tick tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures event logs and queue depths.
	TraceLevelEvents TraceLevel = "events"
	// TraceLevelFull additionally captures every active flight per tick.
	TraceLevelFull TraceLevel = "full"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	TraceLevelFull:   true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel `msgpack:"level"`
	Seed  int64      `msgpack:"seed"`
}

// Enabled reports whether any records are kept.
func (c TraceConfig) Enabled() bool {
	return c.Level != TraceLevelNone && c.Level != ""
}

// SimulationTrace collects tick records during a simulation run.
type SimulationTrace struct {
	Config TraceConfig  `msgpack:"config"`
	Ticks  []TickRecord `msgpack:"ticks"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Ticks:  make([]TickRecord, 0),
	}
}

// RecordTick appends a tick record, trimmed to the configured level.
func (st *SimulationTrace) RecordTick(record TickRecord) {
	switch st.Config.Level {
	case TraceLevelFull:
	case TraceLevelEvents:
		record.Flights = nil
	default:
		return
	}
	st.Ticks = append(st.Ticks, record)
}
