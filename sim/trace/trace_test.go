package trace

import (
	"testing"
)

func TestSimulationTrace_RecordTick_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for full records
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelFull})

	// WHEN a tick record is recorded
	st.RecordTick(TickRecord{
		Tick:    3,
		Events:  []EventRecord{{Kind: "screened", Passenger: "Anna Koval #1", Flight: "PS101"}},
		Flights: []FlightRecord{{Number: "PS101", Status: "OnTime", Capacity: 6}},
	})

	// THEN the trace contains one record with its flights intact
	if len(st.Ticks) != 1 {
		t.Fatalf("expected 1 tick, got %d", len(st.Ticks))
	}
	if st.Ticks[0].Tick != 3 {
		t.Errorf("expected tick 3, got %d", st.Ticks[0].Tick)
	}
	if len(st.Ticks[0].Flights) != 1 {
		t.Errorf("expected flights kept at full level, got %d", len(st.Ticks[0].Flights))
	}
}

func TestSimulationTrace_EventsLevel_DropsFlights(t *testing.T) {
	// GIVEN a trace configured for events only
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})

	// WHEN a record carrying flights is recorded
	st.RecordTick(TickRecord{Tick: 1, Flights: []FlightRecord{{Number: "PS101"}}})

	// THEN the flight state is trimmed
	if len(st.Ticks) != 1 {
		t.Fatalf("expected 1 tick, got %d", len(st.Ticks))
	}
	if st.Ticks[0].Flights != nil {
		t.Errorf("expected nil flights at events level, got %v", st.Ticks[0].Flights)
	}
}

func TestSimulationTrace_NoneLevel_RecordsNothing(t *testing.T) {
	for _, level := range []TraceLevel{TraceLevelNone, ""} {
		st := NewSimulationTrace(TraceConfig{Level: level})
		st.RecordTick(TickRecord{Tick: 1})
		if len(st.Ticks) != 0 {
			t.Errorf("level %q: expected no records, got %d", level, len(st.Ticks))
		}
		if st.Config.Enabled() {
			t.Errorf("level %q: expected Enabled() = false", level)
		}
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})

	st.RecordTick(TickRecord{Tick: 1})
	st.RecordTick(TickRecord{Tick: 2})
	st.RecordTick(TickRecord{Tick: 3})

	for i, rec := range st.Ticks {
		if rec.Tick != int64(i+1) {
			t.Errorf("record %d: expected tick %d, got %d", i, i+1, rec.Tick)
		}
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"events", true},
		{"full", true},
		{"", true},
		{"decisions", false},
		{"FULL", false},
	}
	for _, tt := range tests {
		if got := IsValidTraceLevel(tt.level); got != tt.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
		}
	}
}
