package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Ticks                 int
	TotalEvents           int
	EventsByKind          map[string]int // event kind → count
	PeakRegistrationQueue int
	PeakSecurityQueue     int
	PeakWaitingAtGate     int
	BusiestTick           int64 // tick with the most events; 0 if none
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		EventsByKind: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.Ticks = len(st.Ticks)
	busiest := 0
	for _, t := range st.Ticks {
		summary.TotalEvents += len(t.Events)
		for _, e := range t.Events {
			summary.EventsByKind[e.Kind]++
		}
		if len(t.Events) > busiest {
			busiest = len(t.Events)
			summary.BusiestTick = t.Tick
		}
		summary.PeakRegistrationQueue = max(summary.PeakRegistrationQueue, t.RegistrationQueue)
		summary.PeakSecurityQueue = max(summary.PeakSecurityQueue, t.SecurityQueue)
		summary.PeakWaitingAtGate = max(summary.PeakWaitingAtGate, t.WaitingAtGate)
	}

	return summary
}
