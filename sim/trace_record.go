package sim

import "github.com/airport-sim/airport-sim/sim/trace"

// TraceRecord converts the tick result into a trace.TickRecord with flight
// state included; SimulationTrace.RecordTick trims it to the trace level.
func (r TickResult) TraceRecord() trace.TickRecord {
	events := make([]trace.EventRecord, len(r.Events))
	for i, e := range r.Events {
		events[i] = trace.EventRecord{
			Kind:      string(e.Kind),
			Passenger: e.Passenger,
			Flight:    e.Flight,
			Message:   e.String(),
		}
	}
	flights := make([]trace.FlightRecord, len(r.Snapshot.Flights))
	for i, f := range r.Snapshot.Flights {
		flights[i] = trace.FlightRecord{
			Number:        f.Number,
			Destination:   f.Destination,
			Status:        f.Status.String(),
			DepartureTime: f.DepartureTime,
			OnBoard:       len(f.PassengersOnBoard),
			Capacity:      f.Capacity,
		}
	}
	return trace.TickRecord{
		Tick:              r.Tick,
		Events:            events,
		Flights:           flights,
		RegistrationQueue: r.Snapshot.RegistrationQueueLen,
		SecurityQueue:     r.Snapshot.SecurityQueueLen,
		WaitingAtGate:     r.Snapshot.WaitingAtGate,
	}
}
