package sim

import (
	"cmp"
	"slices"

	"github.com/brunoga/deep"
)

// Snapshot is a post-tick view of the world for renderers. It never aliases
// simulator state.
type Snapshot struct {
	Tick                 int64
	Flights              []Flight // active flights, ordered by departure time
	RegistrationQueueLen int
	SecurityQueueLen     int
	WaitingAtGate        int
}

// TickResult is what Advance produces: the tick's ordered event log and the
// world as it stands after the tick.
type TickResult struct {
	Tick     int64
	Events   []Event
	Snapshot Snapshot
}

// Lines renders the event log as ordered strings.
func (r TickResult) Lines() []string {
	lines := make([]string, len(r.Events))
	for i, e := range r.Events {
		lines[i] = e.String()
	}
	return lines
}

// Snapshot captures the current world state.
func (sim *Simulator) Snapshot() Snapshot {
	return Snapshot{
		Tick:                 sim.Clock,
		Flights:              sim.Flights(),
		RegistrationQueueLen: sim.RegistrationQ.Len(),
		SecurityQueueLen:     sim.SecurityQ.Len(),
		WaitingAtGate:        sim.WaitingAtGate(),
	}
}

// Flights returns deep copies of the active flights ordered by departure
// time; flights departing on the same tick keep their insertion order.
func (sim *Simulator) Flights() []Flight {
	flights := make([]Flight, len(sim.flights))
	for i, f := range sim.flights {
		flights[i] = *f
	}
	flights = deep.MustCopy(flights)
	slices.SortStableFunc(flights, func(a, b Flight) int {
		return cmp.Compare(a.DepartureTime, b.DepartureTime)
	})
	return flights
}

// Flight returns a deep copy of the active flight with the given number.
func (sim *Simulator) Flight(number string) (Flight, bool) {
	f, ok := sim.flightsByNumber[number]
	if !ok {
		return Flight{}, false
	}
	return deep.MustCopy(*f), true
}
