// Package trace provides per-tick trace recording for offline analysis of a run.
// It has no dependency on sim/ and stores only plain data types.
package trace

// EventRecord captures a single event from a tick's event log.
type EventRecord struct {
	Kind      string `msgpack:"kind"`
	Passenger string `msgpack:"passenger,omitempty"`
	Flight    string `msgpack:"flight,omitempty"`
	Message   string `msgpack:"message"`
}

// FlightRecord captures one active flight's state at the end of a tick.
type FlightRecord struct {
	Number        string `msgpack:"number"`
	Destination   string `msgpack:"destination"`
	Status        string `msgpack:"status"`
	DepartureTime int64  `msgpack:"departure_time"`
	OnBoard       int    `msgpack:"on_board"`
	Capacity      int    `msgpack:"capacity"`
}

// TickRecord captures everything observable about one tick.
type TickRecord struct {
	Tick              int64          `msgpack:"tick"`
	Events            []EventRecord  `msgpack:"events"`
	Flights           []FlightRecord `msgpack:"flights,omitempty"` // nil at TraceLevelEvents
	RegistrationQueue int            `msgpack:"registration_queue"`
	SecurityQueue     int            `msgpack:"security_queue"`
	WaitingAtGate     int            `msgpack:"waiting_at_gate"`
}
