package sim

import "fmt"

// EventKind identifies what happened in a tick.
type EventKind string

const (
	EventPassengerArrived     EventKind = "passenger_arrived"
	EventRegistered           EventKind = "registered"
	EventRegistrationRejected EventKind = "registration_rejected"
	EventScreened             EventKind = "screened"
	EventBoardingStarted      EventKind = "boarding_started"
	EventBoarded              EventKind = "boarded"
	EventMissedFlight         EventKind = "missed_flight"
	EventFlightDeparted       EventKind = "flight_departed"
)

// Event is one entry in a tick's ordered event log.
// Passenger is empty for flight-level events; OnBoard and Capacity are only
// set on EventFlightDeparted.
type Event struct {
	Tick        int64
	Kind        EventKind
	Passenger   string
	Flight      string
	Destination string
	OnBoard     int
	Capacity    int
}

// String renders the event as a single human-readable log line.
func (e Event) String() string {
	switch e.Kind {
	case EventPassengerArrived:
		return fmt.Sprintf("New passenger: %s -> flight %s. Added to the registration queue.", e.Passenger, e.Flight)
	case EventRegistered:
		return fmt.Sprintf("%s registered for flight %s and moved on to security.", e.Passenger, e.Flight)
	case EventRegistrationRejected:
		return fmt.Sprintf("%s: flight %s does not exist, passenger is waiting for redirection.", e.Passenger, e.Flight)
	case EventScreened:
		return fmt.Sprintf("%s passed security.", e.Passenger)
	case EventBoardingStarted:
		return fmt.Sprintf("Boarding started for flight %s to %s.", e.Flight, e.Destination)
	case EventBoarded:
		return fmt.Sprintf("%s boarded flight %s.", e.Passenger, e.Flight)
	case EventMissedFlight:
		return fmt.Sprintf("Passenger %s missed flight %s!", e.Passenger, e.Flight)
	case EventFlightDeparted:
		return fmt.Sprintf("Flight %s departed to %s. On board: %d/%d.", e.Flight, e.Destination, e.OnBoard, e.Capacity)
	}
	return fmt.Sprintf("%s: %s %s", e.Kind, e.Passenger, e.Flight)
}

// eventLog accumulates a single tick's events in emission order.
type eventLog struct {
	tick   int64
	events []Event
}

func (l *eventLog) add(e Event) {
	e.Tick = l.tick
	l.events = append(l.events, e)
}
