package sim

import "fmt"

// FlightStatus is the closed set of states a flight moves through.
// Values are ordered; a flight's status may only increase.
type FlightStatus uint8

const (
	StatusOnTime FlightStatus = iota
	// StatusDelayed is part of the status model but no stage produces it yet.
	StatusDelayed
	StatusBoarding
	StatusDeparted
)

func (s FlightStatus) String() string {
	switch s {
	case StatusOnTime:
		return "OnTime"
	case StatusDelayed:
		return "Delayed"
	case StatusBoarding:
		return "Boarding"
	case StatusDeparted:
		return "Departed"
	}
	return fmt.Sprintf("FlightStatus(%d)", uint8(s))
}

// boardingLeadTicks is how many ticks before departure the gate opens.
const boardingLeadTicks = 2

// Flight is a scheduled departure with a bounded passenger roster.
type Flight struct {
	Number        string
	Destination   string
	DepartureTime int64 // tick
	Status        FlightStatus
	Capacity      int

	// PassengersOnBoard is kept in boarding order; len never exceeds Capacity.
	PassengersOnBoard []*Passenger
}

// BoardingStartTime is the first tick of the boarding window
// [BoardingStartTime, DepartureTime).
func (f *Flight) BoardingStartTime() int64 {
	return f.DepartureTime - boardingLeadTicks
}

// Full reports whether the roster has reached capacity.
func (f *Flight) Full() bool {
	return len(f.PassengersOnBoard) >= f.Capacity
}

// inBoardingWindow reports whether now falls in [BoardingStartTime, DepartureTime).
func (f *Flight) inBoardingWindow(now int64) bool {
	return now >= f.BoardingStartTime() && now < f.DepartureTime
}

// advanceStatus moves the flight forward. Regressing or repeating a status is
// a programming error.
func (f *Flight) advanceStatus(next FlightStatus) {
	if next <= f.Status {
		panic(fmt.Sprintf("flight %s: illegal status transition %s -> %s", f.Number, f.Status, next))
	}
	f.Status = next
}

// board appends p to the roster. Callers must check Full first.
func (f *Flight) board(p *Passenger) {
	if f.Full() {
		panic(fmt.Sprintf("flight %s: boarding beyond capacity %d", f.Number, f.Capacity))
	}
	p.IsOnBoard = true
	f.PassengersOnBoard = append(f.PassengersOnBoard, p)
}

func (f Flight) String() string {
	return fmt.Sprintf("Flight %s -> %s | %s | Dep @ %d | OnBoard %d/%d",
		f.Number, f.Destination, f.Status, f.DepartureTime, len(f.PassengersOnBoard), f.Capacity)
}
