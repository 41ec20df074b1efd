package sim

import (
	"fmt"

	"github.com/google/uuid"
)

// Passenger models a single traveller's progress through the airport.
//
// Progress is carried by three flags that only ever flip from false to true,
// in order: HasTicket (registration), PassedSecurity (screening), IsOnBoard
// (boarding). A passenger with no flags set is unregistered.
type Passenger struct {
	ID           uuid.UUID // drawn from the seeded id stream
	Name         string    // unique display label
	FlightNumber string    // key into the simulator's active flights
	ArrivalTick  int64     // tick on which the passenger entered the world

	HasTicket      bool
	PassedSecurity bool
	IsOnBoard      bool
}

// Cleared reports whether the passenger holds a ticket and has been screened.
func (p *Passenger) Cleared() bool {
	return p.HasTicket && p.PassedSecurity
}

// canBoard reports whether p may board the given flight right now.
func (p *Passenger) canBoard(flightNumber string) bool {
	return p.FlightNumber == flightNumber && p.Cleared() && !p.IsOnBoard
}

func (p Passenger) String() string {
	return fmt.Sprintf("Passenger: (Name: %s, Flight: %s, Ticket: %t, Security: %t, OnBoard: %t)",
		p.Name, p.FlightNumber, p.HasTicket, p.PassedSecurity, p.IsOnBoard)
}
