package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlight_BoardingStartTime_TwoTicksBeforeDeparture(t *testing.T) {
	f := &Flight{Number: "PS101", DepartureTime: 8}
	assert.Equal(t, int64(6), f.BoardingStartTime())
}

func TestFlight_InBoardingWindow_HalfOpen(t *testing.T) {
	f := &Flight{Number: "PS101", DepartureTime: 8}
	tests := []struct {
		now  int64
		want bool
	}{
		{5, false},
		{6, true},
		{7, true},
		{8, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.inBoardingWindow(tt.now), "tick %d", tt.now)
	}
}

func TestFlight_AdvanceStatus_Forward(t *testing.T) {
	f := &Flight{Number: "PS101"}
	f.advanceStatus(StatusBoarding)
	f.advanceStatus(StatusDeparted)
	assert.Equal(t, StatusDeparted, f.Status)
}

func TestFlight_AdvanceStatus_RegressionPanics(t *testing.T) {
	f := &Flight{Number: "PS101", Status: StatusDeparted}
	assert.Panics(t, func() { f.advanceStatus(StatusBoarding) })
	assert.Panics(t, func() { f.advanceStatus(StatusDeparted) })
}

func TestFlight_Board_StopsAtCapacity(t *testing.T) {
	f := &Flight{Number: "PS101", Capacity: 1}
	p := &Passenger{Name: "A", FlightNumber: "PS101", HasTicket: true, PassedSecurity: true}

	f.board(p)

	assert.True(t, p.IsOnBoard)
	assert.True(t, f.Full())
	assert.Panics(t, func() { f.board(&Passenger{Name: "B"}) })
}

func TestFlight_ZeroCapacity_AlwaysFull(t *testing.T) {
	assert.True(t, (&Flight{Capacity: 0}).Full())
}

func TestFlightStatus_String(t *testing.T) {
	assert.Equal(t, "OnTime", StatusOnTime.String())
	assert.Equal(t, "Delayed", StatusDelayed.String())
	assert.Equal(t, "Boarding", StatusBoarding.String())
	assert.Equal(t, "Departed", StatusDeparted.String())
	assert.Equal(t, "FlightStatus(9)", FlightStatus(9).String())
}

func TestFlight_String(t *testing.T) {
	f := Flight{Number: "PS202", Destination: "Lviv", DepartureTime: 10, Capacity: 4, Status: StatusBoarding}
	assert.Equal(t, "Flight PS202 -> Lviv | Boarding | Dep @ 10 | OnBoard 0/4", f.String())
}
