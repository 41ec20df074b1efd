// Implements the PassengerQueue used for both the registration and the
// security lines. Passengers are served strictly first-come-first-served.

package sim

import (
	"fmt"
	"strings"
)

// PassengerQueue is a FIFO line of passengers waiting at a desk or checkpoint.
type PassengerQueue struct {
	queue []*Passenger
}

// Enqueue adds a passenger to the back of the line.
func (pq *PassengerQueue) Enqueue(p *Passenger) {
	if p == nil {
		panic("Enqueue: passenger must not be nil")
	}
	pq.queue = append(pq.queue, p)
}

// Dequeue removes and returns the passenger at the front of the line.
// Returns nil if the line is empty.
func (pq *PassengerQueue) Dequeue() *Passenger {
	if len(pq.queue) == 0 {
		return nil
	}
	p := pq.queue[0]
	pq.queue[0] = nil
	pq.queue = pq.queue[1:]
	return p
}

// Peek returns the passenger at the front without removing it.
// Returns nil if the line is empty.
func (pq *PassengerQueue) Peek() *Passenger {
	if len(pq.queue) == 0 {
		return nil
	}
	return pq.queue[0]
}

// Len returns the number of passengers in line.
func (pq *PassengerQueue) Len() int {
	return len(pq.queue)
}

// Items returns the line contents front to back.
// The returned slice is the queue's internal storage; callers MUST NOT
// append to or reslice it.
func (pq *PassengerQueue) Items() []*Passenger {
	return pq.queue
}

// Filter keeps only the passengers for which keep returns true.
// The relative order of the kept passengers is preserved.
// Returns the number of passengers removed.
func (pq *PassengerQueue) Filter(keep func(*Passenger) bool) int {
	kept := pq.queue[:0]
	for _, p := range pq.queue {
		if keep(p) {
			kept = append(kept, p)
		}
	}
	removed := len(pq.queue) - len(kept)
	for i := len(kept); i < len(pq.queue); i++ {
		pq.queue[i] = nil
	}
	pq.queue = kept
	return removed
}

func (pq *PassengerQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range pq.queue {
		sb.WriteString(fmt.Sprint(p.Name))
		if i < len(pq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
