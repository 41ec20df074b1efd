package sim

import (
	"testing"
)

func TestPassengerQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with passengers [A, B]
	pq := &PassengerQueue{}
	pA := &Passenger{Name: "A"}
	pB := &Passenger{Name: "B"}
	pq.Enqueue(pA)
	pq.Enqueue(pB)

	// WHEN Peek() is called
	got := pq.Peek()

	// THEN it returns the front element without removing it
	if got != pA {
		t.Errorf("Peek: got passenger %v, want %v", got.Name, pA.Name)
	}
	if pq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", pq.Len())
	}
}

func TestPassengerQueue_Empty_PeekAndDequeueReturnNil(t *testing.T) {
	pq := &PassengerQueue{}
	if got := pq.Peek(); got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
	if got := pq.Dequeue(); got != nil {
		t.Errorf("Dequeue on empty queue: got %v, want nil", got)
	}
}

func TestPassengerQueue_Dequeue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with passengers [A, B, C]
	pq := &PassengerQueue{}
	for _, name := range []string{"A", "B", "C"} {
		pq.Enqueue(&Passenger{Name: name})
	}

	// WHEN all are dequeued
	var got []string
	for pq.Len() > 0 {
		got = append(got, pq.Dequeue().Name)
	}

	// THEN they come out in arrival order
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dequeue order[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPassengerQueue_Filter_PreservesRelativeOrder(t *testing.T) {
	// GIVEN a queue interleaving two flights [A1, B1, A2, B2, A3]
	pq := &PassengerQueue{}
	for _, p := range []*Passenger{
		{Name: "A1", FlightNumber: "A"},
		{Name: "B1", FlightNumber: "B"},
		{Name: "A2", FlightNumber: "A"},
		{Name: "B2", FlightNumber: "B"},
		{Name: "A3", FlightNumber: "A"},
	} {
		pq.Enqueue(p)
	}

	// WHEN flight B is filtered out
	removed := pq.Filter(func(p *Passenger) bool { return p.FlightNumber != "B" })

	// THEN the remaining A passengers keep their order
	if removed != 2 {
		t.Errorf("Filter removed %d, want 2", removed)
	}
	got := queueNames(pq)
	want := []string{"A1", "A2", "A3"}
	if len(got) != len(want) {
		t.Fatalf("Filter: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Filter order[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPassengerQueue_Filter_KeepAll_NoChange(t *testing.T) {
	pq := &PassengerQueue{}
	pq.Enqueue(&Passenger{Name: "A"})
	if removed := pq.Filter(func(*Passenger) bool { return true }); removed != 0 {
		t.Errorf("Filter removed %d, want 0", removed)
	}
	if pq.Len() != 1 {
		t.Errorf("Len after keep-all filter: got %d, want 1", pq.Len())
	}
}

func TestPassengerQueue_Enqueue_NilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on nil passenger")
		}
	}()
	(&PassengerQueue{}).Enqueue(nil)
}

func TestPassengerQueue_String(t *testing.T) {
	pq := &PassengerQueue{}
	pq.Enqueue(&Passenger{Name: "A"})
	pq.Enqueue(&Passenger{Name: "B"})
	if got := pq.String(); got != "[A B]" {
		t.Errorf("String: got %q, want %q", got, "[A B]")
	}
}
