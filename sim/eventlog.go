package sim

import "sbi-in-go/boot"

// Event is one boot-rendezvous observation.
type Event struct {
	Hart uint64
	What string
}

// EventLog collects events from physically parallel harts in arrival
// order.
type EventLog struct {
	lk      boot.Lock
	entries []Event
}

func (l *EventLog) Append(hart uint64, what string) {
	l.lk.Acquire()
	l.entries = append(l.entries, Event{Hart: hart, What: what})
	l.lk.Release()
}

// Snapshot copies the log. Call once the harts are quiescent.
func (l *EventLog) Snapshot() []Event {
	l.lk.Acquire()
	out := append([]Event(nil), l.entries...)
	l.lk.Release()
	return out
}

// Index returns the position of the first (hart, what) entry, or -1.
func Index(events []Event, hart uint64, what string) int {
	for i, e := range events {
		if e.Hart == hart && e.What == what {
			return i
		}
	}
	return -1
}
