package board

import (
	"errors"
	"sync"
)

// ErrLogFull is returned by Append once a room's event limit is reached.
// The write is rejected; the room keeps serving reads and other writers.
var ErrLogFull = errors.New("board: event log full")

// Log is the append-only sequence of draw events for one room. It is the
// single source of truth for what has been drawn: every consumer state
// (pens, strokes, raster) must be reconstructible by replaying it from
// empty.
type Log struct {
	mu     sync.RWMutex
	events []Event
	limit  int
}

// NewLog creates an empty log. limit caps the number of events; zero means
// unlimited.
func NewLog(limit int) *Log {
	return &Log{limit: limit}
}

// Append assigns the next sequence number to ev, stores it, and returns the
// assigned sequence. Sequence numbers start at 1 and are the room's total
// order.
func (l *Log) Append(ev Event) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.limit > 0 && len(l.events) >= l.limit {
		return 0, ErrLogFull
	}
	ev.Seq = uint64(len(l.events) + 1)
	l.events = append(l.events, ev)
	return ev.Seq, nil
}

// Snapshot returns a copy of every event in sequence order. The copy is
// consistent under concurrent appends and safe for the caller to retain.
func (l *Log) Snapshot() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
