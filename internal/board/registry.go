package board

import "sync"

// Registry owns one event log per room, created lazily on first reference.
// Rooms are never removed; an idle room persists for the process lifetime.
type Registry struct {
	mu       sync.Mutex
	rooms    map[string]*Log
	logLimit int
}

// NewRegistry creates an empty registry. logLimit is passed to each new
// room's log; zero means unlimited.
func NewRegistry(logLimit int) *Registry {
	return &Registry{
		rooms:    make(map[string]*Log),
		logLimit: logLimit,
	}
}

// GetOrCreate returns the log for id, creating an empty one on first
// reference. Concurrent calls for the same id observe the same log.
func (r *Registry) GetOrCreate(id string) *Log {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.rooms[id]; ok {
		return l
	}
	l := NewLog(r.logLimit)
	r.rooms[id] = l
	return l
}

// Len returns the number of rooms created so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}
