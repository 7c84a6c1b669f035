package ws

import (
	"log"
	"sync"

	"github.com/tezlm/board/internal/board"
)

// Hub owns the broadcast groups. Each room pairs the registry's event log
// with the set of member connections.
type Hub struct {
	mu       sync.RWMutex
	registry *board.Registry
	rooms    map[string]*room
	conns    map[*client]bool
}

// room's mutex serializes subscribe+snapshot on join and append+broadcast
// on draw. Holding it across both halves is what makes the catch-up
// contract hold: a joining client's snapshot plus its subsequent live
// events form a gapless, duplicate-free stream, and all members observe
// appends in the same order.
type room struct {
	id      string
	log     *board.Log
	mu      sync.Mutex
	members map[*client]bool
}

func NewHub(registry *board.Registry) *Hub {
	return &Hub{
		registry: registry,
		rooms:    make(map[string]*room),
		conns:    make(map[*client]bool),
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.conns[c] = true
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if h.conns[c] {
		delete(h.conns, c)
		c.close()
	}
	h.mu.Unlock()
}

// group returns the broadcast group for a room id, creating it (and its
// log, via the registry) on first reference.
func (h *Hub) group(id string) *room {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[id]; ok {
		return r
	}
	r := &room{
		id:      id,
		log:     h.registry.GetOrCreate(id),
		members: make(map[*client]bool),
	}
	h.rooms[id] = r
	log.Printf("ws: created room %q", id)
	return r
}

// join subscribes c to the room and queues the full catch-up snapshot.
// Subscription and snapshot happen under the room lock, so no event
// appended afterwards can be missing from snapshot+broadcasts and none is
// delivered twice.
func (h *Hub) join(c *client, roomID string) *room {
	r := h.group(roomID)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[c] = true
	msg, err := encodeMessage(MsgSync, SyncPayload{Room: r.id, Events: r.log.Snapshot()})
	if err != nil {
		log.Printf("ws: room %q sync marshal error: %v", r.id, err)
		return r
	}
	c.enqueue(msg)
	return r
}

// draw appends the event and fans it out to every member except the
// sender, atomically with respect to other appends to the same room. When
// drop is set the event is broadcast but never recorded.
func (h *Hub) draw(r *room, sender *client, ev board.Event, drop bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !drop {
		seq, err := r.log.Append(ev)
		if err != nil {
			return err
		}
		ev.Seq = seq
	}
	msg, err := encodeMessage(MsgDraw, DrawPayload{Event: ev, Drop: drop})
	if err != nil {
		log.Printf("ws: room %q draw marshal error: %v", r.id, err)
		return nil
	}
	for m := range r.members {
		if m != sender {
			m.enqueue(msg)
		}
	}
	return nil
}

// leave drops c from the room and tells the remaining members to discard
// the author's in-progress pen state. The event log is untouched.
func (h *Hub) leave(r *room, c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.members[c] {
		return
	}
	delete(r.members, c)
	msg, err := encodeMessage(MsgGC, GCPayload{Author: c.author})
	if err != nil {
		log.Printf("ws: room %q gc marshal error: %v", r.id, err)
		return
	}
	for m := range r.members {
		m.enqueue(msg)
	}
}

// Publish appends an event authored outside any websocket connection (demo
// robots) and broadcasts it to every member of the room.
func (h *Hub) Publish(roomID string, ev board.Event) (uint64, error) {
	r := h.group(roomID)
	r.mu.Lock()
	defer r.mu.Unlock()
	seq, err := r.log.Append(ev)
	if err != nil {
		return 0, err
	}
	ev.Seq = seq
	msg, err := encodeMessage(MsgDraw, DrawPayload{Event: ev})
	if err != nil {
		return seq, nil
	}
	for m := range r.members {
		m.enqueue(msg)
	}
	return seq, nil
}

// RoomCount returns the number of broadcast groups created so far.
func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}

// ClientCount returns the number of open connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
