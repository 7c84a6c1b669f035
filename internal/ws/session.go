package ws

import (
	"encoding/json"
	"log"
)

// run is the per-connection read loop and state machine: unjoined until the
// first join message, then a room member until disconnect. It owns c.room;
// nothing else reads or writes it.
func (c *client) run() {
	defer func() {
		if c.room != nil {
			c.hub.leave(c.room, c)
		}
		c.hub.unregister(c)
		log.Printf("ws: client %s disconnected", c.author)
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		c.handleMessage(data)
	}
}

func (c *client) handleMessage(data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("ws: client %s sent malformed frame: %v", c.author, err)
		return
	}

	switch msg.Type {
	case MsgJoin:
		c.handleJoin(msg.Payload)
	case MsgDraw:
		c.handleDraw(msg.Payload)
	default:
		log.Printf("ws: client %s sent unknown message type %q", c.author, msg.Type)
	}
}

func (c *client) handleJoin(payload json.RawMessage) {
	if c.room != nil {
		log.Printf("ws: client %s re-joined while in room %q, ignoring", c.author, c.room.id)
		return
	}
	var p JoinPayload
	if err := json.Unmarshal(payload, &p); err != nil || p.Room == "" {
		log.Printf("ws: client %s sent invalid join payload", c.author)
		return
	}
	c.room = c.hub.join(c, p.Room)
	log.Printf("ws: client %s joined room %q", c.author, p.Room)
}

func (c *client) handleDraw(payload json.RawMessage) {
	if c.room == nil {
		// Not an error: a rapidly-disconnecting or misbehaving client,
		// dropped per protocol.
		log.Printf("ws: client %s drew before joining, dropping", c.author)
		return
	}
	var p DrawPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("ws: client %s sent invalid draw payload", c.author)
		return
	}
	ev := p.Event
	if !ev.Kind.Valid() {
		log.Printf("ws: client %s sent unknown event kind %q", c.author, ev.Kind)
		return
	}
	ev.Author = c.author
	ev.Seq = 0
	if err := c.hub.draw(c.room, c, ev, p.Drop); err != nil {
		log.Printf("ws: room %q rejected write from %s: %v", c.room.id, c.author, err)
		if msg, merr := encodeMessage(MsgError, ErrorPayload{Message: err.Error()}); merr == nil {
			c.enqueue(msg)
		}
	}
}
