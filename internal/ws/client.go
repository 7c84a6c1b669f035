package ws

import (
	"log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const sendBufferSize = 256

// client is one websocket connection. The author id is generated
// server-side, is stable for the connection's lifetime, and is the pen
// identity every consumer sees.
type client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	author string
	room   *room // nil until joined; touched only by the read goroutine
}

func newClient(h *Hub, conn *websocket.Conn) *client {
	c := &client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		author: uuid.NewString(),
	}
	go c.writePump()
	return c
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// enqueue hands a frame to the write pump without blocking. A client whose
// buffer is full can no longer be given a gapless event stream, so it is
// cut off rather than silently skipped.
func (c *client) enqueue(msg []byte) {
	select {
	case c.send <- msg:
	default:
		log.Printf("ws: client %s too slow, disconnecting", c.author)
		go c.conn.Close()
	}
}

func (c *client) close() {
	close(c.send)
}
