package ws

import (
	"encoding/json"

	"github.com/tezlm/board/internal/board"
)

type MessageType string

const (
	MsgJoin  MessageType = "join"
	MsgDraw  MessageType = "draw"
	MsgSync  MessageType = "sync"
	MsgGC    MessageType = "gc"
	MsgError MessageType = "error"
)

// Message is the wire envelope. Incoming payloads stay raw until the type
// is known.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type outMessage struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload,omitempty"`
}

func encodeMessage(t MessageType, payload any) ([]byte, error) {
	return json.Marshal(outMessage{Type: t, Payload: payload})
}

// JoinPayload requests room membership. A connection joins once; repeated
// joins are ignored.
type JoinPayload struct {
	Room string `json:"room"`
}

// DrawPayload carries one draw event. The event's author field is stamped
// server-side from the connection identity; any client-supplied value is
// discarded. Drop requests broadcast without recording, for transient
// previews.
type DrawPayload struct {
	Event board.Event `json:"event"`
	Drop  bool        `json:"drop,omitempty"`
}

// SyncPayload is the full catch-up log, delivered exactly once per join.
type SyncPayload struct {
	Room   string        `json:"room"`
	Events []board.Event `json:"events"`
}

// GCPayload tells peers to discard a disconnected author's open pen state.
type GCPayload struct {
	Author string `json:"author"`
}

// ErrorPayload reports a rejected write to the submitting client.
type ErrorPayload struct {
	Message string `json:"message"`
}
