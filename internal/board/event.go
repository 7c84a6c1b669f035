package board

// Kind classifies a draw event within a stroke's lifecycle.
type Kind string

const (
	// PenDown opens a new pen for the author. Carries color and width,
	// which later events from the same pen inherit.
	PenDown Kind = "down"
	// PenMove extends the open pen's path to a new position.
	PenMove Kind = "move"
	// PenLine replaces the open pen's path with a single straight segment
	// from the stroke's start point to the new position.
	PenLine Kind = "line"
	// PenUp extends the path to its final position and closes the pen.
	PenUp Kind = "up"
)

// Valid reports whether k is a known event kind.
func (k Kind) Valid() bool {
	switch k {
	case PenDown, PenMove, PenLine, PenUp:
		return true
	}
	return false
}

// Event is the atomic unit of a room's log. Positions are in room space
// (pan-independent world coordinates). Author is assigned server-side per
// connection and doubles as the pen identity during reconstruction.
type Event struct {
	Kind   Kind    `json:"kind"`
	Author string  `json:"author"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color,omitempty"` // set on PenDown only
	Width  float64 `json:"width,omitempty"` // set on PenDown only
	Seq    uint64  `json:"seq,omitempty"`   // assigned by Log.Append
}
