package render

import (
	"image/color"
	"testing"

	"github.com/tezlm/board/internal/board"
)

func TestAuthorIsolation(t *testing.T) {
	b := NewBuilder()

	// Fully interleaved strokes from two authors.
	events := []board.Event{
		{Kind: board.PenDown, Author: "a", X: 0, Y: 0, Color: "#F45B69", Width: 5},
		{Kind: board.PenDown, Author: "b", X: 100, Y: 100, Color: "#00A5CF", Width: 8},
		{Kind: board.PenMove, Author: "a", X: 10, Y: 0},
		{Kind: board.PenMove, Author: "b", X: 110, Y: 100},
		{Kind: board.PenUp, Author: "a", X: 20, Y: 0},
		{Kind: board.PenUp, Author: "b", X: 120, Y: 100},
	}
	for _, ev := range events {
		b.Apply(ev)
	}

	strokes := b.Strokes()
	if len(strokes) != 2 {
		t.Fatalf("got %d strokes, want 2", len(strokes))
	}
	if b.OpenCount() != 0 {
		t.Errorf("OpenCount = %d, want 0", b.OpenCount())
	}

	a, bb := strokes[0], strokes[1]
	if a.Author != "a" || bb.Author != "b" {
		t.Fatalf("stroke authors = %q, %q", a.Author, bb.Author)
	}
	if a.Color != (color.RGBA{0xF4, 0x5B, 0x69, 0xff}) {
		t.Errorf("stroke a color = %v", a.Color)
	}
	if bb.Color != (color.RGBA{0x00, 0xA5, 0xCF, 0xff}) {
		t.Errorf("stroke b color = %v", bb.Color)
	}
	if len(a.Points) != 3 || a.Points[2] != Pt(20, 0) {
		t.Errorf("stroke a points = %v", a.Points)
	}
	if len(bb.Points) != 3 || bb.Points[2] != Pt(120, 100) {
		t.Errorf("stroke b points = %v", bb.Points)
	}
}

func TestPenUpComputesBoundingBox(t *testing.T) {
	b := NewBuilder()
	b.Apply(board.Event{Kind: board.PenDown, Author: "a", X: 10, Y: 10, Width: 5})
	b.Apply(board.Event{Kind: board.PenMove, Author: "a", X: -5, Y: 40})
	b.Apply(board.Event{Kind: board.PenUp, Author: "a", X: 30, Y: 0})

	s := b.Strokes()[0]
	if s.Min != Pt(-5, 0) || s.Max != Pt(30, 40) {
		t.Errorf("bounding box = %v..%v, want (-5,0)..(30,40)", s.Min, s.Max)
	}
}

func TestReopenCommitsAbandonedStroke(t *testing.T) {
	b := NewBuilder()
	b.Apply(board.Event{Kind: board.PenDown, Author: "a", X: 0, Y: 0, Color: "#F45B69", Width: 5})
	b.Apply(board.Event{Kind: board.PenMove, Author: "a", X: 10, Y: 10})

	// Second PenDown without a PenUp: the stale pen must close as an
	// abandoned stroke, not corrupt the new one.
	b.Apply(board.Event{Kind: board.PenDown, Author: "a", X: 50, Y: 50, Color: "#00A5CF", Width: 8})

	strokes := b.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("got %d committed strokes, want 1 abandoned", len(strokes))
	}
	if got := strokes[0].Points; len(got) != 2 || got[1] != Pt(10, 10) {
		t.Errorf("abandoned stroke points = %v", got)
	}
	if b.OpenCount() != 1 {
		t.Fatalf("OpenCount = %d, want 1", b.OpenCount())
	}

	b.Apply(board.Event{Kind: board.PenUp, Author: "a", X: 60, Y: 60})
	strokes = b.Strokes()
	if len(strokes) != 2 {
		t.Fatalf("got %d strokes after PenUp, want 2", len(strokes))
	}
	if strokes[1].Points[0] != Pt(50, 50) {
		t.Errorf("new stroke starts at %v, want (50,50)", strokes[1].Points[0])
	}
}

func TestUnknownAuthorDropped(t *testing.T) {
	b := NewBuilder()

	for _, kind := range []board.Kind{board.PenMove, board.PenLine, board.PenUp} {
		op := b.Apply(board.Event{Kind: kind, Author: "ghost", X: 1, Y: 2})
		if len(op.Segments) != 0 || op.Repaint {
			t.Errorf("%s for unknown author produced op %+v", kind, op)
		}
	}
	if len(b.Strokes()) != 0 || b.OpenCount() != 0 {
		t.Error("dropped events mutated the working set")
	}
}

func TestLineReplacesPath(t *testing.T) {
	b := NewBuilder()
	b.Apply(board.Event{Kind: board.PenDown, Author: "a", X: 0, Y: 0, Width: 5})
	b.Apply(board.Event{Kind: board.PenMove, Author: "a", X: 10, Y: 90})
	b.Apply(board.Event{Kind: board.PenMove, Author: "a", X: 20, Y: 5})

	op := b.Apply(board.Event{Kind: board.PenLine, Author: "a", X: 30, Y: 30})
	if !op.Repaint {
		t.Error("line event did not request a repaint")
	}
	if len(op.Segments) != 1 || op.Segments[0].From != Pt(0, 0) || op.Segments[0].To != Pt(30, 30) {
		t.Errorf("line segments = %+v, want single (0,0)->(30,30)", op.Segments)
	}

	b.Apply(board.Event{Kind: board.PenUp, Author: "a", X: 30, Y: 30})
	s := b.Strokes()[0]
	if len(s.Points) != 3 || s.Points[0] != Pt(0, 0) || s.Points[1] != Pt(30, 30) {
		t.Errorf("stroke points after line = %v", s.Points)
	}
	// The wobbly preview moves must be gone from the bounding box.
	if s.Min != Pt(0, 0) || s.Max != Pt(30, 30) {
		t.Errorf("bounding box = %v..%v, want (0,0)..(30,30)", s.Min, s.Max)
	}
}

func TestMoveEmitsIncrementalSegment(t *testing.T) {
	b := NewBuilder()
	b.Apply(board.Event{Kind: board.PenDown, Author: "a", X: 0, Y: 0, Width: 5})
	b.Apply(board.Event{Kind: board.PenMove, Author: "a", X: 5, Y: 5})

	op := b.Apply(board.Event{Kind: board.PenMove, Author: "a", X: 9, Y: 9})
	if len(op.Segments) != 1 {
		t.Fatalf("got %d segments, want 1 (only the new piece)", len(op.Segments))
	}
	if op.Segments[0].From != Pt(5, 5) || op.Segments[0].To != Pt(9, 9) {
		t.Errorf("segment = %+v, want (5,5)->(9,9)", op.Segments[0])
	}
}

func TestAbandonCommitsPartialStroke(t *testing.T) {
	b := NewBuilder()
	b.Apply(board.Event{Kind: board.PenDown, Author: "a", X: 0, Y: 0, Width: 5})
	b.Apply(board.Event{Kind: board.PenMove, Author: "a", X: 10, Y: 10})

	b.Abandon("a")
	if b.OpenCount() != 0 {
		t.Errorf("OpenCount after Abandon = %d", b.OpenCount())
	}
	if len(b.Strokes()) != 1 {
		t.Fatalf("abandoned pen not committed")
	}

	// Further events for the author are now unknown-author drops.
	op := b.Apply(board.Event{Kind: board.PenMove, Author: "a", X: 99, Y: 99})
	if len(op.Segments) != 0 {
		t.Error("move after Abandon extended the stroke")
	}

	// Abandoning an author with no open pen is a no-op.
	b.Abandon("nobody")
	if len(b.Strokes()) != 1 {
		t.Error("Abandon of unknown author committed a stroke")
	}
}

func TestDefaultStyle(t *testing.T) {
	b := NewBuilder()
	b.Apply(board.Event{Kind: board.PenDown, Author: "a", X: 0, Y: 0})
	b.Apply(board.Event{Kind: board.PenUp, Author: "a", X: 1, Y: 1})

	s := b.Strokes()[0]
	if s.Width != defaultWidth {
		t.Errorf("width = %v, want %v", s.Width, defaultWidth)
	}
	if s.Color != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("color = %v, want black", s.Color)
	}
}
