package render

import (
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/tezlm/board/internal/board"
)

// Defaults applied when a PenDown omits style, matching the stock client.
const (
	defaultWidth = 5.0
)

// Segment is one incremental painting instruction: stroke the path piece
// added by a single event, not the whole path.
type Segment struct {
	From, To Point
	Color    color.RGBA
	Width    float64

	ord uint64 // chronological paint order, assigned by the Builder
}

// Op is the result of applying one event. When Repaint is set the
// accumulated raster is stale (a straight-line preview replaced earlier
// segments) and must be repainted before Segments are stroked.
type Op struct {
	Segments []Segment
	Repaint  bool
}

// Builder consumes an ordered stream of draw events and maintains one open
// pen per active author. It holds no durable state: replaying a room's log
// through a fresh Builder reproduces the exact same pens and strokes,
// whether events arrive one at a time or in bulk.
type Builder struct {
	open    map[string]*pen
	strokes []Stroke
	applied uint64
}

func NewBuilder() *Builder {
	return &Builder{open: make(map[string]*pen)}
}

// Apply folds one event into the working set and returns what to paint.
// Move, line and up events for authors with no open pen are dropped: the
// transport guarantees nothing beyond the log's own sequencing, so partial
// or reordered histories must degrade silently.
func (b *Builder) Apply(ev board.Event) Op {
	b.applied++
	switch ev.Kind {
	case board.PenDown:
		// A second PenDown with an open pen closes the old one as an
		// abandoned stroke. Recovers from a lost PenUp without
		// corrupting later strokes.
		if stale, ok := b.open[ev.Author]; ok {
			b.strokes = append(b.strokes, stale.commit())
		}
		width := ev.Width
		if width <= 0 {
			width = defaultWidth
		}
		b.open[ev.Author] = newPen(ev.Author, ParseColor(ev.Color), width, Pt(ev.X, ev.Y), b.applied)
		return Op{}

	case board.PenMove:
		p, ok := b.open[ev.Author]
		if !ok {
			return Op{}
		}
		from := p.last()
		p.add(Pt(ev.X, ev.Y), b.applied)
		return Op{Segments: []Segment{{From: from, To: p.last(), Color: p.color, Width: p.width, ord: b.applied}}}

	case board.PenLine:
		p, ok := b.open[ev.Author]
		if !ok {
			return Op{}
		}
		p.line(Pt(ev.X, ev.Y), b.applied)
		return Op{
			Repaint:  true,
			Segments: []Segment{{From: p.start, To: p.last(), Color: p.color, Width: p.width, ord: b.applied}},
		}

	case board.PenUp:
		p, ok := b.open[ev.Author]
		if !ok {
			return Op{}
		}
		from := p.last()
		p.add(Pt(ev.X, ev.Y), b.applied)
		seg := Segment{From: from, To: p.last(), Color: p.color, Width: p.width, ord: b.applied}
		b.strokes = append(b.strokes, p.commit())
		delete(b.open, ev.Author)
		return Op{Segments: []Segment{seg}}
	}

	log.Printf("render: dropping event with unknown kind %q from %s", ev.Kind, ev.Author)
	return Op{}
}

// Abandon closes the author's open pen, if any, committing what was drawn
// so far as an abandoned stroke. Called when a peer disconnects mid-stroke;
// the partial stroke stays visible but is never extended.
func (b *Builder) Abandon(author string) {
	if p, ok := b.open[author]; ok {
		b.strokes = append(b.strokes, p.commit())
		delete(b.open, author)
	}
}

// Strokes returns the committed strokes in commit order. The slice is
// shared; callers must not mutate it.
func (b *Builder) Strokes() []Stroke {
	return b.strokes
}

// OpenCount returns the number of pens currently open.
func (b *Builder) OpenCount() int {
	return len(b.open)
}

// orderedSegments collects every surviving painted segment — committed
// strokes plus open pens — whose stroke can touch clip, sorted by the apply
// order of the event that created it. Painting them in this order
// reproduces the incremental result exactly; segments erased by a
// straight-line replacement are already gone from the working set, so a
// repaint costs O(current geometry), not O(event history).
func (b *Builder) orderedSegments(clip image.Rectangle) []Segment {
	var segs []Segment
	for _, s := range b.strokes {
		if !s.Overlaps(clip) {
			continue
		}
		segs = s.segments(segs)
	}
	for _, p := range b.open {
		s := p.commit()
		if !s.Overlaps(clip) {
			continue
		}
		segs = s.segments(segs)
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].ord < segs[j].ord })
	return segs
}
