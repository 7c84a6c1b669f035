package render

import (
	"image"
	"image/color"
)

// pen is the ephemeral in-progress stroke state for one author. It exists
// only between a PenDown and the event that closes it; full replays rebuild
// every pen from an empty working set.
type pen struct {
	author string
	color  color.RGBA
	width  float64
	start  Point
	points []Point
	// ords[i] is the builder apply order of the event that contributed
	// points[i]. Segment (points[i-1], points[i]) inherits ords[i], which
	// lets a repaint reproduce the exact chronological paint order.
	ords []uint64
	box  bbox
}

func newPen(author string, col color.RGBA, width float64, at Point, ord uint64) *pen {
	return &pen{
		author: author,
		color:  col,
		width:  width,
		start:  at,
		points: []Point{at},
		ords:   []uint64{ord},
		box:    newBBox(at),
	}
}

// add extends the path to a new position.
func (p *pen) add(at Point, ord uint64) {
	p.points = append(p.points, at)
	p.ords = append(p.ords, ord)
	p.box.extend(at)
}

// line replaces the whole path with a single straight segment from the
// stroke's start point. Earlier segments are no longer part of the drawing.
func (p *pen) line(at Point, ord uint64) {
	p.points = append(p.points[:0], p.start, at)
	p.ords = append(p.ords[:0], p.ords[0], ord)
	p.box = newBBox(p.start)
	p.box.extend(at)
}

func (p *pen) last() Point {
	return p.points[len(p.points)-1]
}

// commit freezes the pen into a Stroke.
func (p *pen) commit() Stroke {
	return Stroke{
		Author: p.author,
		Color:  p.color,
		Width:  p.width,
		Points: p.points,
		ords:   p.ords,
		Min:    p.box.min,
		Max:    p.box.max,
	}
}

// Stroke is a closed pen's final path with its bounding box. The box covers
// the path's points only; painting extends Width/2 beyond it, which culling
// accounts for.
type Stroke struct {
	Author   string
	Color    color.RGBA
	Width    float64
	Points   []Point
	Min, Max Point

	ords []uint64
}

// Overlaps reports whether the stroke's painted area can touch the pixel
// rectangle r.
func (s Stroke) Overlaps(r image.Rectangle) bool {
	return bbox{min: s.Min, max: s.Max}.overlaps(r, s.Width/2+1)
}

// segments appends the stroke's painted segments to dst.
func (s Stroke) segments(dst []Segment) []Segment {
	for i := 1; i < len(s.Points); i++ {
		dst = append(dst, Segment{
			From:  s.Points[i-1],
			To:    s.Points[i],
			Color: s.Color,
			Width: s.Width,
			ord:   s.ords[i],
		})
	}
	return dst
}
