package render

import (
	"image"
	"math"
)

// Point is a position in room space.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Hypot(d.X, d.Y)
}

// bbox tracks an axis-aligned bounding box over a growing set of points.
type bbox struct {
	min, max Point
}

func newBBox(p Point) bbox {
	return bbox{min: p, max: p}
}

func (b *bbox) extend(p Point) {
	if p.X < b.min.X {
		b.min.X = p.X
	}
	if p.Y < b.min.Y {
		b.min.Y = p.Y
	}
	if p.X > b.max.X {
		b.max.X = p.X
	}
	if p.Y > b.max.Y {
		b.max.Y = p.Y
	}
}

// overlaps reports whether the box, grown by margin on every side,
// intersects the pixel rectangle r.
func (b bbox) overlaps(r image.Rectangle, margin float64) bool {
	if b.min.X-margin > float64(r.Max.X) {
		return false
	}
	if b.min.Y-margin > float64(r.Max.Y) {
		return false
	}
	if b.max.X+margin < float64(r.Min.X) {
		return false
	}
	if b.max.Y+margin < float64(r.Min.Y) {
		return false
	}
	return true
}
