package render

import (
	"image"
	"image/color"
	"math"
)

// paintSegment strokes one segment onto img, restricted to clip. The line
// is drawn as overlapping round stamps, giving round caps and joins. Stamps
// are opaque writes, so repainting the same segment is idempotent.
func paintSegment(img *image.RGBA, clip image.Rectangle, s Segment) {
	r := s.Width / 2
	if r <= 0 {
		return
	}
	stampDisc(img, clip, s.From, r, s.Color)
	dist := s.From.Distance(s.To)
	if dist == 0 {
		return
	}
	step := math.Max(r/2, 0.25)
	dir := s.To.Sub(s.From)
	for d := step; d < dist; d += step {
		t := d / dist
		stampDisc(img, clip, Pt(s.From.X+dir.X*t, s.From.Y+dir.Y*t), r, s.Color)
	}
	stampDisc(img, clip, s.To, r, s.Color)
}

// stampDisc fills an opaque disc of radius r centered at p.
func stampDisc(img *image.RGBA, clip image.Rectangle, p Point, r float64, col color.RGBA) {
	box := image.Rect(
		int(math.Floor(p.X-r)), int(math.Floor(p.Y-r)),
		int(math.Ceil(p.X+r))+1, int(math.Ceil(p.Y+r))+1,
	).Intersect(clip).Intersect(img.Bounds())
	rr := r * r
	for y := box.Min.Y; y < box.Max.Y; y++ {
		dy := float64(y) + 0.5 - p.Y
		for x := box.Min.X; x < box.Max.X; x++ {
			dx := float64(x) + 0.5 - p.X
			if dx*dx+dy*dy <= rr {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// clearRect resets a region to fully transparent.
func clearRect(img *image.RGBA, r image.Rectangle) {
	r = r.Intersect(img.Bounds())
	var zero color.RGBA
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, zero)
		}
	}
}
