package render

import (
	"image"

	"github.com/tezlm/board/internal/board"
)

// Canvas is the raster cache: a room-space RGBA image accumulating every
// stroke as events are applied. Incremental events cost one segment's worth
// of painting; the image is only rebuilt when a straight-line preview
// invalidates earlier pixels or after a bulk replay.
type Canvas struct {
	img     *image.RGBA
	builder *Builder
}

// NewCanvas creates an empty canvas covering the room-space rectangle
// (0,0)-(w,h). Pixels start fully transparent; the compositor supplies the
// page background.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img:     image.NewRGBA(image.Rect(0, 0, w, h)),
		builder: NewBuilder(),
	}
}

// Image exposes the accumulated bitmap. The compositor reads it; nothing
// else may write to it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the room-space extent of the cache.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Builder exposes the underlying stroke builder, e.g. to abandon a
// disconnected peer's pen.
func (c *Canvas) Builder() *Builder {
	return c.builder
}

// Add applies one live event and paints its effect.
func (c *Canvas) Add(ev board.Event) {
	op := c.builder.Apply(ev)
	if op.Repaint {
		c.Repaint()
		return
	}
	for _, s := range op.Segments {
		paintSegment(c.img, c.img.Bounds(), s)
	}
}

// AddAll applies a bulk replay, typically a join-time sync payload.
// Events are folded into the builder first and the image is painted once at
// the end; the result is pixel-identical to calling Add per event.
func (c *Canvas) AddAll(events []board.Event) {
	if len(events) == 0 {
		return
	}
	for _, ev := range events {
		c.builder.Apply(ev)
	}
	c.Repaint()
}

// Repaint rebuilds the whole image from the builder's current geometry.
func (c *Canvas) Repaint() {
	c.RepaintRect(c.img.Bounds())
}

// RepaintRect rebuilds only the given room-space region. Strokes whose
// bounding box cannot touch the region are culled; the surviving segments
// are painted in their original chronological order.
func (c *Canvas) RepaintRect(clip image.Rectangle) {
	clip = clip.Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}
	clearRect(c.img, clip)
	for _, s := range c.builder.orderedSegments(clip) {
		paintSegment(c.img, clip, s)
	}
}
