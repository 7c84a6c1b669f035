package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Viewport maps a screen-sized window onto the raster cache. Pan state is
// strictly per client: it never enters the event log and panning never
// touches the cache, only the copy offset.
type Viewport struct {
	width  int
	height int
	pan    image.Point // screen translation: screen = room + pan
}

func NewViewport(w, h int) *Viewport {
	return &Viewport{width: w, height: h}
}

// PanBy shifts the view. Positive dx moves the drawing right on screen.
func (v *Viewport) PanBy(dx, dy int) {
	v.pan.X += dx
	v.pan.Y += dy
}

// Pan returns the current screen translation.
func (v *Viewport) Pan() image.Point {
	return v.pan
}

// Resize changes the visible window size, preserving the pan offset.
func (v *Viewport) Resize(w, h int) {
	v.width = w
	v.height = h
}

// Visible returns the room-space rectangle currently on screen.
func (v *Viewport) Visible() image.Rectangle {
	return image.Rect(-v.pan.X, -v.pan.Y, -v.pan.X+v.width, -v.pan.Y+v.height)
}

// Compose paints the visible window of the cache onto dst: a white page
// background with the cache's visible region copied over it. Cost is
// O(screen pixels) regardless of stroke count.
func (v *Viewport) Compose(dst *image.RGBA, c *Canvas) {
	xdraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, xdraw.Src)
	src := v.Visible().Intersect(c.Bounds())
	if src.Empty() {
		return
	}
	dp := image.Point{X: src.Min.X + v.pan.X, Y: src.Min.Y + v.pan.Y}
	xdraw.Draw(dst, image.Rectangle{Min: dp, Max: dp.Add(src.Size())}, c.Image(), src.Min, xdraw.Over)
}

// Render allocates a screen-sized image and composes into it.
func (v *Viewport) Render(c *Canvas) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, v.width, v.height))
	v.Compose(dst, c)
	return dst
}
