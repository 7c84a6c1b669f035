// Package demo feeds scripted robot authors into a room so the board has
// live activity without real clients. Robots go through the same
// append+broadcast path as websocket submissions.
package demo

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/tezlm/board/internal/board"
	"github.com/tezlm/board/internal/ws"
)

// robot draws repeated strokes along a parametric path, resting between
// them.
type robot struct {
	author    string
	color     string
	width     float64
	path      func(t float64) (x, y float64)
	strokeLen int
	restLen   int

	t       float64
	drawing bool
	step    int
}

type Painter struct {
	hub      *ws.Hub
	room     string
	interval time.Duration
	robots   []*robot
}

// NewPainter creates robots whose paths are scaled to the board's
// room-space extent, so demo strokes land inside the raster cache
// regardless of the configured size.
func NewPainter(hub *ws.Hub, room string, interval time.Duration, boardW, boardH int) *Painter {
	w, h := float64(boardW), float64(boardH)
	r := math.Min(w, h) * 0.12
	return &Painter{
		hub:      hub,
		room:     room,
		interval: interval,
		robots: []*robot{
			{
				author: "robot-" + uuid.NewString(),
				color:  "#00A5CF", width: 5,
				strokeLen: 60, restLen: 20,
				path: func(t float64) (float64, float64) {
					return 0.3*w + r*math.Cos(t/30), 0.3*h + r*math.Sin(t/30)
				},
			},
			{
				author: "robot-" + uuid.NewString(),
				color:  "#F45B69", width: 8,
				strokeLen: 40, restLen: 35,
				path: func(t float64) (float64, float64) {
					sweep := t/150 - math.Floor(t/150)
					return 0.1*w + 0.8*w*sweep, 0.6*h + 0.06*h*math.Sin(t/8)
				},
			},
		},
	}
}

// Start launches the paint loop; it stops when ctx is canceled.
func (p *Painter) Start(ctx context.Context) {
	go p.loop(ctx)
}

func (p *Painter) loop(ctx context.Context) {
	log.Printf("demo: painting into room %q every %v", p.room, p.interval)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, r := range p.robots {
				if ev, ok := r.next(); ok {
					if _, err := p.hub.Publish(p.room, ev); err != nil {
						if errors.Is(err, board.ErrLogFull) {
							log.Printf("demo: room %q log full, stopping", p.room)
							return
						}
						log.Printf("demo: publish: %v", err)
					}
				}
			}
		}
	}
}

// next advances the robot one tick and returns the event to publish, if
// any. Strokes of strokeLen move events alternate with restLen idle ticks.
func (r *robot) next() (board.Event, bool) {
	r.t++
	if !r.drawing {
		r.step++
		if r.step < r.restLen {
			return board.Event{}, false
		}
		r.step = 0
		r.drawing = true
		x, y := r.path(r.t)
		return board.Event{
			Kind: board.PenDown, Author: r.author,
			X: x, Y: y, Color: r.color, Width: r.width,
		}, true
	}

	r.step++
	x, y := r.path(r.t)
	if r.step < r.strokeLen {
		return board.Event{Kind: board.PenMove, Author: r.author, X: x, Y: y}, true
	}
	r.step = 0
	r.drawing = false
	return board.Event{Kind: board.PenUp, Author: r.author, X: x, Y: y}, true
}
