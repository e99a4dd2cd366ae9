// Package render decides what goes on screen each tick. It knows nothing
// about the window system; drawing goes through the Canvas interface.
package render

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/iburimskiy/lissajous/internal/background"
	"github.com/iburimskiy/lissajous/internal/config"
	"github.com/iburimskiy/lissajous/internal/curve"
)

// Canvas is the drawing surface of one frame.
type Canvas interface {
	Fill(c color.Color)
	// FillQuad shades a quad, interpolating the corner colours.
	FillQuad(corners [4]curve.Point)
	// StrokeStrip connects consecutive points with line segments.
	StrokeStrip(points []curve.Point)
}

type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Loop is driven from the window system's goroutine. RequestClose may be
// called from any goroutine.
type Loop struct {
	buf    *curve.Buffer
	bg     *background.Gradient
	width  float64
	height float64
	axes   [2][]curve.Point

	state          State
	frame          *curve.Frame
	closeRequested atomic.Bool
}

func NewLoop(buf *curve.Buffer, width, height int) *Loop {
	w, h := float64(width), float64(height)
	return &Loop{
		buf:    buf,
		bg:     background.New(),
		width:  w,
		height: h,
		axes: [2][]curve.Point{
			{{X: w / 2, Y: 0, Color: config.AxisColor}, {X: w / 2, Y: h, Color: config.AxisColor}},
			{{X: 0, Y: h / 2, Color: config.AxisColor}, {X: w, Y: h / 2, Color: config.AxisColor}},
		},
		frame: buf.Load(),
	}
}

func (l *Loop) RequestClose() {
	l.closeRequested.Store(true)
}

func (l *Loop) State() State {
	return l.state
}

// Frame is the curve frame picked up by the last tick.
func (l *Loop) Frame() *curve.Frame {
	return l.frame
}

// Tick advances one frame. closeSignal reports a close event from the
// window system. Once Closing, the loop stays there.
func (l *Loop) Tick(closeSignal bool) State {
	if closeSignal || l.closeRequested.Load() {
		l.state = Closing
	}
	if l.state == Closing {
		return l.state
	}

	l.frame = l.buf.Load()
	if l.frame.Mode == curve.Alternate {
		l.bg.Step()
	}
	return l.state
}

// Compose draws background, axes and curve for the current frame.
func (l *Loop) Compose(c Canvas) {
	if l.frame.Mode == curve.Alternate {
		cols := l.bg.Colors()
		c.FillQuad([4]curve.Point{
			{X: 0, Y: 0, Color: cols[0]},
			{X: l.width, Y: 0, Color: cols[1]},
			{X: l.width, Y: l.height, Color: cols[2]},
			{X: 0, Y: l.height, Color: cols[3]},
		})
	} else {
		c.Fill(config.FillColor)
	}

	for _, axis := range l.axes {
		c.StrokeStrip(axis)
	}

	if len(l.frame.Points) > 0 {
		c.StrokeStrip(l.frame.Points)
	}
}
