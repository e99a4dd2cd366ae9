// Package background animates the four-corner gradient shown in the
// green-orange display mode.
package background

import "image/color"

const (
	greenLow  = 64
	greenHigh = 255
)

// Corner trades one unit of red for one unit of green per step, or the
// reverse, bouncing at the green bounds.
type Corner struct {
	Red, Green uint8
	Rising     bool
}

func (c *Corner) Step() {
	if c.Rising {
		c.Red--
		c.Green++
	} else {
		c.Red++
		c.Green--
	}

	switch {
	case c.Rising && c.Green >= greenHigh:
		c.Rising = false
	case !c.Rising && c.Green <= greenLow:
		c.Rising = true
	}
}

func (c Corner) Color() color.RGBA {
	return color.RGBA{R: c.Red, G: c.Green, A: 255}
}

// Gradient corners run clockwise from the top-left.
type Gradient struct {
	corners [4]Corner
}

func New() *Gradient {
	return &Gradient{corners: [4]Corner{
		{Red: 255, Green: 64, Rising: true},
		{Red: 128, Green: 191, Rising: true},
		{Red: 0, Green: 255, Rising: false},
		{Red: 191, Green: 128, Rising: false},
	}}
}

// Step advances every corner by one frame.
func (g *Gradient) Step() {
	for i := range g.corners {
		g.corners[i].Step()
	}
}

func (g *Gradient) Corners() [4]Corner {
	return g.corners
}

func (g *Gradient) Colors() [4]color.RGBA {
	var out [4]color.RGBA
	for i, c := range g.corners {
		out[i] = c.Color()
	}
	return out
}
