// Package curve samples the x=sin, y=cos Lissajous family and hands the
// result to the renderer.
package curve

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/lissajous/internal/config"
	"github.com/iburimskiy/lissajous/internal/params"
)

var ErrInvalidParameter = errors.New("invalid parameter")

type Mode int

const (
	Plain Mode = iota
	Alternate
)

func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case Alternate:
		return "green-orange"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) Toggle() Mode {
	if m == Alternate {
		return Plain
	}
	return Alternate
}

// Color is the curve colour drawn in mode m.
func (m Mode) Color() color.RGBA {
	if m == Alternate {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

type Point struct {
	X, Y  float64
	Color color.RGBA
}

// Len is the number of samples a valid precision produces: floor(2π/step)+1
// with step = π/(50·precision).
func Len(precision int) int {
	return 100*precision + 1
}

func validate(p params.Params) error {
	if p.Precision <= 0 {
		return fmt.Errorf("%w: precision must be positive, got %d", ErrInvalidParameter, p.Precision)
	}
	if p.Precision > config.MaxPrecision {
		return fmt.Errorf("%w: precision must not exceed %d, got %d", ErrInvalidParameter, config.MaxPrecision, p.Precision)
	}
	return nil
}

// at returns the k-th value of the parameter sweep over [-π, π].
func at(k int, step float64) float64 {
	t := -math.Pi + float64(k)*step
	if t > math.Pi {
		t = math.Pi
	}
	return t
}

// Sample traces the curve for a window of width w and height h.
func Sample(p params.Params, w, h int, mode Mode) ([]Point, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	var (
		step   = math.Pi / (50 * float64(p.Precision))
		n      = Len(p.Precision)
		width  = float64(w)
		height = float64(h)
		amp    = float64(p.Scale) / 100
		alpha  = float64(p.Alpha)
		beta   = float64(p.Beta)
		col    = mode.Color()
	)

	points := make([]Point, n)
	for k := range points {
		t := at(k, step)
		points[k] = Point{
			X:     width*amp*math.Sin(t*alpha) + width/2,
			Y:     height/2 + height*amp*math.Cos(t*beta),
			Color: col,
		}
	}
	return points, nil
}
