package config

import (
	"errors"
	"fmt"
	"image/color"
)

const (
	WindowWidth  = 768
	WindowHeight = 768
	WindowTitle  = "Lissajous Curve"

	TicksPerSecond = 30
	AntiAliasing   = 8

	// Parameter defaults
	DefaultPrecision = 5
	DefaultAlpha     = 0
	DefaultBeta      = 0
	DefaultScale     = 35

	// MaxPrecision bounds a sampling pass to 100*MaxPrecision+1 points.
	MaxPrecision = 10000

	// Scope audio
	DefaultSampleRate = 44100
	DefaultVolume     = 0.25

	Prompt = ">>> "
)

var (
	FillColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	AxisColor = color.RGBA{R: 192, G: 192, B: 192, A: 255}
)

// Options holds everything the command line can change.
type Options struct {
	Title      string
	TPS        int
	AntiAlias  int
	HUD        bool
	Audio      bool
	SampleRate int
	Volume     float64
}

func Default() Options {
	return Options{
		Title:      WindowTitle,
		TPS:        TicksPerSecond,
		AntiAlias:  AntiAliasing,
		SampleRate: DefaultSampleRate,
		Volume:     DefaultVolume,
	}
}

var ErrInvalidOption = errors.New("invalid option")

func (o Options) Validate() error {
	if o.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidOption, o.TPS)
	}
	if o.AntiAlias < 0 {
		return fmt.Errorf("%w: antialias must not be negative, got %d", ErrInvalidOption, o.AntiAlias)
	}
	if o.Audio && o.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidOption, o.SampleRate)
	}
	if o.Volume < 0 || o.Volume > 1 {
		return fmt.Errorf("%w: volume must be within [0,1], got %g", ErrInvalidOption, o.Volume)
	}
	return nil
}
