// Package scope plays the current curve as stereo audio, x on the left
// channel and y on the right, so an XY oscilloscope redraws the figure.
package scope

import (
	"github.com/faiface/beep"

	"github.com/iburimskiy/lissajous/internal/curve"
)

var _ beep.Streamer = (*Streamer)(nil)

// Streamer is a beep.Streamer that loops over the published curve one point
// per sample. A new frame is picked up at the start of each pass.
type Streamer struct {
	buf     *curve.Buffer
	halfW   float64
	halfH   float64
	volume  float64
	frame   *curve.Frame
	nextIdx int
}

func NewStreamer(buf *curve.Buffer, width, height int, volume float64) *Streamer {
	return &Streamer{
		buf:    buf,
		halfW:  float64(width) / 2,
		halfH:  float64(height) / 2,
		volume: volume,
	}
}

func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.frame == nil || s.nextIdx >= len(s.frame.Points) {
			s.frame = s.buf.Load()
			s.nextIdx = 0
		}
		if len(s.frame.Points) == 0 {
			samples[i] = [2]float64{}
			continue
		}
		p := s.frame.Points[s.nextIdx]
		s.nextIdx++
		// Screen y grows downwards; the scope's does not.
		samples[i] = [2]float64{
			s.volume * clamp((p.X-s.halfW)/s.halfW),
			s.volume * clamp((s.halfH-p.Y)/s.halfH),
		}
	}
	return len(samples), true
}

func (s *Streamer) Err() error { return nil }

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
