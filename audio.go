package main

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/lissajous/internal/config"
	"github.com/iburimskiy/lissajous/internal/curve"
	"github.com/iburimskiy/lissajous/internal/scope"
)

// startAudio opens the audio device and plays the published curve until the
// returned func is called.
func startAudio(buf *curve.Buffer, opts config.Options) (func(), error) {
	sr := beep.SampleRate(opts.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	ctrl := &beep.Ctrl{Streamer: scope.NewStreamer(buf, config.WindowWidth, config.WindowHeight, opts.Volume)}
	speaker.Play(ctrl)

	return func() {
		speaker.Lock()
		ctrl.Paused = true
		speaker.Clear()
		speaker.Unlock()
	}, nil
}
