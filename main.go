package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/muesli/cancelreader"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/lissajous/internal/config"
	"github.com/iburimskiy/lissajous/internal/console"
	"github.com/iburimskiy/lissajous/internal/curve"
	"github.com/iburimskiy/lissajous/internal/game"
	"github.com/iburimskiy/lissajous/internal/params"
)

func newRootCmd() *cobra.Command {
	opts := config.Default()

	cmd := &cobra.Command{
		Use:   "lissajous",
		Short: "Draw a Lissajous curve and edit it from the console",
		Long: `Opens a window with a Lissajous curve x = sin(alpha*t), y = cos(beta*t)
and reads commands from standard input while the window keeps rendering.

Type "help" at the prompt for the command list.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			if err := run(opts); err != nil {
				_ = zenity.Error(err.Error(), zenity.Title(opts.Title), zenity.ErrorIcon)
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Title, "title", opts.Title, "window title")
	f.IntVar(&opts.TPS, "tps", opts.TPS, "frames per second")
	f.IntVar(&opts.AntiAlias, "antialias", opts.AntiAlias, "anti-aliasing level (0 disables)")
	f.BoolVar(&opts.HUD, "hud", false, "show mode, point count and frame rate in the window")
	f.BoolVar(&opts.Audio, "audio", false, "play the curve as stereo audio for an XY oscilloscope")
	f.IntVar(&opts.SampleRate, "sample-rate", opts.SampleRate, "audio sample rate in Hz")
	f.Float64Var(&opts.Volume, "volume", opts.Volume, "audio volume within [0,1]")
	return cmd
}

func run(opts config.Options) error {
	store := params.NewStore(params.Defaults())
	buf := curve.NewBuffer()
	g := game.New(buf, opts)

	if opts.Audio {
		stop, err := startAudio(buf, opts)
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer stop()
		}
	}

	// A cancellable stdin lets a window close unblock the console. Inputs
	// that cannot be polled fall back to a plain read; the join then waits
	// for the operator's next line or EOF.
	var in io.Reader = os.Stdin
	cr, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		log.Printf("console input is not cancellable: %v", err)
		cr = nil
	} else {
		defer cr.Close()
		in = cr
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fmt.Println(`Type "help" for a list of commands.`)
	con := console.New(in, os.Stdout, store, buf, g.RequestClose)
	done := make(chan error, 1)
	go func() {
		done <- con.Run(ctx)
	}()

	runErr := game.Run(g, opts)

	cancel()
	if cr != nil {
		cr.Cancel()
	}
	if err := <-done; err != nil {
		log.Printf("console: %v", err)
	}
	return runErr
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lissajous: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
