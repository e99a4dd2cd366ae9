// Package console implements the operator's text interface: it reads commands
// from an input stream, edits the parameter store and publishes freshly
// sampled curves for the renderer.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/lissajous/internal/config"
	"github.com/iburimskiy/lissajous/internal/curve"
	"github.com/iburimskiy/lissajous/internal/params"
)

const helpText = `set <name> <value>	sets value for a specified variable
get <name>	gets value for a specified variable
exit	exits application
help	shows this text
compile	recalculate curve
green-orange	toggle the green-orange render`

type styles struct {
	prompt lipgloss.Style
	err    lipgloss.Style
	value  lipgloss.Style
	info   lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		prompt: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		err:    r.NewStyle().Foreground(lipgloss.Color("9")),
		value:  r.NewStyle().Foreground(lipgloss.Color("10")),
		info:   r.NewStyle().Faint(true),
	}
}

// Console owns the reading goroutine. It is the only writer of the parameter
// store and the curve buffer.
type Console struct {
	tokens *TokenReader
	out    io.Writer
	store  *params.Store
	buf    *curve.Buffer
	onExit func()
	width  int
	height int
	style  styles
}

// New returns a console reading from in and printing to out. onExit is
// called once when the operator asks to quit or the input ends.
func New(in io.Reader, out io.Writer, store *params.Store, buf *curve.Buffer, onExit func()) *Console {
	if onExit == nil {
		onExit = func() {}
	}
	return &Console{
		tokens: NewTokenReader(in),
		out:    out,
		store:  store,
		buf:    buf,
		onExit: onExit,
		width:  config.WindowWidth,
		height: config.WindowHeight,
		style:  newStyles(out),
	}
}

// Run processes commands until exit, end of input, or ctx is done. A read
// error other than io.EOF is returned; ctx cancellation is not an error.
func (c *Console) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(c.out, c.style.prompt.Render(config.Prompt))

		cmd, err := Parse(c.tokens)
		switch {
		case err == nil:
		case recoverable(err):
			c.report(err)
			if err := c.tokens.DiscardLine(); err != nil {
				return c.readFailed(ctx, err)
			}
			continue
		default:
			return c.readFailed(ctx, err)
		}

		if c.dispatch(cmd) {
			return nil
		}
		if err := c.tokens.DiscardLine(); err != nil {
			return c.readFailed(ctx, err)
		}
	}
}

func (c *Console) readFailed(ctx context.Context, err error) error {
	fmt.Fprintln(c.out)
	if errors.Is(err, io.EOF) {
		c.onExit()
		return nil
	}
	if ctx.Err() != nil {
		return nil
	}
	return fmt.Errorf("console: read input: %w", err)
}

// dispatch runs cmd and reports whether the console should stop.
func (c *Console) dispatch(cmd Command) bool {
	switch cmd := cmd.(type) {
	case Set:
		if err := c.store.Set(cmd.Name, cmd.Value); err != nil {
			c.report(err)
		}
	case Get:
		v, err := c.store.Get(cmd.Name)
		if err != nil {
			c.report(err)
			break
		}
		fmt.Fprintln(c.out, c.style.value.Render(fmt.Sprintf("%s = %d", cmd.Name, v)))
	case Compile:
		c.compile(c.buf.Load().Mode)
	case ToggleMode:
		mode := c.buf.Load().Mode.Toggle()
		if c.compile(mode) {
			fmt.Fprintln(c.out, c.style.info.Render("mode: "+mode.String()))
		}
	case Help:
		fmt.Fprintln(c.out, helpText)
	case Exit:
		c.onExit()
		return true
	case Unrecognized:
		c.report(fmt.Errorf("%w: %q", ErrUnrecognizedCommand, cmd.Token))
	default:
		panic(fmt.Sprintf("console: unhandled command %T", cmd))
	}
	return false
}

// compile samples the current parameters in the given mode and publishes
// the result. On failure the published frame is left as it was.
func (c *Console) compile(mode curve.Mode) bool {
	start := time.Now()
	points, err := curve.Sample(c.store.Snapshot(), c.width, c.height, mode)
	if err != nil {
		c.report(err)
		return false
	}
	c.buf.Store(&curve.Frame{Mode: mode, Points: points})
	fmt.Fprintln(c.out, c.style.info.Render(fmt.Sprintf("compiled %d points in %v", len(points), time.Since(start))))
	return true
}

func (c *Console) report(err error) {
	fmt.Fprintln(c.out, c.style.err.Render("error: "+err.Error()))
}
