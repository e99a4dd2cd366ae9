package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/iburimskiy/lissajous/internal/config"
	"github.com/iburimskiy/lissajous/internal/curve"
	"github.com/iburimskiy/lissajous/internal/params"
)

type fixture struct {
	store  *params.Store
	buf    *curve.Buffer
	out    *bytes.Buffer
	exited int
}

func run(t *testing.T, input string) *fixture {
	t.Helper()
	f := &fixture{
		store: params.NewStore(params.Defaults()),
		buf:   curve.NewBuffer(),
		out:   &bytes.Buffer{},
	}
	c := New(strings.NewReader(input), f.out, f.store, f.buf, func() { f.exited++ })
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	return f
}

func TestSetGet(t *testing.T) {
	f := run(t, "set alpha 3\nget alpha\nset scale -120\nget scale\nexit\n")
	out := f.out.String()
	if !strings.Contains(out, "alpha = 3") || !strings.Contains(out, "scale = -120") {
		t.Errorf("output missing values:\n%s", out)
	}
	p := f.store.Snapshot()
	if p.Alpha != 3 || p.Scale != -120 {
		t.Errorf("store = %+v", p)
	}
	if f.exited != 1 {
		t.Errorf("onExit called %d times", f.exited)
	}
}

func TestUnknownParameter(t *testing.T) {
	f := run(t, "set gamma 7\nget gamma\nexit\n")
	if got := strings.Count(f.out.String(), params.ErrUnknownParameter.Error()); got != 2 {
		t.Errorf("reported %d unknown parameters, want 2:\n%s", got, f.out)
	}
	if f.store.Snapshot() != params.Defaults() {
		t.Errorf("store mutated: %+v", f.store.Snapshot())
	}
}

func TestMalformedNumberLeavesValue(t *testing.T) {
	f := run(t, "set beta two\nset beta 4x 5\nget beta\nexit\n")
	out := f.out.String()
	if got := strings.Count(out, ErrMalformedNumber.Error()); got != 2 {
		t.Errorf("reported %d malformed numbers, want 2:\n%s", got, out)
	}
	if !strings.Contains(out, "beta = 0") {
		t.Errorf("beta changed:\n%s", out)
	}
	// The trailing "5" was discarded with its line, not run as a command.
	if strings.Contains(out, ErrUnrecognizedCommand.Error()) {
		t.Errorf("leftover token leaked into next command:\n%s", out)
	}
}

func TestExtraTokensAreDiscarded(t *testing.T) {
	f := run(t, "get alpha beta scale\nhelp me please\nexit\n")
	out := f.out.String()
	if strings.Contains(out, ErrUnrecognizedCommand.Error()) {
		t.Errorf("extra tokens were executed:\n%s", out)
	}
	if strings.Contains(out, "beta = ") {
		t.Errorf("extra tokens were executed:\n%s", out)
	}
}

func TestArgumentsMayFollowOnNextLine(t *testing.T) {
	f := run(t, "set\nalpha\n9\nexit\n")
	if got := f.store.Snapshot().Alpha; got != 9 {
		t.Errorf("alpha = %d, want 9", got)
	}
}

func TestUnrecognized(t *testing.T) {
	f := run(t, "draw\nSET alpha 1\nexit\n")
	// "SET" is case-sensitive; its line is dropped after the report.
	if got := strings.Count(f.out.String(), ErrUnrecognizedCommand.Error()); got != 2 {
		t.Errorf("reported %d unrecognized commands, want 2:\n%s", got, f.out)
	}
	if f.store.Snapshot().Alpha != 0 {
		t.Error("case-insensitive match on SET")
	}
}

func TestCompileDefaults(t *testing.T) {
	f := run(t, "compile\nexit\n")
	frame := f.buf.Load()
	if frame.Mode != curve.Plain {
		t.Errorf("mode = %v", frame.Mode)
	}
	if len(frame.Points) != 501 {
		t.Fatalf("len = %d, want 501", len(frame.Points))
	}
	wantX, wantY := float64(config.WindowWidth)/2, float64(config.WindowHeight)*0.85
	for i, p := range frame.Points {
		if abs(p.X-wantX) > 1e-9 || abs(p.Y-wantY) > 1e-9 {
			t.Fatalf("point %d = (%v, %v)", i, p.X, p.Y)
		}
	}
	if !strings.Contains(f.out.String(), "compiled 501 points") {
		t.Errorf("missing compile report:\n%s", f.out)
	}
}

func TestCompileLissajous(t *testing.T) {
	f := run(t, "set alpha 3\nset beta 2\ncompile\nexit\n")
	want, err := curve.Sample(params.Params{Precision: 5, Alpha: 3, Beta: 2, Scale: 35},
		config.WindowWidth, config.WindowHeight, curve.Plain)
	if err != nil {
		t.Fatal(err)
	}
	got := f.buf.Load().Points
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	f := run(t, "set alpha 3\nset beta 2\ncompile\nexit\n")
	before := f.buf.Load()

	c := New(strings.NewReader("green-orange\n"), io.Discard, f.store, f.buf, nil)
	_ = c.Run(context.Background())
	mid := f.buf.Load()
	if mid.Mode != curve.Alternate {
		t.Fatalf("mode after one toggle = %v", mid.Mode)
	}
	for i, p := range mid.Points {
		if p.Color != curve.Alternate.Color() || p.X != before.Points[i].X || p.Y != before.Points[i].Y {
			t.Fatalf("point %d = %+v", i, p)
		}
	}

	c = New(strings.NewReader("green-orange\n"), io.Discard, f.store, f.buf, nil)
	_ = c.Run(context.Background())
	after := f.buf.Load()
	if after.Mode != before.Mode || len(after.Points) != len(before.Points) {
		t.Fatalf("after two toggles: mode %v, %d points", after.Mode, len(after.Points))
	}
	for i := range before.Points {
		if after.Points[i] != before.Points[i] {
			t.Fatalf("point %d = %+v, want %+v", i, after.Points[i], before.Points[i])
		}
	}
}

func TestInvalidPrecisionKeepsFrame(t *testing.T) {
	f := run(t, "compile\nset precision 0\ncompile\ngreen-orange\nset precision -3\ncompile\nexit\n")
	if got := strings.Count(f.out.String(), curve.ErrInvalidParameter.Error()); got != 3 {
		t.Errorf("reported %d invalid parameters, want 3:\n%s", got, f.out)
	}
	frame := f.buf.Load()
	if frame.Mode != curve.Plain || len(frame.Points) != 501 {
		t.Errorf("frame replaced: mode %v, %d points", frame.Mode, len(frame.Points))
	}
}

func TestEOFActsLikeExit(t *testing.T) {
	f := run(t, "set alpha 1")
	if f.exited != 1 {
		t.Errorf("onExit called %d times", f.exited)
	}
	if f.store.Snapshot().Alpha != 1 {
		t.Error("last command before EOF was not applied")
	}
}

func TestHelp(t *testing.T) {
	f := run(t, "help\nexit\n")
	for _, word := range []string{"set", "get", "exit", "help", "compile", "green-orange"} {
		if !strings.Contains(f.out.String(), word) {
			t.Errorf("help is missing %q", word)
		}
	}
}

func TestExitStopsReading(t *testing.T) {
	f := run(t, "exit\nset alpha 5\n")
	if f.store.Snapshot().Alpha != 0 {
		t.Error("command after exit was executed")
	}
	if n := strings.Count(f.out.String(), config.Prompt); n != 1 {
		t.Errorf("prompted %d times, want 1", n)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestReadErrors(t *testing.T) {
	boom := errors.New("boom")
	c := New(failingReader{boom}, io.Discard, params.NewStore(params.Defaults()), curve.NewBuffer(), nil)
	if err := c.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run() = %v, want %v", err, boom)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c = New(failingReader{boom}, io.Discard, params.NewStore(params.Defaults()), curve.NewBuffer(), nil)
	if err := c.Run(ctx); err != nil {
		t.Errorf("Run() after cancel = %v, want nil", err)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
