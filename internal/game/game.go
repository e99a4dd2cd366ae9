package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/lissajous/internal/config"
	"github.com/iburimskiy/lissajous/internal/curve"
	"github.com/iburimskiy/lissajous/internal/render"
)

const strokeWidth = 1

// game adapts render.Loop to ebiten.Game.
type game struct {
	loop      *render.Loop
	antialias bool
	hud       bool
	canvas    *screenCanvas
}

func New(buf *curve.Buffer, opts config.Options) *game {
	return &game{
		loop:      render.NewLoop(buf, config.WindowWidth, config.WindowHeight),
		antialias: opts.AntiAlias > 0,
		hud:       opts.HUD,
	}
}

// RequestClose asks the window to close on the next tick. Safe to call from
// the console goroutine.
func (g *game) RequestClose() {
	g.loop.RequestClose()
}

func (g *game) Update() error {
	if g.loop.Tick(ebiten.IsWindowBeingClosed()) == render.Closing {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = newScreenCanvas(g.antialias)
	}
	g.canvas.dst = screen
	g.loop.Compose(g.canvas)

	if g.hud {
		frame := g.loop.Frame()
		status := fmt.Sprintf("mode: %s  points: %d  tps: %.1f", frame.Mode, len(frame.Points), ebiten.ActualTPS())
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Run opens the window and blocks until it closes. It must be called from
// the main goroutine.
func Run(g *game, opts config.Options) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// screenCanvas draws onto the ebiten screen image.
type screenCanvas struct {
	dst       *ebiten.Image
	antialias bool
	white     *ebiten.Image
	vertices  []ebiten.Vertex
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

func newScreenCanvas(antialias bool) *screenCanvas {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &screenCanvas{
		antialias: antialias,
		// The inner pixel avoids sampling the image edge.
		white:    img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertices: make([]ebiten.Vertex, 4),
	}
}

func (c *screenCanvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *screenCanvas) FillQuad(corners [4]curve.Point) {
	for i, p := range corners {
		c.vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(p.Color.R) / 0xff,
			ColorG: float32(p.Color.G) / 0xff,
			ColorB: float32(p.Color.B) / 0xff,
			ColorA: float32(p.Color.A) / 0xff,
		}
	}
	c.dst.DrawTriangles(c.vertices, quadIndices, c.white, &ebiten.DrawTrianglesOptions{})
}

func (c *screenCanvas) StrokeStrip(points []curve.Point) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, a.Color, c.antialias)
	}
}
