//go:build ebiten

package ui

import (
	"context"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/Subodh07301/game-of-life/model"
)

// ErrWindowUnavailable is never returned by the windowed build
var ErrWindowUnavailable = errors.New("window rendering unavailable")

var (
	aliveColor = color.White
	deadColor  = color.Black
)

// Available reports whether this build can open a window
func Available() bool { return true }

// game adapts a grid and its stepper to the ebiten.Game interface
type game struct {
	ctx   context.Context
	grid  *model.Grid
	step  Stepper
	delay time.Duration
	scale int

	canvas   *ebiten.Image
	last     time.Time
	paused   bool
	tickOnce bool
	done     bool
	err      error
}

// Run opens a window showing grid and calls step every opts.Delay until it reports done.
// The window stays open on the final generation until closed.
func Run(ctx context.Context, grid *model.Grid, step Stepper, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	g := &game{
		ctx:    ctx,
		grid:   grid,
		step:   step,
		delay:  opts.Delay,
		scale:  opts.Scale,
		canvas: ebiten.NewImage(grid.Size(), grid.Size()),
	}

	size := grid.Size() * opts.Scale
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(size, size)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[ui.Run] window closed with error")
	}
	return g.err
}

// Update handles keys and advances the simulation once the delay has elapsed
func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if g.done || (g.paused && !g.tickOnce) || time.Since(g.last) < g.delay {
		return nil
	}
	g.tickOnce = false
	g.last = time.Now()

	done, err := g.step(g.ctx)
	if err != nil {
		g.err = err
		return ebiten.Termination
	}
	g.done = done
	return nil
}

// Draw paints one pixel per cell and scales the canvas up to the window
func (g *game) Draw(screen *ebiten.Image) {
	size := g.grid.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g.grid.Get(row, col) {
				g.canvas.Set(col, row, aliveColor)
			} else {
				g.canvas.Set(col, row, deadColor)
			}
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.canvas, op)
}

// Layout keeps the logical screen at grid size times scale
func (g *game) Layout(int, int) (int, int) {
	size := g.grid.Size() * g.scale
	return size, size
}
