package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSize is returned when a grid is created with a non-positive size
	ErrInvalidSize = errors.New("grid size must be positive")
	// ErrDimensionMismatch is matched by every *DimensionMismatchError
	ErrDimensionMismatch = errors.New("grid size mismatch")
)

// DimensionMismatchError reports a replacement matrix that does not fit the grid
type DimensionMismatchError struct {
	Expected int
	Rows     int
	Cols     int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("grid size mismatch: expected %dx%d, found %dx%d",
		e.Expected, e.Expected, e.Rows, e.Cols)
}

// Is lets errors.Is(err, ErrDimensionMismatch) match
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// Grid is a fixed-size square board of alive/dead cells, indexed cells[row][col]
type Grid struct {
	size     int
	cells    [][]bool
	observer Observer
}

// Option configures a Grid at construction
type Option func(*Grid)

// WithObserver attaches an observer notified about grid events
func WithObserver(o Observer) Option {
	return func(g *Grid) {
		g.observer = o
	}
}

// NewGrid creates a size x size grid with every cell dead
func NewGrid(size int, opts ...Option) (*Grid, error) {
	g := &Grid{}
	for _, opt := range opts {
		opt(g)
	}
	if size <= 0 {
		err := errors.Wrapf(ErrInvalidSize, "[NewGrid] got size %d", size)
		g.notifyRejected(err)
		return nil, err
	}

	g.size = size
	g.cells = NewMatrix(size)
	if g.observer != nil {
		g.observer.GridCreated(size)
	}
	return g, nil
}

// NewMatrix allocates a dead size x size matrix
func NewMatrix(size int) [][]bool {
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return cells
}

// Size returns the fixed dimension of the grid
func (g *Grid) Size() int {
	return g.size
}

// Get returns the state of a cell; anything outside the grid is dead
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return false
	}
	return g.cells[row][col]
}

// State returns a copy of the current matrix
func (g *Grid) State() [][]bool {
	out := make([][]bool, g.size)
	for i, row := range g.cells {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// SetState replaces the grid contents with m.
// The whole matrix is validated first, so a rejected update leaves the grid untouched.
func (g *Grid) SetState(m [][]bool) error {
	if err := g.checkShape(m); err != nil {
		g.notifyRejected(err)
		return err
	}

	for i := range g.cells {
		copy(g.cells[i], m[i])
	}
	if g.observer != nil {
		g.observer.GridUpdated(g.size, g.CountLivingCells())
	}
	return nil
}

func (g *Grid) checkShape(m [][]bool) error {
	if len(m) != g.size {
		cols := 0
		if len(m) > 0 {
			cols = len(m[0])
		}
		return &DimensionMismatchError{Expected: g.size, Rows: len(m), Cols: cols}
	}
	for _, row := range m {
		if len(row) != g.size {
			return &DimensionMismatchError{Expected: g.size, Rows: len(m), Cols: len(row)}
		}
	}
	return nil
}

func (g *Grid) notifyRejected(err error) {
	if g.observer != nil {
		g.observer.GridRejected(err)
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid one row per line using the terminal symbols
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size*len(cellAlive) + 1))
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				b.WriteString(cellAlive)
			} else {
				b.WriteString(cellDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
