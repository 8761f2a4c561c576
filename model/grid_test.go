package model

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type recordingObserver struct {
	created  []int
	updated  []int
	rejected []error
}

func (o *recordingObserver) GridCreated(size int)         { o.created = append(o.created, size) }
func (o *recordingObserver) GridUpdated(size, living int) { o.updated = append(o.updated, living) }
func (o *recordingObserver) GridRejected(err error)       { o.rejected = append(o.rejected, err) }

func TestNewGridStartsDead(t *testing.T) {
	g, err := NewGrid(4)
	if err != nil {
		t.Fatalf("NewGrid(4) returned error: %v", err)
	}
	if g.Size() != 4 {
		t.Fatalf("Size() = %d, expected 4", g.Size())
	}
	state := g.State()
	if len(state) != 4 {
		t.Fatalf("State() has %d rows, expected 4", len(state))
	}
	for row := range state {
		if len(state[row]) != 4 {
			t.Fatalf("row %d has %d columns, expected 4", row, len(state[row]))
		}
		for col, alive := range state[row] {
			if alive {
				t.Fatalf("cell (%d,%d) alive in a new grid", row, col)
			}
		}
	}
}

func TestNewGridRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -25} {
		obs := &recordingObserver{}
		g, err := NewGrid(size, WithObserver(obs))
		if g != nil {
			t.Errorf("NewGrid(%d) returned a grid", size)
		}
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewGrid(%d) error = %v, expected ErrInvalidSize", size, err)
		}
		if len(obs.created) != 0 || len(obs.rejected) != 1 {
			t.Errorf("NewGrid(%d) observer saw created=%v rejected=%v", size, obs.created, obs.rejected)
		}
	}
}

func TestStateIsACopy(t *testing.T) {
	g, _ := NewGrid(3)
	state := g.State()
	state[1][1] = true

	if g.Get(1, 1) {
		t.Fatal("mutating State() result changed the grid")
	}
}

func TestSetStateCopiesInput(t *testing.T) {
	g, _ := NewGrid(3)
	m := NewMatrix(3)
	m[0][2] = true
	if err := g.SetState(m); err != nil {
		t.Fatalf("SetState returned error: %v", err)
	}

	m[0][2] = false
	m[2][2] = true
	if !g.Get(0, 2) || g.Get(2, 2) {
		t.Fatal("grid aliases the matrix passed to SetState")
	}
}

func TestSetStateRejectsWrongShape(t *testing.T) {
	ragged := NewMatrix(3)
	ragged[2] = make([]bool, 2)

	tests := []struct {
		name       string
		m          [][]bool
		rows, cols int
	}{
		{"too few rows", NewMatrix(2), 2, 2},
		{"too many rows", NewMatrix(4), 4, 4},
		{"empty", nil, 0, 0},
		{"ragged last row", ragged, 3, 2},
		{"wide rows", [][]bool{make([]bool, 4), make([]bool, 4), make([]bool, 4)}, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &recordingObserver{}
			g, _ := NewGrid(3, WithObserver(obs))
			before := NewMatrix(3)
			before[1][0] = true
			if err := g.SetState(before); err != nil {
				t.Fatalf("SetState(valid) returned error: %v", err)
			}

			err := g.SetState(tt.m)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("SetState error = %v, expected ErrDimensionMismatch", err)
			}
			var dm *DimensionMismatchError
			if !errors.As(err, &dm) {
				t.Fatalf("error %v is not a *DimensionMismatchError", err)
			}
			if dm.Expected != 3 || dm.Rows != tt.rows || dm.Cols != tt.cols {
				t.Errorf("got %+v, expected 3 vs %dx%d", dm, tt.rows, tt.cols)
			}
			if !g.Get(1, 0) || g.CountLivingCells() != 1 {
				t.Error("rejected update changed the grid")
			}
			if len(obs.rejected) != 1 {
				t.Errorf("observer saw %d rejections, expected 1", len(obs.rejected))
			}
		})
	}
}

func TestObserverSeesLifecycle(t *testing.T) {
	obs := &recordingObserver{}
	g, _ := NewGrid(5, WithObserver(obs))

	m := NewMatrix(5)
	m[2][1], m[2][2], m[2][3] = true, true, true
	if err := g.SetState(m); err != nil {
		t.Fatalf("SetState returned error: %v", err)
	}

	if len(obs.created) != 1 || obs.created[0] != 5 {
		t.Errorf("created = %v, expected [5]", obs.created)
	}
	if len(obs.updated) != 1 || obs.updated[0] != 3 {
		t.Errorf("updated = %v, expected [3]", obs.updated)
	}
}

func TestGetOutOfRangeIsDead(t *testing.T) {
	g, _ := NewGrid(2)
	m := NewMatrix(2)
	m[0][0], m[0][1], m[1][0], m[1][1] = true, true, true, true
	_ = g.SetState(m)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.Get(c[0], c[1]) {
			t.Errorf("Get(%d,%d) = true outside the grid", c[0], c[1])
		}
	}
}

func TestHashAndString(t *testing.T) {
	a, _ := NewGrid(3)
	b, _ := NewGrid(3)
	if a.Hash() != b.Hash() {
		t.Fatal("identical grids hash differently")
	}

	m := NewMatrix(3)
	m[0][1] = true
	_ = b.SetState(m)
	if a.Hash() == b.Hash() {
		t.Fatal("different grids hash the same")
	}

	expected := "⬜⬛⬜\n⬜⬜⬜\n⬜⬜⬜\n"
	if got := b.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if n := strings.Count(b.String(), "\n"); n != 3 {
		t.Errorf("String() has %d lines, expected 3", n)
	}
}
