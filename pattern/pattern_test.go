package pattern

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/Subodh07301/game-of-life/model"
)

func newGrid(t *testing.T, size int) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(size)
	if err != nil {
		t.Fatalf("NewGrid(%d): %v", size, err)
	}
	return g
}

func TestPlaceCenteredGlider(t *testing.T) {
	g := newGrid(t, 25)
	if err := PlaceCentered(g, Glider); err != nil {
		t.Fatalf("PlaceCentered returned error: %v", err)
	}

	expected := map[[2]int]bool{
		{12, 13}: true, {13, 14}: true, {14, 12}: true, {14, 13}: true, {14, 14}: true,
	}
	if g.CountLivingCells() != len(expected) {
		t.Fatalf("%d living cells, expected %d", g.CountLivingCells(), len(expected))
	}
	for c := range expected {
		if !g.Get(c[0], c[1]) {
			t.Errorf("cell %v is dead, expected alive", c)
		}
	}
}

func TestPlaceOutOfBoundsLeavesGridUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		p      Pattern
		origin Offset
	}{
		{"glider centred in 3x3", 3, Glider, Offset{1, 1}},
		{"glider centred in 4x4", 4, Glider, Offset{2, 2}},
		{"blinker at left edge", 5, Blinker, Offset{2, 0}},
		{"block at negative origin", 5, Block, Offset{-1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(t, tt.size)
			err := Place(g, tt.p, tt.origin)
			if !errors.Is(err, ErrPatternOutOfBounds) {
				t.Fatalf("Place error = %v, expected ErrPatternOutOfBounds", err)
			}
			var oob *OutOfBoundsError
			if !errors.As(err, &oob) || oob.Pattern != tt.p.Name || oob.Size != tt.size {
				t.Fatalf("unexpected error detail: %#v", err)
			}
			if g.CountLivingCells() != 0 {
				t.Fatalf("failed placement left %d living cells", g.CountLivingCells())
			}
		})
	}
}

func TestPlaceCenteredOnSmallestFittingGrid(t *testing.T) {
	// mid = 2 puts the glider in rows and columns 2..4
	g := newGrid(t, 5)
	if err := PlaceCentered(g, Glider); err != nil {
		t.Fatalf("PlaceCentered on 5x5 returned error: %v", err)
	}
	if !g.Get(4, 4) || !g.Get(2, 3) {
		t.Fatal("glider not placed at the centre")
	}
}

func TestPlaceKeepsExistingCells(t *testing.T) {
	g := newGrid(t, 8)
	if err := Place(g, Block, Offset{0, 0}); err != nil {
		t.Fatal(err)
	}
	if err := Place(g, Blinker, Offset{5, 4}); err != nil {
		t.Fatal(err)
	}
	if g.CountLivingCells() != 7 {
		t.Fatalf("%d living cells, expected 7", g.CountLivingCells())
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"glider", "blinker", "block"} {
		p, err := Lookup(name)
		if err != nil || p.Name != name {
			t.Errorf("Lookup(%q) = %v, %v", name, p.Name, err)
		}
	}
	if _, err := Lookup("spaceship"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Lookup(spaceship) error = %v, expected ErrUnknownPattern", err)
	}
	if names := Names(); len(names) != 3 || names[0] != "blinker" {
		t.Errorf("Names() = %v", names)
	}
}

func TestRandomizeIsDeterministic(t *testing.T) {
	a, b := newGrid(t, 16), newGrid(t, 16)
	if err := Randomize(a, 0.3, 7); err != nil {
		t.Fatal(err)
	}
	if err := Randomize(b, 0.3, 7); err != nil {
		t.Fatal(err)
	}
	if a.Hash() != b.Hash() {
		t.Fatal("same seed produced different grids")
	}

	if err := Randomize(a, 0, 7); err != nil || a.CountLivingCells() != 0 {
		t.Fatalf("density 0 left %d cells (err %v)", a.CountLivingCells(), err)
	}
	if err := Randomize(a, 1, 7); err != nil || a.CountLivingCells() != 256 {
		t.Fatalf("density 1 left %d cells (err %v)", a.CountLivingCells(), err)
	}
	if err := Randomize(a, 1.5, 7); !errors.Is(err, ErrInvalidDensity) {
		t.Fatalf("density 1.5 error = %v", err)
	}
}
