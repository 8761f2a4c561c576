package rules

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// State is the read-only view of a square generation the rules operate on
type State interface {
	Size() int
	Get(row, col int) bool
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 neighbors, a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// CountLiveNeighbors counts living cells in the 3x3 block around (row, col), clamped to the grid.
// Corners see 3 candidates, other edge cells 5, interior cells 8.
func CountLiveNeighbors(s State, row, col int) int {
	count := 0
	size := s.Size()

	minRow := max(0, row-1)
	maxRow := min(size-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(size-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if s.Get(r, c) {
				count++
			}
		}
	}

	return count
}

// NextGeneration computes the following generation into a new matrix without touching s
func NextGeneration(s State) [][]bool {
	size := s.Size()
	next := make([][]bool, size)
	for i := range next {
		next[i] = make([]bool, size)
	}
	NextGenerationInto(s, next)
	return next
}

// NextGenerationInto writes the following generation of s into dst, which must be size x size
func NextGenerationInto(s State, dst [][]bool) {
	size := s.Size()
	mustFit(dst, size)
	computeRows(s, dst, 0, size)
}

// NextGenerationParallel splits rows into bands evaluated concurrently.
// Workers only read s and only write their own rows of the new matrix.
func NextGenerationParallel(ctx context.Context, s State, workers int) ([][]bool, error) {
	size := s.Size()
	next := make([][]bool, size)
	for i := range next {
		next[i] = make([]bool, size)
	}
	if err := NextGenerationParallelInto(ctx, s, next, workers); err != nil {
		return nil, err
	}
	return next, nil
}

// NextGenerationParallelInto is NextGenerationParallel writing into a caller buffer
func NextGenerationParallelInto(ctx context.Context, s State, dst [][]bool, workers int) error {
	size := s.Size()
	mustFit(dst, size)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	eg, ctx := errgroup.WithContext(ctx)
	rowsPerWorker := (size + workers - 1) / workers // Ceiling division

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, size)
		)
		if startRow >= size {
			break
		}

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			computeRows(s, dst, startRow, endRow)
			return nil
		})
	}

	return eg.Wait()
}

func computeRows(s State, dst [][]bool, startRow, endRow int) {
	size := s.Size()
	for row := startRow; row < endRow; row++ {
		for col := 0; col < size; col++ {
			dst[row][col] = ApplyConwayRules(CountLiveNeighbors(s, row, col), s.Get(row, col))
		}
	}
}

func mustFit(dst [][]bool, size int) {
	if len(dst) != size {
		panic(fmt.Sprintf("rules: destination has %d rows, want %d", len(dst), size))
	}
	for _, row := range dst {
		if len(row) != size {
			panic(fmt.Sprintf("rules: destination row has %d columns, want %d", len(row), size))
		}
	}
}
