package main

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Subodh07301/game-of-life/model"
	"github.com/Subodh07301/game-of-life/pattern"
	"github.com/Subodh07301/game-of-life/rules"
	"github.com/Subodh07301/game-of-life/utils"
)

// renderer draws the current generation; nil when a window does the drawing
type renderer interface {
	Display(g *model.Grid) error
}

// simulation holds the state of one run
type simulation struct {
	config   utils.Config
	grid     *model.Grid
	pool     *model.MatrixPool
	history  *model.History
	renderer renderer
	stats    *utils.Stats
	log      *utils.LogObserver

	generation    int
	lastFrameTime time.Time
}

// newSimulation creates the grid and seeds it with the configured pattern
func newSimulation(config utils.Config, log *utils.LogObserver, r renderer) (*simulation, error) {
	grid, err := model.NewGrid(config.Size, model.WithObserver(log))
	if err != nil {
		return nil, errors.Wrap(err, "[newSimulation] failed to create grid")
	}
	if err = seedGrid(grid, config); err != nil {
		return nil, err
	}
	log.Seeded(config.Pattern, grid.CountLivingCells())

	return &simulation{
		config:        config,
		grid:          grid,
		pool:          model.NewMatrixPool(),
		history:       model.NewHistory(config.HistorySize),
		renderer:      r,
		stats:         utils.NewStats(),
		log:           log,
		lastFrameTime: time.Now(),
	}, nil
}

// seedGrid applies the configured starting pattern
func seedGrid(grid *model.Grid, config utils.Config) error {
	if config.Pattern == utils.PatternRandom {
		return errors.Wrap(pattern.Randomize(grid, config.Density, config.Seed), "[seedGrid] failed to randomize grid")
	}

	p, err := pattern.Lookup(config.Pattern)
	if err != nil {
		return errors.Wrap(err, "[seedGrid]")
	}
	if err = pattern.PlaceCentered(grid, p); err != nil {
		return errors.Wrapf(err, "[seedGrid] failed to place %s", p.Name)
	}
	return nil
}

// step renders the current generation and replaces it with the next one.
// It reports done once the generation limit is reached or the grid stagnates.
func (s *simulation) step(ctx context.Context) (bool, error) {
	if s.generation >= s.config.Generations {
		return true, nil
	}

	s.log.Generation(s.generation, s.grid.CountLivingCells())
	if s.renderer != nil {
		if err := s.renderer.Display(s.grid); err != nil {
			return true, errors.Wrap(err, "[step] failed to render grid")
		}
	}

	if s.config.StopOnStagnation {
		if s.history.IsStagnant(s.grid) {
			s.log.Stagnated(s.generation)
			return true, nil
		}
		s.history.Record(s.grid)
	}

	next, err := s.nextGeneration(ctx)
	if err != nil {
		return true, err
	}
	defer model.MatrixToPool(next, s.pool)

	if err = s.grid.SetState(next); err != nil {
		return true, errors.Wrap(err, "[step] failed to replace grid state")
	}

	s.generation++
	frameStart := time.Now()
	s.stats.Update(s.generation, s.grid.CountLivingCells(), frameStart.Sub(s.lastFrameTime))
	s.lastFrameTime = frameStart

	return s.generation >= s.config.Generations, nil
}

// nextGeneration computes the following generation into a pooled buffer
func (s *simulation) nextGeneration(ctx context.Context) ([][]bool, error) {
	next := s.pool.Get(s.grid.Size())
	if s.config.Workers == 1 {
		rules.NextGenerationInto(s.grid, next)
		return next, nil
	}
	if err := rules.NextGenerationParallelInto(ctx, s.grid, next, s.config.Workers); err != nil {
		model.MatrixToPool(next, s.pool)
		return nil, errors.Wrap(err, "[nextGeneration] parallel evaluation stopped")
	}
	return next, nil
}

// run drives the simulation in the terminal, sleeping between generations
func (s *simulation) run(ctx context.Context) error {
	for {
		done, err := s.step(ctx)
		if err != nil || done {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.config.Delay.Std()):
		}
	}
}
