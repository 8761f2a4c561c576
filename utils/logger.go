package utils

import (
	"io"
	"log"
	"time"
)

// LogObserver writes grid and run events to a logger
type LogObserver struct {
	logger *log.Logger
	debug  bool
}

// NewLogObserver logs to w with the "gol " prefix; debug also logs every grid update
func NewLogObserver(w io.Writer, debug bool) *LogObserver {
	return &LogObserver{
		logger: log.New(w, "gol ", log.LstdFlags|log.Lmsgprefix),
		debug:  debug,
	}
}

func (o *LogObserver) GridCreated(size int) {
	o.logger.Printf("created a new %dx%d grid", size, size)
}

func (o *LogObserver) GridUpdated(size, living int) {
	if o.debug {
		o.logger.Printf("grid updated: %dx%d, %d living cells", size, size, living)
	}
}

func (o *LogObserver) GridRejected(err error) {
	o.logger.Printf("grid rejected update: %v", err)
}

// Seeded logs the starting pattern
func (o *LogObserver) Seeded(pattern string, living int) {
	o.logger.Printf("initialized grid with %s pattern (%d living cells)", pattern, living)
}

// Generation logs the start of a generation
func (o *LogObserver) Generation(n, living int) {
	o.logger.Printf("generation: %d (%d living cells)", n, living)
}

// Stagnated logs an early stop caused by a repeating state
func (o *LogObserver) Stagnated(n int) {
	o.logger.Printf("grid stagnated at generation %d, stopping", n)
}

// Completed logs the end-of-run summary
func (o *LogObserver) Completed(stats *Stats) {
	o.logger.Printf("simulation completed: %d generations in %s (%.1f gen/sec, %.1f avg population)",
		stats.TotalGenerations, stats.Runtime().Round(time.Millisecond),
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// Error logs a failure
func (o *LogObserver) Error(err error) {
	o.logger.Printf("error during simulation: %v", err)
}
