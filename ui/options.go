package ui

import (
	"context"
	"time"
)

// Stepper advances the simulation by one generation and reports whether the run is over
type Stepper func(ctx context.Context) (done bool, err error)

// Options controls the window renderer
type Options struct {
	Title string
	Scale int
	Delay time.Duration
}
