package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/Subodh07301/game-of-life/pattern"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a simulation run
type Config struct {
	Size             int      `json:"size"`
	Generations      int      `json:"generations"`
	Delay            Duration `json:"delay"`
	Pattern          string   `json:"pattern"`
	Workers          int      `json:"workers"`
	Seed             int64    `json:"seed"`
	Density          float64  `json:"density"`
	ClearScreen      bool     `json:"clear_screen"`
	StopOnStagnation bool     `json:"stop_on_stagnation"`
	HistorySize      int      `json:"history_size"`
	Window           bool     `json:"window"`
	Scale            int      `json:"scale"`
}

// PatternRandom seeds the grid with Randomize instead of a named pattern
const PatternRandom = "random"

// DefaultConfig returns a 25x25 glider run of 10 generations, half a second apart
func DefaultConfig() Config {
	return Config{
		Size:        25,
		Generations: 10,
		Delay:       Duration(500 * time.Millisecond),
		Pattern:     pattern.Glider.Name,
		Workers:     1,
		Seed:        42,
		Density:     0.15,
		HistorySize: 5,
		Scale:       16,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet, using current values as defaults
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "width and height of the square grid")
	fs.IntVar(&c.Generations, "generations", c.Generations, "number of generations to simulate")
	fs.Var(&c.Delay, "delay", "pause between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: glider, blinker, block or random")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands evaluated in parallel (1 = sequential, 0 = one per CPU)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for the random pattern")
	fs.BoolVar(&c.ClearScreen, "clear", c.ClearScreen, "clear the terminal before each generation")
	fs.BoolVar(&c.StopOnStagnation, "stop-on-stagnation", c.StopOnStagnation, "stop once the grid repeats a recent state")
	fs.IntVar(&c.HistorySize, "history", c.HistorySize, "recent states kept for stagnation detection")
	fs.BoolVar(&c.Window, "window", c.Window, "render in a window (requires the ebiten build tag)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per cell")
}

// Validate checks the configuration before a run
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size must be positive, got %d", c.Size)
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] generations must not be negative, got %d", c.Generations)
	case c.Delay < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] delay must not be negative, got %s", c.Delay)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] density must be within [0, 1], got %v", c.Density)
	case c.Window && c.Scale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] scale must be positive, got %d", c.Scale)
	}
	if c.Pattern != PatternRandom {
		if _, err := pattern.Lookup(c.Pattern); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] %v", err)
		}
	}
	return nil
}

// Duration is a time.Duration that reads "500ms" style strings from JSON and flags
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Set implements flag.Value
func (d *Duration) Set(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "[Duration.Set] bad duration %q", s)
	}
	*d = Duration(v)
	return nil
}

// MarshalJSON writes the duration as a string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a duration string or a number of nanoseconds
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.Set(s)
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] expected string or integer, got %s", data)
	}
	*d = Duration(n)
	return nil
}
