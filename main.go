package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/Subodh07301/game-of-life/model"
	"github.com/Subodh07301/game-of-life/ui"
	"github.com/Subodh07301/game-of-life/utils"
)

const defaultConfigFile = "config.json"

func main() {
	log := utils.NewLogObserver(os.Stderr, os.Getenv("GOL_DEBUG") != "")

	config, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, log); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads the config file named by -config, then re-applies any flags set explicitly
func loadConfig(args []string) (utils.Config, error) {
	var (
		fs     = flag.NewFlagSet("game-of-life", flag.ContinueOnError)
		parsed = utils.DefaultConfig()
		file   = fs.String("config", defaultConfigFile, "JSON configuration file")
	)
	parsed.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return parsed, errors.Wrap(err, "[loadConfig] failed to parse flags")
	}

	config, err := utils.LoadConfig(*file)
	if err != nil {
		if *file != defaultConfigFile || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Fprintln(os.Stderr, "Using default configuration (config.json not found)")
		config, err = utils.DefaultConfig(), nil
	}

	overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
	config.Bind(overrides)
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}
		err = overrides.Set(f.Name, f.Value.String())
	})
	if err != nil {
		return config, errors.Wrap(err, "[loadConfig] failed to apply flag overrides")
	}

	return config, config.Validate()
}

// run seeds the grid and drives it to completion in the terminal or a window
func run(ctx context.Context, config utils.Config, log *utils.LogObserver) error {
	var r renderer
	if !config.Window {
		r = model.NewTerminalRenderer(os.Stdout, config.ClearScreen)
	}

	sim, err := newSimulation(config, log, r)
	if err != nil {
		return err
	}

	if config.Window {
		err = ui.Run(ctx, sim.grid, sim.step, ui.Options{
			Title: fmt.Sprintf("Game of Life %dx%d", config.Size, config.Size),
			Scale: config.Scale,
			Delay: config.Delay.Std(),
		})
	} else {
		err = sim.run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if ctx.Err() != nil {
		fmt.Println("\n🛑 Shutting down gracefully...")
	}
	log.Completed(sim.stats)
	return nil
}
