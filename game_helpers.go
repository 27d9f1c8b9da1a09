package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-cosmos/model"
	"github.com/sheikhrachel/go-gol-cosmos/utils"
)

// loadConfig reads the file named by GOL_CONFIG, or config.json when it is
// unset. A missing config.json falls back to defaults.
func loadConfig(out io.Writer) (utils.Config, error) {
	if path := os.Getenv(configEnv); path != "" {
		return utils.LoadConfig(path)
	}

	config, err := utils.LoadConfig(defaultConfigFile)
	if os.IsNotExist(errors.Cause(err)) {
		return utils.DefaultConfig(), nil
	}
	if err != nil {
		return config, err
	}

	if config.Verbose {
		fmt.Fprintf(out, "Using configuration from %s\n", defaultConfigFile)
	}
	return config, nil
}

// initializeSimulation sets up the simulation and its stats
func initializeSimulation(config utils.Config, grid *model.Grid) (*model.Simulation, *utils.Stats) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	stats := utils.NewStats()
	opts := []model.Option{
		model.WithWorkers(config.Workers),
		model.WithPool(pool),
	}
	if config.Verbose {
		opts = append(opts, model.WithObserver(func(generation int, current *model.Grid, elapsed time.Duration) {
			stats.Update(generation, current.CountLivingCells(), elapsed)
		}))
	}

	return model.NewSimulation(grid, opts...), stats
}

// displayRunSummary shows the final run information
func displayRunSummary(out io.Writer, sim *model.Simulation, stats *utils.Stats) {
	result := sim.Result()
	fmt.Fprintf(out, "Grid: %dx%d | Generations: %d | Result buffer: %s\n",
		result.Rows(), result.Cols(), sim.Generation(), sim.Current())
	fmt.Fprintf(out, "Living: %d | Avg Pop: %.1f | Performance: %.1f gen/sec | Runtime: %.3fs\n",
		result.CountLivingCells(), stats.AveragePopulation, stats.GenerationsPerSecond, stats.Runtime().Seconds())
	fmt.Fprintf(out, "Hash: %s\n", result.GetGridHash())
}
