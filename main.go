package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sheikhrachel/go-gol-cosmos/model"
)

const (
	exitSuccess = 0
	exitFailure = 1

	defaultConfigFile = "config.json"
	configEnv         = "GOL_CONFIG"
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

// run executes the program and returns its exit status. Every message,
// diagnostics included, goes to out.
func run(args []string, out io.Writer) int {
	if len(args) != 3 {
		fmt.Fprintf(out, "Error: Wrong input! Usage: %s input_file output_file\n", programName(args))
		return exitFailure
	}
	inputFile, outputFile := args[1], args[2]

	config, err := loadConfig(out)
	if err != nil {
		fmt.Fprintf(out, "Error: Invalid configuration: %v\n", err)
		return exitFailure
	}

	grid, err := model.ParseFile(inputFile, model.ParseOptions{Strict: config.StrictParse})
	if err != nil {
		fmt.Fprintf(out, "Error: Cannot read input file! %v\n", err)
		return exitFailure
	}

	renderer := &model.TerminalRenderer{Out: out}
	if config.EchoGrids {
		renderer.Display(grid)
	}

	sim, stats := initializeSimulation(config, grid)
	defer sim.Release()

	if _, err = sim.Run(config.Generations); err != nil {
		fmt.Fprintf(out, "Error: Simulation failed! %v\n", err)
		return exitFailure
	}

	result := sim.Result()
	if config.EchoGrids {
		renderer.Display(result)
	}

	if err = model.WriteFile(outputFile, result); err != nil {
		fmt.Fprintf(out, "Error: Cannot write output file! %v\n", err)
		return exitFailure
	}

	if config.Verbose {
		displayRunSummary(out, sim, stats)
	}
	return exitSuccess
}

func programName(args []string) string {
	if len(args) == 0 {
		return "game_of_life"
	}
	return args[0]
}
