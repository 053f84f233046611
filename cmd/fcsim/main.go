package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	fuelcell "github.com/sarveshm27/fuelcellsimulation"
)

type config struct {
	stack      string
	configPath string
	tempC      float64
	debug      bool
}

var (
	cfg    config
	logger fuelcell.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fcsim",
	Short: "PEM fuel cell stack bench simulator",
	Long: `fcsim models the steady-state electrical behavior of a PEM fuel cell
stack as a function of hydrogen flow rate and temperature, for operator
training and lab reporting.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = fuelcell.NewDefaultLogger(cfg.debug)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfg.stack, "stack", "primary", "built-in stack to model (primary or compact)")
	rootCmd.PersistentFlags().StringVar(&cfg.configPath, "config", "", "yaml stack definition (overrides --stack)")
	rootCmd.PersistentFlags().Float64Var(&cfg.tempC, "temp", 30, "stack temperature in °C")
	rootCmd.PersistentFlags().BoolVar(&cfg.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(evalCmd, sweepCmd, recordCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newModel builds the model from the persistent flags
func newModel() (*fuelcell.Model, error) {

	stackCfg := fuelcell.PrimaryStack()
	switch {
	case cfg.configPath != "":
		loaded, err := fuelcell.LoadStackConfig(cfg.configPath)
		if err != nil {
			return nil, err
		}
		stackCfg = loaded
	case cfg.stack == "compact":
		stackCfg = fuelcell.CompactStack()
	case cfg.stack != "primary":
		return nil, fmt.Errorf("unknown stack %q (want primary or compact)", cfg.stack)
	}

	logger.Debugf("modeling stack %s (%d cells, %.1f A rated)",
		stackCfg.Name, stackCfg.Cells, stackCfg.RatedCurrent)

	return fuelcell.New(
		fuelcell.WithConfig(stackCfg),
		fuelcell.WithLogger(logger),
	), nil
}
