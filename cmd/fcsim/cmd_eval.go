package main

import (
	"fmt"

	"github.com/spf13/cobra"

	fuelcell "github.com/sarveshm27/fuelcellsimulation"
)

var evalFlow float64

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the stack at a single operating point",
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().Float64Var(&evalFlow, "flow", 8.5, "hydrogen flow rate in L/min")
}

func runEval(cmd *cobra.Command, args []string) error {

	model, err := newModel()
	if err != nil {
		return err
	}

	reading, err := model.Evaluate(evalFlow, fuelcell.CelsiusToKelvin(cfg.tempC))
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	fmt.Println(reading)
	return nil
}
