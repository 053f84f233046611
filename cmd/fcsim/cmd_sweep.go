package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	fuelcell "github.com/sarveshm27/fuelcellsimulation"
)

var sweepFlags struct {
	to   float64
	step float64
	out  string
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the flow rate and export the readings as CSV",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().Float64Var(&sweepFlags.to, "to", 13, "sweep target flow rate in L/min")
	sweepCmd.Flags().Float64Var(&sweepFlags.step, "step", 0.5, "flow rate increment in L/min")
	sweepCmd.Flags().StringVar(&sweepFlags.out, "out", "", "output file (default: stdout)")
}

func runSweep(cmd *cobra.Command, args []string) error {

	model, err := newModel()
	if err != nil {
		return err
	}

	readings, err := model.Sweep(sweepFlags.to, sweepFlags.step, fuelcell.CelsiusToKelvin(cfg.tempC))
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	out := os.Stdout
	if sweepFlags.out != "" {
		f, err := os.Create(sweepFlags.out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := readings.WriteCSV(out); err != nil {
		return fmt.Errorf("failed to export readings: %w", err)
	}

	logger.Infof("exported %d readings", len(readings))
	return nil
}
