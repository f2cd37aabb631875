package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hyperweb/sumsweep"
	"github.com/spf13/cobra"
)

var diameterCmd = &cobra.Command{
	Use:   "diameter BASENAME",
	Short: "Compute exact radius and diameter via ExactSumSweep",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiameter,
}

func init() {
	rootCmd.AddCommand(diameterCmd)
}

func runDiameter(cmd *cobra.Command, args []string) error {
	basename := args[0]

	g, err := loadGraph(basename)
	if err != nil {
		return err
	}
	transpose := g.Transpose()

	ss, err := sumsweep.New(g, transpose, sumsweep.RadiusDiameter)
	if err != nil {
		return fmt.Errorf("hyperweb: constructing ExactSumSweep: %w", err)
	}
	if err := ss.Run(context.Background()); err != nil {
		return fmt.Errorf("hyperweb: running ExactSumSweep: %w", err)
	}

	radius, err := ss.Radius()
	if err != nil {
		return fmt.Errorf("hyperweb: reading radius: %w", err)
	}
	diameter, err := ss.Diameter()
	if err != nil {
		return fmt.Errorf("hyperweb: reading diameter: %w", err)
	}

	log.Info("exact sum sweep computed", "basename", basename, "radius", radius, "diameter", diameter)
	fmt.Printf("radius: %d\ndiameter: %d\n", radius, diameter)
	return nil
}
