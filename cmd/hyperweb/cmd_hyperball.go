package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hyperweb/graph"
	"github.com/katalvlaran/hyperweb/hyperball"
	"github.com/spf13/cobra"
)

var hyperballLog2M uint

var hyperballCmd = &cobra.Command{
	Use:   "hyperball BASENAME",
	Short: "Compute the approximate neighbourhood function and centralities",
	Args:  cobra.ExactArgs(1),
	RunE:  runHyperball,
}

func init() {
	hyperballCmd.Flags().UintVar(&hyperballLog2M, "log2m", 6,
		"log2 of the number of HyperLogLog registers per counter")
	rootCmd.AddCommand(hyperballCmd)
}

func runHyperball(cmd *cobra.Command, args []string) error {
	basename := args[0]

	g, err := loadGraph(basename)
	if err != nil {
		return err
	}
	transpose := g.Transpose()

	hb, err := hyperball.New(g, transpose,
		hyperball.WithLog2NumRegisters(hyperballLog2M),
		hyperball.WithCumulativeDegree(graph.NewCumulativeOutDegree(g)),
		hyperball.WithSumOfDistances(),
		hyperball.WithHarmonicCentrality(),
	)
	if err != nil {
		return fmt.Errorf("hyperweb: constructing HyperBall: %w", err)
	}
	if err := hb.Run(context.Background()); err != nil {
		return fmt.Errorf("hyperweb: running HyperBall: %w", err)
	}

	nf, err := hb.NeighbourhoodFunction()
	if err != nil {
		return fmt.Errorf("hyperweb: reading neighbourhood function: %w", err)
	}
	log.Info("hyperball computed", "basename", basename, "nodes", g.NumNodes(), "iterations", len(nf))
	fmt.Printf("neighbourhood function (%d iterations): %v\n", len(nf), nf)

	for v := 0; v < g.NumNodes(); v++ {
		closeness, err := hb.Closeness(v)
		if err != nil {
			return fmt.Errorf("hyperweb: reading closeness(%d): %w", v, err)
		}
		harmonic, err := hb.HarmonicCentrality(v)
		if err != nil {
			return fmt.Errorf("hyperweb: reading harmonic centrality(%d): %w", v, err)
		}
		fmt.Printf("node %d: closeness=%g harmonic=%g\n", v, closeness, harmonic)
	}
	return nil
}
