package main

import (
	"fmt"

	"github.com/katalvlaran/hyperweb/scc"
	"github.com/spf13/cobra"
)

var sccCmd = &cobra.Command{
	Use:   "scc BASENAME",
	Short: "Compute the strongly connected component decomposition",
	Args:  cobra.ExactArgs(1),
	RunE:  runSCC,
}

func init() {
	rootCmd.AddCommand(sccCmd)
}

func runSCC(cmd *cobra.Command, args []string) error {
	basename := args[0]

	g, err := loadGraph(basename)
	if err != nil {
		return err
	}

	dec, err := scc.Tarjan(g)
	if err != nil {
		return fmt.Errorf("hyperweb: computing SCC decomposition: %w", err)
	}

	log.Info("scc decomposition computed",
		"basename", basename,
		"nodes", g.NumNodes(),
		"components", dec.NumComponents())

	for c, members := range dec.Members() {
		fmt.Printf("component %d (%d members):", c, len(members))
		for _, v := range members {
			fmt.Printf(" %d", v)
		}
		fmt.Println()
	}
	return nil
}
