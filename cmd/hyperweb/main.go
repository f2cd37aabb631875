package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var log = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "hyperweb",
	Short: "Graph analytics over immutable directed graphs",
	Long: `hyperweb runs the three operations this module implements against a
graph loaded from a basename path (basename+".arcs"):

  scc        strongly connected component decomposition
  diameter   exact radius/diameter via ExactSumSweep
  hyperball  approximate neighbourhood function and centralities`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
