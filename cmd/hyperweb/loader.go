package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hyperweb/graph"
)

// loadGraph reads a graph from basename+".arcs": a whitespace-separated
// text format with the node count on the first non-blank, non-comment
// line, followed by one "u v" pair per arc. Lines starting with "#" are
// comments. This is a stand-in for the cumulative-degree/mmap webgraph
// loader treated as an external collaborator the core never
// implements; production callers are expected to supply their own
// graph.Graph backed by whatever storage they use.
func loadGraph(basename string) (*graph.CSR, error) {
	f, err := os.Open(basename + ".arcs")
	if err != nil {
		return nil, fmt.Errorf("hyperweb: opening %s.arcs: %w", basename, err)
	}
	defer f.Close()

	var n int
	haveN := false
	var arcs [][2]graph.NI

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if !haveN {
			if len(fields) != 1 {
				return nil, fmt.Errorf("hyperweb: %s.arcs:%d: expected node count, got %q", basename, lineNo, line)
			}
			n, err = strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("hyperweb: %s.arcs:%d: invalid node count: %w", basename, lineNo, err)
			}
			haveN = true
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("hyperweb: %s.arcs:%d: expected \"u v\", got %q", basename, lineNo, line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("hyperweb: %s.arcs:%d: invalid source node: %w", basename, lineNo, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("hyperweb: %s.arcs:%d: invalid target node: %w", basename, lineNo, err)
		}
		arcs = append(arcs, [2]graph.NI{graph.NI(u), graph.NI(v)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hyperweb: reading %s.arcs: %w", basename, err)
	}
	if !haveN {
		return nil, fmt.Errorf("hyperweb: %s.arcs: missing node count", basename)
	}

	g, err := graph.NewCSR(n, arcs)
	if err != nil {
		return nil, fmt.Errorf("hyperweb: building graph from %s.arcs: %w", basename, err)
	}
	return g, nil
}
