// Package sccdag builds the condensation DAG over an scc.Decomposition: one
// node per component, one representative bridge arc per DAG edge. It is
// laid out the same way graph.CSR lays out adjacency: a per-component
// offset table plus a single flattened array of (target, start, end)
// tuples sorted by source component, so that Children(c) is an O(1) slice
// view, mirroring graph.CumulativeOutDegree's offset-table idiom.
package sccdag
