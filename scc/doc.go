// Package scc decomposes a directed graph.Graph into strongly connected
// components, exposing a per-node component id and a derived component-size
// table.
//
// Tarjan is the production default: one DFS pass with preorder indices,
// low-links, and an explicit open-node stack, assigning ids so that
// ascending id order is a valid topological order of the condensation (the
// first component Tarjan closes, a sink of the condensation, gets the
// highest id; the last closed, a source, gets id 0). ExactSumSweep's
// SCC-DAG traversal relies on this property.
//
// Kosaraju is kept as an independently structured, independently tested
// equivalent: a forward DFS completion order followed by a DFS over the
// transpose rooted at nodes in decreasing completion time. Both algorithms
// produce the same partition of nodes into components; only Tarjan's
// id-ordering property is relied upon elsewhere in this module.
package scc
