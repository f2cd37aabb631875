// Package bruteforce computes all-pairs shortest distances by Floyd-Warshall
// over a graph.Graph, used only by test code in sumsweep to
// check ExactSumSweep's radius/diameter/eccentricity output against a
// trusted ground truth. It is never imported by production
// code: O(N^3) time and O(N^2) memory make it unsuitable beyond small test
// graphs.
package bruteforce
