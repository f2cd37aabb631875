package bruteforce

import "github.com/katalvlaran/hyperweb/graph"

// Unreachable marks the absence of a path between two nodes in Distances'
// output, standing in for the Rust reference's infinity sentinel.
const Unreachable = -1

// Distances computes all-pairs shortest-path distances over g by
// Floyd-Warshall. dist[u][v] is Unreachable if v is not reachable from u.
func Distances(g graph.Graph) [][]int {
	n := g.NumNodes()
	dist := make([][]int, n)
	for u := range dist {
		dist[u] = make([]int, n)
		for v := range dist[u] {
			if u == v {
				dist[u][v] = 0
			} else {
				dist[u][v] = Unreachable
			}
		}
	}
	for u := 0; u < n; u++ {
		for _, v := range g.Successors(graph.NI(u)) {
			if dist[u][v] == Unreachable || dist[u][v] > 1 {
				dist[u][v] = 1
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == Unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == Unreachable {
					continue
				}
				through := dist[i][k] + dist[k][j]
				if dist[i][j] == Unreachable || through < dist[i][j] {
					dist[i][j] = through
				}
			}
		}
	}
	return dist
}

// Eccentricity returns the forward eccentricity of v: the maximum finite
// distance from v to any node. A node that reaches no other node has
// eccentricity 0 (its distance to itself).
func Eccentricity(dist [][]int, v int) int {
	ecc := Unreachable
	for _, d := range dist[v] {
		if d != Unreachable && d > ecc {
			ecc = d
		}
	}
	return ecc
}

// RadiusDiameter returns the minimum and the maximum forward eccentricity
// over all nodes, ignoring Unreachable distances. The radius is not
// restricted to ExactSumSweep's radial vertices, so it matches
// ExactSumSweep's radius only on graphs where every node is radial (for
// example strongly connected graphs).
func RadiusDiameter(dist [][]int) (radius, diameter int) {
	radius = Unreachable
	diameter = Unreachable
	for v := range dist {
		ecc := Eccentricity(dist, v)
		if ecc == Unreachable {
			continue
		}
		if radius == Unreachable || ecc < radius {
			radius = ecc
		}
		if ecc > diameter {
			diameter = ecc
		}
	}
	return radius, diameter
}
