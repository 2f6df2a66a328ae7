package trail

import "github.com/maisem/hoofit/aoc"

// Score returns the number of distinct peaks reachable from start by
// ascending trails.
func Score(m HeightMap, start aoc.Pt) int {
	return scoreOn(m, m.Graph(start), start)
}

// Rating returns the number of distinct ascending trails from start that
// end at a peak.
func Rating(m HeightMap, start aoc.Pt) int {
	return ratingOn(m, m.Graph(start), start)
}

// scoreOn and ratingOn only read g, so they may run concurrently over the
// same graph.

func scoreOn(m HeightMap, g *aoc.Graph[aoc.Pt], start aoc.Pt) int {
	n := 0
	for p := range g.ReachableNodes(start) {
		if m.isPeak(p) {
			n++
		}
	}
	return n
}

func ratingOn(m HeightMap, g *aoc.Graph[aoc.Pt], start aoc.Pt) int {
	if _, ok := m[start]; !ok {
		return 0
	}
	return g.CountPaths(start, m.isPeak)
}
