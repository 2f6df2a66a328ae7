// Package trail scores hiking trails on a topographic height map.
//
// A trail starts at a trailhead (height 0), ends at a peak (height 9) and
// climbs exactly one unit with every orthogonal step.
package trail

import (
	"slices"

	"github.com/maisem/hoofit/aoc"
	"tailscale.com/util/deephash"
)

const (
	trailheadHeight = 0
	peakHeight      = 9
)

// HeightMap maps a cell to its height in [0,9]. Cells outside the map are
// absent, not height 0. A HeightMap is not modified after Parse returns it.
type HeightMap map[aoc.Pt]int

// Hash returns a structural hash of m. Maps with the same cells and heights
// hash the same.
func (m HeightMap) Hash() deephash.Sum {
	return deephash.Hash(&m)
}

// Trailheads returns the cells of height 0 in row-major order.
func (m HeightMap) Trailheads() []aoc.Pt {
	var out []aoc.Pt
	for p, h := range m {
		if h == trailheadHeight {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b aoc.Pt) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

func (m HeightMap) isPeak(p aoc.Pt) bool {
	h, ok := m[p]
	return ok && h == peakHeight
}

// Graph returns the ascending graph of m: an arc a->b for every pair of
// orthogonal neighbors where b is exactly one higher than a. With no
// starts, every cell is a node. Otherwise only the cells reachable from
// starts are.
func (m HeightMap) Graph(starts ...aoc.Pt) *aoc.Graph[aoc.Pt] {
	g := new(aoc.Graph[aoc.Pt])
	if len(starts) == 0 {
		starts = make([]aoc.Pt, 0, len(m))
		for p := range m {
			starts = append(starts, p)
		}
	}
	s := aoc.NewStack[aoc.Pt]()
	for _, p := range starts {
		if _, ok := m[p]; ok {
			s.Push(p)
		}
	}
	visited := make(map[aoc.Pt]bool)
	s.While(func(p aoc.Pt) bool {
		if visited[p] {
			return true
		}
		visited[p] = true
		g.AddNode(p)
		h := m[p]
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if nh, ok := m[n]; ok && nh == h+1 {
				g.AddArc(p, n, 1)
				if !visited[n] {
					s.Push(n)
				}
			}
			return true
		})
		return true
	})
	return g
}
