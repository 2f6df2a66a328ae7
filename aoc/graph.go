package aoc

// Graph is a directed graph. Edges[a][b] is the weight of the arc a->b.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds the one-way edge a->b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// ReachableNodes returns every node reachable from a by following arcs,
// including a itself.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	s := NewStack(a)
	s.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			if !visited[k] {
				s.Push(k)
			}
		}
		return true
	})
	return visited
}

// CountPaths returns the number of distinct paths from start to any node
// for which isEnd returns true. A path stops at the first end node it
// reaches. The graph must be acyclic.
func (g *Graph[K]) CountPaths(start K, isEnd func(K) bool) int {
	return g.countPathsHelper(start, isEnd, make(map[K]int))
}

func (g *Graph[K]) countPathsHelper(n K, isEnd func(K) bool, memo map[K]int) int {
	if isEnd(n) {
		return 1
	}
	if v, ok := memo[n]; ok {
		return v
	}
	count := 0
	for k := range g.Edges[n] {
		count += g.countPathsHelper(k, isEnd, memo)
	}
	memo[n] = count
	return count
}

// NumPaths returns the number of simple paths from start to end. Unlike
// CountPaths it works on graphs with cycles, at exponential cost.
func (g *Graph[K]) NumPaths(start, end K) int {
	return g.numPathsHelper(start, end, make(map[K]bool))
}

func (g *Graph[K]) numPathsHelper(start, end K, visited map[K]bool) int {
	if start == end {
		return 1
	}
	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	count := 0
	for k := range g.Edges[start] {
		if !visited[k] {
			count += g.numPathsHelper(k, end, visited)
		}
	}
	return count
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
