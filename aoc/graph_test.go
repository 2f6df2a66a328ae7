package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// diamond returns a->b, a->c, b->d, c->d, d->e.
func diamond() *Graph[string] {
	var g Graph[string]
	g.AddArc("a", "b", 1)
	g.AddArc("a", "c", 1)
	g.AddArc("b", "d", 1)
	g.AddArc("c", "d", 1)
	g.AddArc("d", "e", 1)
	return &g
}

func TestReachableNodes(t *testing.T) {
	g := diamond()
	g.AddNode("lonely")
	tests := []struct {
		from string
		want map[string]bool
	}{
		{"a", map[string]bool{"a": true, "b": true, "c": true, "d": true, "e": true}},
		{"c", map[string]bool{"c": true, "d": true, "e": true}},
		{"e", map[string]bool{"e": true}},
		{"lonely", map[string]bool{"lonely": true}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, g.ReachableNodes(tt.from)); diff != "" {
			t.Errorf("ReachableNodes(%q) mismatch (-want +got):\n%s", tt.from, diff)
		}
	}
}

func TestReachableNodesCycle(t *testing.T) {
	var g Graph[int]
	g.AddArc(1, 2, 1)
	g.AddArc(2, 3, 1)
	g.AddArc(3, 1, 1)
	if got := len(g.ReachableNodes(2)); got != 3 {
		t.Errorf("len(ReachableNodes(2)) = %d, want 3", got)
	}
}

func TestCountPaths(t *testing.T) {
	g := diamond()
	is := func(want string) func(string) bool {
		return func(s string) bool { return s == want }
	}
	tests := []struct {
		start string
		end   func(string) bool
		want  int
	}{
		{"a", is("d"), 2},
		{"a", is("e"), 2},
		{"b", is("e"), 1},
		{"e", is("a"), 0},
		{"a", is("a"), 1},
		{"a", func(s string) bool { return s == "b" || s == "d" }, 2}, // a-b, a-c-d
	}
	for i, tt := range tests {
		if got := g.CountPaths(tt.start, tt.end); got != tt.want {
			t.Errorf("%d: CountPaths(%q) = %d, want %d", i, tt.start, got, tt.want)
		}
	}
}

func TestNumPaths(t *testing.T) {
	g := diamond()
	if got := g.NumPaths("a", "e"); got != 2 {
		t.Errorf("NumPaths(a, e) = %d, want 2", got)
	}
	if got := g.NumPaths("e", "a"); got != 0 {
		t.Errorf("NumPaths(e, a) = %d, want 0", got)
	}
	g.AddArc("e", "a", 1)
	if got := g.NumPaths("b", "a"); got != 1 {
		t.Errorf("NumPaths(b, a) with cycle = %d, want 1", got)
	}
}
