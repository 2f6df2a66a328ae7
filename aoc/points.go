package aoc

import "golang.org/x/exp/constraints"

type Pt = Pt2[int]

// Pt2 is a point on a 2D plane. Y grows downward, matching the order in
// which puzzle input lines are read.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Less reports whether p sorts before b in row-major order.
func (p Pt2[T]) Less(b Pt2[T]) bool {
	if p.Y != b.Y {
		return p.Y < b.Y
	}
	return p.X < b.X
}

// ForImmediateNeighbors calls f for the four orthogonal neighbors of p, in
// Up, Right, Down, Left order, until f returns false.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for _, d := range Directions {
		dp := d.Delta()
		if !f(Pt2[T]{p.X + T(dp.X), p.Y + T(dp.Y)}) {
			return
		}
	}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four orthogonal directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

// Delta returns the unit step taken when moving in direction d.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}
