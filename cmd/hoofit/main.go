// Command hoofit scores the hiking trails of Advent of Code 2024, day 10.
package main

import (
	_ "embed"

	"github.com/maisem/hoofit/aoc"
	"github.com/maisem/hoofit/trail"
)

func main() {
	aoc.Run(2024, source, &solver{trails: new(trail.Solver)})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle

	trails *trail.Solver
}

func (s solver) configure() {
	s.trails.Workers = s.Workers()
	s.trails.Logger = s.Logger()
}

func answer(v string, err error) any {
	if err != nil {
		return err.Error()
	}
	return v
}

/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func (s solver) D10p1() any {
	s.configure()
	in := s.InputString()
	s.Debugf("read %d bytes of input", len(in))
	return answer(s.trails.Process(in))
}

// want=81
func (s solver) D10p2() any {
	s.configure()
	return answer(s.trails.ProcessRatings(s.InputString()))
}
